package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realtyhub/catalog"
	"realtyhub/models"
)

func ids(ls []models.Listing) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}

func TestEvaluateUnfilteredIsPermutation(t *testing.T) {
	all := catalog.Builtin().All()

	for _, key := range models.SortKeys {
		spec := models.QuerySpec{Type: models.AnyType, PriceToken: models.AnyPrice, SortKey: key}
		got := Evaluate(spec, all)

		require.Len(t, got, len(all), "sort %s", key)
		assert.ElementsMatch(t, ids(all), ids(got), "sort %s", key)
	}
}

func TestEvaluateSortOrders(t *testing.T) {
	all := catalog.Builtin().All()

	tests := []struct {
		key  models.SortKey
		want []string
	}{
		{models.SortPriceAsc, []string{"7", "4", "8", "5", "1", "3", "2", "6"}},
		{models.SortPriceDesc, []string{"6", "2", "3", "1", "5", "8", "4", "7"}},
		{models.SortAreaDesc, []string{"6", "5", "1", "8", "3", "2", "4", "7"}},
		{models.SortNewest, []string{"2", "1", "4", "5", "8", "7", "3", "6"}},
	}

	for _, tt := range tests {
		got := Evaluate(models.QuerySpec{SortKey: tt.key}, all)
		assert.Equal(t, tt.want, ids(got), "sort %s", tt.key)
	}
}

func TestEvaluateUnknownSortKeepsCatalogOrder(t *testing.T) {
	all := catalog.Builtin().All()
	got := Evaluate(models.QuerySpec{SortKey: "rating"}, all)
	assert.Equal(t, ids(all), ids(got))
}

func TestEvaluateStableSort(t *testing.T) {
	listings := []models.Listing{
		{ID: "a", Price: 100, Area: 10},
		{ID: "b", Price: 50, Area: 10},
		{ID: "c", Price: 100, Area: 10},
		{ID: "d", Price: 50, Area: 10},
	}

	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(Evaluate(models.QuerySpec{SortKey: models.SortPriceAsc}, listings)))
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(Evaluate(models.QuerySpec{SortKey: models.SortPriceDesc}, listings)))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(Evaluate(models.QuerySpec{SortKey: models.SortAreaDesc}, listings)))
}

func TestEvaluateIdempotent(t *testing.T) {
	all := catalog.Builtin().All()
	specs := []models.QuerySpec{
		{Text: "mumbai", SortKey: models.SortPriceDesc},
		{Type: models.House, PriceToken: "15000000-30000000", SortKey: models.SortNewest},
		{PriceToken: "30000000", SortKey: models.SortAreaDesc},
		{Text: "nowhere", SortKey: models.SortPriceAsc},
	}

	for _, spec := range specs {
		once := Evaluate(spec, all)
		twice := Evaluate(spec, once)
		assert.Equal(t, once, twice, "spec %+v", spec)
	}
}

func TestEvaluateTextMatch(t *testing.T) {
	all := catalog.Builtin().All()

	tests := []struct {
		text string
		want []string
	}{
		{"MUMBAI", []string{"7", "1", "6"}},
		{"victorian", []string{"3"}},
		{"family", []string{"8", "5", "1"}},
		{"goa", []string{}},
	}

	for _, tt := range tests {
		got := Evaluate(models.QuerySpec{Text: tt.text, SortKey: models.SortPriceAsc}, all)
		assert.Equal(t, tt.want, ids(got), "text %q", tt.text)
	}
}

func TestEvaluateTypeMatch(t *testing.T) {
	all := catalog.Builtin().All()

	got := Evaluate(models.QuerySpec{Type: models.Commercial, SortKey: models.SortPriceAsc}, all)
	assert.Equal(t, []string{"6"}, ids(got))

	got = Evaluate(models.QuerySpec{Type: models.Plot, SortKey: models.SortPriceAsc}, all)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	got = Evaluate(models.QuerySpec{Type: "", SortKey: models.SortPriceAsc}, all)
	assert.Len(t, got, len(all))
}

func TestEvaluateHouseBandScenario(t *testing.T) {
	listings := []models.Listing{
		{ID: "apt", Type: models.Apartment, Price: 15_000_000},
		{ID: "house-2.5", Type: models.House, Price: 25_000_000},
		{ID: "house-3.5", Type: models.House, Price: 35_000_000},
	}
	spec := models.QuerySpec{
		Type:       models.House,
		PriceToken: "15000000-30000000",
		SortKey:    models.SortPriceAsc,
	}

	assert.Equal(t, []string{"house-2.5"}, ids(Evaluate(spec, listings)))
}

func TestEvaluateConjunctive(t *testing.T) {
	all := catalog.Builtin().All()
	spec := models.QuerySpec{
		Text:       "mumbai",
		Type:       models.House,
		PriceToken: "30000000",
		SortKey:    models.SortPriceAsc,
	}
	assert.Equal(t, []string{"1"}, ids(Evaluate(spec, all)))
}

func TestEvaluateEmptyCatalog(t *testing.T) {
	got := Evaluate(models.QuerySpec{SortKey: models.SortPriceAsc}, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEvaluateDoesNotReorderInput(t *testing.T) {
	all := catalog.Builtin().All()
	before := ids(all)
	Evaluate(models.QuerySpec{SortKey: models.SortPriceDesc}, all)
	assert.Equal(t, before, ids(all))
}

func TestTypeOptions(t *testing.T) {
	opts := TypeOptions()
	require.Len(t, opts, 5)
	assert.Equal(t, Option{"all", "All Types"}, opts[0])
	assert.Equal(t, Option{"plot", "Plots"}, opts[4])
}
