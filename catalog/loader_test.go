package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realtyhub/models"
)

const yamlSeed = `
locations:
  - Panaji, Goa
listings:
  - id: g1
    title: Beach Villa
    location: Calangute, Goa
    price: 42000000
    bedrooms: 3
    bathrooms: 3
    area: 2100
    type: house
    image: photo-1
    featured: true
    amenities: [Pool, Garden]
    yearBuilt: 2019
`

const jsonSeed = `{
  "listings": [
    {"id": "j1", "title": "Loft", "location": "Powai, Mumbai", "price": 9500000,
     "area": 700, "type": "apartment", "image": "photo-2", "floor": 12}
  ]
}`

func TestParseSeedYAML(t *testing.T) {
	seed, err := ParseSeed([]byte(yamlSeed))
	require.NoError(t, err)

	require.Len(t, seed.Listings, 1)
	l := seed.Listings[0]
	assert.Equal(t, "g1", l.ID)
	assert.Equal(t, int64(42_000_000), l.Price)
	assert.Equal(t, models.House, l.Type)
	assert.Equal(t, "photo-1", l.ImageRef)
	assert.True(t, l.Featured)
	assert.Equal(t, []string{"Pool", "Garden"}, l.Amenities)
	assert.Equal(t, 2019, l.YearBuilt)
	assert.Equal(t, []string{"Panaji, Goa"}, seed.Locations)
}

func TestParseSeedJSON(t *testing.T) {
	seed, err := ParseSeed([]byte(jsonSeed))
	require.NoError(t, err)

	require.Len(t, seed.Listings, 1)
	assert.Equal(t, models.Apartment, seed.Listings[0].Type)
	assert.Equal(t, 12, seed.Listings[0].Floor)
}

func TestParseSeedInvalid(t *testing.T) {
	_, err := ParseSeed([]byte("listings: [unterminated"))
	assert.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshalSeedRoundTrip(t *testing.T) {
	data, err := MarshalSeed(Builtin())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	seed, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Builtin().All(), seed.Listings)
	assert.Equal(t, PopularLocations, seed.Locations)
}
