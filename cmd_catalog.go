package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"realtyhub/catalog"
	"realtyhub/models"
	"realtyhub/query"
	"realtyhub/services"
)

var (
	searchText    string
	searchType    string
	searchPrice   string
	searchSort    string
	searchSummary bool
	searchCSV     string
)

// searchCmd filters and sorts the catalog
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search listings by text, type and price band",
	Long: `Search the catalog. All filters are combined: a listing must match
the text, the type and the price band to be shown.

Price bands are "min-max" in rupees, "min" for no upper bound, or "all".
Run 'realtyhub filters' to list the offered bands and sort keys.`,
	Example: `  realtyhub search --text mumbai --sort price-desc
  realtyhub search --type house --price 15000000-30000000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadCatalog(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}

		spec := models.QuerySpec{
			Text:       searchText,
			Type:       models.PropertyType(strings.ToLower(searchType)),
			PriceToken: searchPrice,
			SortKey:    models.SortKey(searchSort),
		}
		if spec.Type != "" && spec.Type != models.AnyType && !spec.Type.IsValid() {
			logger.Warn("Unknown property type %q matches no listings", searchType)
		}
		if !spec.SortKey.IsValid() {
			logger.Warn("Unknown sort key %q, keeping catalog order", searchSort)
		}

		results := runSearch(cmd.OutOrStdout(), repo, spec)

		if searchSummary {
			svc := services.NewSummaryService(logger)
			svc.Print(cmd.OutOrStdout(), svc.Generate(results))
		}
		if searchCSV != "" {
			return exportCSV(searchCSV, results)
		}
		return nil
	},
}

// runSearch evaluates spec against the catalog and prints the result list.
func runSearch(w io.Writer, repo *catalog.Repository, spec models.QuerySpec) []models.Listing {
	results := query.Evaluate(spec, repo.All())
	fmt.Fprintf(w, "%d Properties Found (%s, %s)\n\n", len(results), spec.Type.Label(), query.BandLabel(spec.PriceToken))
	printListings(w, results)
	return results
}

// showCmd prints a single listing
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the full details of one listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadCatalog(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		l, ok := repo.ByID(args[0])
		if !ok {
			return fmt.Errorf("%w: %s", catalog.ErrListingNotFound, args[0])
		}
		printDetail(cmd.OutOrStdout(), l)
		return nil
	},
}

// featuredCmd lists the featured listings
var featuredCmd = &cobra.Command{
	Use:   "featured",
	Short: "List featured properties",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadCatalog(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		printListings(cmd.OutOrStdout(), repo.Featured())
		return nil
	},
}

// locationsCmd lists the location suggestions
var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List popular search locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadCatalog(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		for _, loc := range repo.Locations() {
			fmt.Fprintln(cmd.OutOrStdout(), loc)
		}
		return nil
	},
}

// filtersCmd lists the values accepted by search
var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List property types, price bands and sort keys",
	Run: func(cmd *cobra.Command, args []string) {
		printFilters(cmd.OutOrStdout())
	},
}

func printFilters(w io.Writer) {
	section := func(title string, opts []query.Option) {
		fmt.Fprintf(w, "%s:\n", title)
		for _, o := range opts {
			fmt.Fprintf(w, "  %-20s %s\n", o.Value, o.Label)
		}
		fmt.Fprintln(w)
	}
	section("Types (--type)", query.TypeOptions())
	section("Price bands (--price)", query.PriceBands)
	section("Sort keys (--sort)", query.SortOptions)
}

// statsCmd summarises the whole catalog
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate figures for the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadCatalog(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		svc := services.NewSummaryService(logger)
		svc.Print(cmd.OutOrStdout(), svc.Generate(repo.All()))
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchText, "text", "q", "", "Match title or location (case-insensitive)")
	searchCmd.Flags().StringVarP(&searchType, "type", "t", string(models.AnyType), "Property type: all, house, apartment, commercial or plot")
	searchCmd.Flags().StringVarP(&searchPrice, "price", "p", models.AnyPrice, "Price band, e.g. 5000000-15000000")
	searchCmd.Flags().StringVarP(&searchSort, "sort", "s", string(models.DefaultSort), "Sort key: price-asc, price-desc, area-desc or newest")
	searchCmd.Flags().BoolVar(&searchSummary, "summary", false, "Print aggregate figures for the results")
	searchCmd.Flags().StringVar(&searchCSV, "csv", "", "Also write the results to this CSV file")
}
