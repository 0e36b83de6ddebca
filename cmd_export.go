package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"realtyhub/catalog"
	"realtyhub/config"
	"realtyhub/models"
	"realtyhub/storage"
)

var exportOutput string

// exportCmd writes the catalog to a CSV or seed file
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to CSV or a YAML seed file",
	Long: `Export every listing in catalog order.

The format follows the output extension: .yaml or .yml writes a seed file
that the file source can load back, anything else writes CSV.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadCatalog(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		out := exportOutput
		if out == "" {
			out = cfg.CSVOutputPath
		}
		switch strings.ToLower(filepath.Ext(out)) {
		case ".yaml", ".yml":
			return exportSeed(out, repo)
		default:
			return exportCSV(out, repo.All())
		}
	},
}

// seedDBCmd copies the current catalog into PostgreSQL
var seedDBCmd = &cobra.Command{
	Use:   "seed-db",
	Short: "Replace the PostgreSQL listings table with the current catalog",
	Long: `Load the catalog from the configured source and write it to the
listings table, replacing its contents. Use --source file to seed from a
seed file, or leave the default to seed the built-in catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.CatalogSource == config.CatalogPostgres {
			return fmt.Errorf("seed-db needs a builtin or file source")
		}
		repo, err := loadCatalog(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		pc, err := openPostgres(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		if err := writeListings(pc, repo.All()); err != nil {
			return err
		}
		logger.Info("Stored %d listings in PostgreSQL (table: listings)", repo.Len())
		return nil
	},
}

// writeListings writes to a sink and closes it, reporting the first error.
func writeListings(w storage.ListingWriter, listings []models.Listing) error {
	if err := w.Write(listings); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func exportCSV(path string, listings []models.Listing) error {
	w, err := storage.NewCSVWriter(path)
	if err != nil {
		return err
	}
	if err := writeListings(w, listings); err != nil {
		return err
	}
	logger.Info("Saved %d listings to %s", len(listings), path)
	return nil
}

func exportSeed(path string, repo *catalog.Repository) error {
	data, err := catalog.MarshalSeed(repo)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("export: create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("export: write %q: %w", path, err)
	}
	logger.Info("Saved %d listings to %s", repo.Len(), path)
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default CSV_OUTPUT_PATH)")
}
