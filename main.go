package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"realtyhub/config"
	"realtyhub/utils"
)

var (
	cfg    *config.Config
	logger *utils.Logger

	sourceFlag   string
	catalogFlag  string
	logLevelFlag string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "realtyhub",
	Short: "Browse and search the RealtyHub property catalog",
	Long: `RealtyHub is a property catalog for the Indian market.

Search listings by text, type and price band, inspect a single property,
and keep a signed-in session between runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if sourceFlag != "" {
			cfg.CatalogSource = sourceFlag
		}
		if catalogFlag != "" {
			cfg.CatalogPath = catalogFlag
		}
		if logLevelFlag != "" {
			cfg.LogLevel = logLevelFlag
		}
		logger = utils.NewLoggerWithConfig(utils.LoggerConfig{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "Catalog source: builtin, file or postgres (or set CATALOG_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "Seed file used by the file source (or set CATALOG_PATH)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(featuredCmd)
	rootCmd.AddCommand(locationsCmd)
	rootCmd.AddCommand(filtersCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(seedDBCmd)
	rootCmd.AddCommand(signInCmd)
	rootCmd.AddCommand(signUpCmd)
	rootCmd.AddCommand(signOutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
