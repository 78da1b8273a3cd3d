package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/psinghania/packadvisor/internal/catalog"
	"github.com/psinghania/packadvisor/internal/projectconfig"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packadvisor",
		Short: "PackAdvisor - packaging material recommendations for products",
		Long: `PackAdvisor recommends packaging materials for a product.

It infers the product's packaging-relevant attributes from its name and
category, scores every material in the catalog against that profile, and
ranks the results with plain-language reasons.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newRecommendCommand())
	cmd.AddCommand(newInferCommand())
	cmd.AddCommand(newBatchCommand())
	cmd.AddCommand(newCatalogCommand())
	cmd.AddCommand(newServeCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}

// resolveStore builds the catalog store from project configuration, with the
// --catalog flag overriding the configured path.
func resolveStore(flagPath string) (*catalog.Store, *projectconfig.ProjectConfig, error) {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return nil, nil, fmt.Errorf("loading project config: %w", err)
	}

	path := cfg.Catalog.Path
	if flagPath != "" {
		path = flagPath
	}

	store := catalog.NewStore(path)
	store.SnapshotDir = filepath.Join(filepath.Dir(path), cfg.Catalog.SnapshotDir)
	store.Retain = cfg.Catalog.Snapshots
	return store, cfg, nil
}
