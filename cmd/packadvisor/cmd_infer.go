package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/psinghania/packadvisor/internal/profile"
)

type inferOptions struct {
	catalogPath string
	purpose     string
	budget      string
	shelfLife   string
	format      string
}

func newInferCommand() *cobra.Command {
	var opts inferOptions

	cmd := &cobra.Command{
		Use:   "infer <product-name>",
		Short: "Show the attribute profile inferred for a product",
		Long: `Show the attribute profile inferred for a product without scoring.

Useful for checking what the category keyword matching decides before asking
for recommendations. If the product was saved to the catalog, its stored
profile is shown instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfer(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "Catalog file (default: from .packadvisor.yaml)")
	cmd.Flags().StringVar(&opts.purpose, "purpose", "", "What the packaging is for")
	cmd.Flags().StringVar(&opts.budget, "budget", "", "Budget range: Economy, Standard or Premium")
	cmd.Flags().StringVar(&opts.shelfLife, "shelf-life", "", "Shelf life requirement: Days, Weeks, Months or Years")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "Output format: table or json")

	return cmd
}

func runInfer(cmd *cobra.Command, productName string, opts inferOptions) error {
	if opts.format != "table" && opts.format != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", opts.format)
	}

	budget := profile.BudgetStandard
	if opts.budget != "" {
		var err error
		if budget, err = profile.ParseBudget(opts.budget); err != nil {
			return err
		}
	}
	shelfLife := profile.ShelfMonths
	if opts.shelfLife != "" {
		var err error
		if shelfLife, err = profile.ParseShelfLife(opts.shelfLife); err != nil {
			return err
		}
	}

	store, _, err := resolveStore(opts.catalogPath)
	if err != nil {
		return err
	}
	cat, err := store.Load()
	if err != nil {
		return err
	}

	p := profile.Infer(productName, opts.purpose, budget, shelfLife, cat)

	if opts.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Inferred profile for %q:\n\n", productName) //nolint:errcheck
	renderProfile(cmd.OutOrStdout(), p)
	return nil
}
