package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/psinghania/packadvisor/internal/catalog"
	"github.com/psinghania/packadvisor/internal/profile"
	"github.com/psinghania/packadvisor/internal/recommend"
	"github.com/psinghania/packadvisor/internal/reporting"
	"github.com/psinghania/packadvisor/internal/wizard"
)

type recommendOptions struct {
	catalogPath string
	purpose     string
	budget      string
	shelfLife   string
	top         int
	format      string
	details     bool
	interactive bool
	save        bool
	reportPath  string
}

func newRecommendCommand() *cobra.Command {
	var opts recommendOptions

	cmd := &cobra.Command{
		Use:   "recommend <product-name>",
		Short: "Recommend packaging materials for a product",
		Long: `Recommend packaging materials for a product.

The product's attribute profile is inferred from its name (and reused from the
catalog when the product was saved before), every material in the catalog is
scored against it, and the top matches are printed with reasons.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "Catalog file (default: from .packadvisor.yaml)")
	cmd.Flags().StringVar(&opts.purpose, "purpose", "", "What the packaging is for (e.g. retail display)")
	cmd.Flags().StringVar(&opts.budget, "budget", "", "Budget range: Economy, Standard or Premium")
	cmd.Flags().StringVar(&opts.shelfLife, "shelf-life", "", "Shelf life requirement: Days, Weeks, Months or Years")
	cmd.Flags().IntVarP(&opts.top, "top", "n", 0, "How many recommendations to show (default: from config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "Output format: table or json")
	cmd.Flags().BoolVar(&opts.details, "details", false, "Show the scoring breakdown per material")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Review and adjust the inferred profile before scoring")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Save the product and its profile to the catalog")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "Write a report file (.md or .html)")

	return cmd
}

func runRecommend(cmd *cobra.Command, productName string, opts recommendOptions) error {
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

	store, cfg, err := resolveStore(opts.catalogPath)
	if err != nil {
		return err
	}
	cat, err := store.Load()
	if err != nil {
		return err
	}

	p := profile.Infer(productName, opts.purpose, budget, shelfLife, cat)
	if opts.interactive {
		p, err = wizard.RunProfileWizard(os.Stdin, os.Stdout, p)
		if err != nil {
			return err
		}
	}

	engine := recommend.NewEngine()
	recs, err := engine.Recommend(p, cat)
	if err != nil {
		return err
	}

	top := opts.top
	if top == 0 {
		top = cfg.Recommend.TopN
	}
	shown := recommend.Top(recs, top)

	if opts.save {
		if err := saveProduct(store, cat, productName, p, shown); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %q to %s\n", productName, store.Path) //nolint:errcheck
	}

	if opts.reportPath != "" {
		if err := writeReport(opts.reportPath, productName, p, shown); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", opts.reportPath) //nolint:errcheck
	}

	if opts.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(shown)
	}

	renderRecommendations(cmd.OutOrStdout(), shown, opts.details)
	return nil
}

// saveProduct stores the product with its profile so later runs reuse the
// exact same attributes. The top-ranked material becomes the recorded primary
// packaging.
func saveProduct(store *catalog.Store, cat *catalog.Catalog, name string, p profile.Profile, recs []recommend.Recommendation) error {
	if _, exists := cat.Products[name]; exists {
		return fmt.Errorf("saving %q: %w", name, catalog.ErrProductExists)
	}

	var primary []string
	if len(recs) > 0 {
		primary = []string{recs[0].MaterialName}
	}

	cat.Products[name] = catalog.Product{
		BasicInfo: catalog.BasicInfo{
			Category:       p.IndustryCategory,
			IntendedMarket: p.TargetMarket,
		},
		Packaging:        catalog.PackagingLevels{Primary: primary},
		AttributeProfile: p.AsMap(),
		CreatedDate:      time.Now().UTC().Format(time.RFC3339),
	}
	return store.Save(cat)
}

// writeReport renders the recommendation report to path, picking HTML or
// markdown from the file extension.
func writeReport(path, productName string, p profile.Profile, recs []recommend.Recommendation) error {
	report := reporting.Report{
		ProductName: productName,
		Profile:     p,
		Results:     recs,
	}

	var content string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".html", ".htm":
		html, err := report.HTML()
		if err != nil {
			return err
		}
		content = html
	default:
		content = report.Markdown()
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
