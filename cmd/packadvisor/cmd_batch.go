package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psinghania/packadvisor/internal/dataset"
	"github.com/psinghania/packadvisor/internal/recommend"
	"github.com/psinghania/packadvisor/internal/reporting"
)

type batchOptions struct {
	catalogPath string
	workers     int
	top         int
	format      string
	rangeStart  int
	rangeEnd    int
}

func newBatchCommand() *cobra.Command {
	var opts batchOptions

	cmd := &cobra.Command{
		Use:   "batch <input.csv>",
		Short: "Score many products from a CSV file",
		Long: `Score many products from a CSV file in one run.

The input file has a header row with a required name column and optional
purpose, budget and shelf_life columns:

  name,purpose,budget,shelf_life
  Cold Brew Coffee,retail display,Premium,Weeks

Entries are scored concurrently; results keep the input order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "Catalog file (default: from .packadvisor.yaml)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "How many entries to score concurrently (default: from config)")
	cmd.Flags().IntVarP(&opts.top, "top", "n", 0, "How many recommendations per product (default: from config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "Output format: table or json")
	cmd.Flags().IntVar(&opts.rangeStart, "start", 0, "First data row to score (1-based)")
	cmd.Flags().IntVar(&opts.rangeEnd, "end", 0, "Last data row to score (inclusive)")

	return cmd
}

func runBatch(cmd *cobra.Command, inputPath string, opts batchOptions) error {
	if opts.format != "table" && opts.format != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", opts.format)
	}

	store, cfg, err := resolveStore(opts.catalogPath)
	if err != nil {
		return err
	}
	cat, err := store.Load()
	if err != nil {
		return err
	}

	var entries []dataset.Entry
	if opts.rangeStart > 0 || opts.rangeEnd > 0 {
		start := opts.rangeStart
		if start == 0 {
			start = 1
		}
		end := opts.rangeEnd
		if end == 0 {
			end = int(^uint(0) >> 1) // to the last row
		}
		entries, err = dataset.LoadEntriesRange(inputPath, start, end)
	} else {
		entries, err = dataset.LoadEntries(inputPath)
	}
	if err != nil {
		return err
	}

	workers := opts.workers
	if workers == 0 {
		workers = cfg.Batch.Workers
	}
	top := opts.top
	if top == 0 {
		top = cfg.Recommend.TopN
	}

	engine := recommend.NewEngine()
	results, err := engine.Batch(cmd.Context(), entries, cat, top, workers)
	if err != nil {
		return err
	}

	if opts.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	renderBatchResults(cmd, results)
	return nil
}

func renderBatchResults(cmd *cobra.Command, results []recommend.BatchResult) {
	w := cmd.OutOrStdout()

	for _, r := range results {
		fmt.Fprintf(w, "\n%s\n", r.Entry.Name) //nolint:errcheck
		if len(r.Recommendations) == 0 {
			fmt.Fprintln(w, "  (no materials in catalog)") //nolint:errcheck
			continue
		}
		for i, rec := range r.Recommendations {
			fmt.Fprintf(w, "  %d. %s  %.1f%%  (%s)\n", //nolint:errcheck
				i+1, rec.Name, rec.Score, reporting.ScoreLabel(rec.Score))
		}
	}
	fmt.Fprintf(w, "\nScored %d product(s)\n", len(results)) //nolint:errcheck
}
