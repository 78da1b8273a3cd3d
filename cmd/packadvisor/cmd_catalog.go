package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/psinghania/packadvisor/internal/catalog"
	"github.com/psinghania/packadvisor/internal/profile"
)

func newCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and edit the packaging catalog",
	}

	cmd.AddCommand(newCatalogListCommand())
	cmd.AddCommand(newCatalogProductsCommand())
	cmd.AddCommand(newCatalogValidateCommand())
	cmd.AddCommand(newCatalogAddProductCommand())
	cmd.AddCommand(newCatalogAddMaterialCommand())
	cmd.AddCommand(newCatalogAddRuleCommand())
	cmd.AddCommand(newCatalogSnapshotCommand())

	return cmd
}

func newCatalogSnapshotCommand() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write a compressed snapshot of the catalog file",
		Long: `Write a compressed snapshot of the catalog file.

Snapshots are also written automatically on every catalog save; this command
forces one without modifying the catalog. Old snapshots beyond the retention
cap are pruned.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := resolveStore(catalogPath)
			if err != nil {
				return err
			}

			path, err := store.Snapshot()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Snapshot written to %s\n", path) //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file (default: from .packadvisor.yaml)")
	return cmd
}

func newCatalogListCommand() *cobra.Command {
	var catalogPath string
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the packaging materials in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "table" && format != "json" {
				return fmt.Errorf("unsupported format %q: must be table or json", format)
			}

			store, _, err := resolveStore(catalogPath)
			if err != nil {
				return err
			}
			cat, err := store.Load()
			if err != nil {
				return err
			}

			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cat.Materials)
			}

			renderMaterialTable(cmd, cat)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file (default: from .packadvisor.yaml)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or json")
	return cmd
}

func renderMaterialTable(cmd *cobra.Command, cat *catalog.Catalog) {
	w := cmd.OutOrStdout()

	names := cat.MaterialNames()
	if len(names) == 0 {
		fmt.Fprintln(w, "No packaging materials in the catalog.") //nolint:errcheck
		return
	}

	const minNameWidth = 12
	const maxNameWidth = 32
	nameWidth := minNameWidth
	for _, n := range names {
		if runeLen := utf8.RuneCountInString(n); runeLen > nameWidth {
			nameWidth = runeLen
		}
	}
	if nameWidth > maxNameWidth {
		nameWidth = maxNameWidth
	}

	const colType = 12
	const colCost = 10
	const colBarriers = 22
	totalWidth := nameWidth + colType + colCost + colBarriers + 10 + 8

	fmt.Fprintf(w, "%s  %s  %s  %s  %s\n", //nolint:errcheck
		padRight("Material", nameWidth),
		padRight("Type", colType),
		padRight("Cost", colCost),
		padRight("Barriers (O/M/L)", colBarriers),
		"Recyclable")
	fmt.Fprintf(w, "%s\n", strings.Repeat("─", totalWidth)) //nolint:errcheck

	for _, name := range names {
		m := cat.Materials[name]
		barriers := fmt.Sprintf("%s/%s/%s",
			m.Characteristics.OxygenBarrier,
			m.Characteristics.MoistureBarrier,
			m.Characteristics.LightBarrier)
		recyclable := "no"
		if m.Sustainability.Recyclable {
			recyclable = "yes"
		}
		fmt.Fprintf(w, "%s  %s  %s  %s  %s\n", //nolint:errcheck
			padRight(truncateName(name, nameWidth), nameWidth),
			padRight(truncateName(m.MaterialType, colType), colType),
			padRight(m.Characteristics.CostCategory, colCost),
			padRight(truncateName(barriers, colBarriers), colBarriers),
			recyclable)
	}
	fmt.Fprintf(w, "\n%d material(s)\n", len(names)) //nolint:errcheck
}

func newCatalogProductsCommand() *cobra.Command {
	var catalogPath string
	var search string

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the products saved in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := resolveStore(catalogPath)
			if err != nil {
				return err
			}
			cat, err := store.Load()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			count := 0
			for _, name := range cat.ProductNames() {
				if search != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(search)) {
					continue
				}
				p := cat.Products[name]
				line := name
				if p.BasicInfo.Category != "" {
					line += "  (" + p.BasicInfo.Category + ")"
				}
				if len(p.Packaging.Primary) > 0 {
					line += "  → " + strings.Join(p.Packaging.Primary, ", ")
				}
				fmt.Fprintln(w, line) //nolint:errcheck
				count++
			}
			fmt.Fprintf(w, "\n%d product(s)\n", count) //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file (default: from .packadvisor.yaml)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Only show products whose name contains this text")
	return cmd
}

func newCatalogValidateCommand() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the catalog document against its schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := resolveStore(catalogPath)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(store.Path)
			if err != nil {
				if os.IsNotExist(err) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s does not exist yet; an empty catalog is valid\n", store.Path) //nolint:errcheck
					return nil
				}
				return fmt.Errorf("reading catalog %s: %w", store.Path, err)
			}

			errs := catalog.ValidateBytes(data)
			if len(errs) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", store.Path) //nolint:errcheck
				return nil
			}

			for _, e := range errs {
				fmt.Fprintf(cmd.OutOrStdout(), "  ✗ %s\n", e) //nolint:errcheck
			}
			return &CatalogIssuesError{
				Message: fmt.Sprintf("catalog %s has %d validation issue(s)", store.Path, len(errs)),
			}
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file (default: from .packadvisor.yaml)")
	return cmd
}

func newCatalogAddProductCommand() *cobra.Command {
	var catalogPath string
	var purpose string
	var budget string
	var shelfLife string

	cmd := &cobra.Command{
		Use:   "add-product <product-name>",
		Short: "Save a product and its inferred profile to the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			b := profile.BudgetStandard
			if budget != "" {
				var err error
				if b, err = profile.ParseBudget(budget); err != nil {
					return err
				}
			}
			sl := profile.ShelfMonths
			if shelfLife != "" {
				var err error
				if sl, err = profile.ParseShelfLife(shelfLife); err != nil {
					return err
				}
			}

			store, _, err := resolveStore(catalogPath)
			if err != nil {
				return err
			}
			cat, err := store.Load()
			if err != nil {
				return err
			}
			if _, exists := cat.Products[name]; exists {
				return fmt.Errorf("adding %q: %w", name, catalog.ErrProductExists)
			}

			p := profile.Infer(name, purpose, b, sl, cat)
			cat.Products[name] = catalog.Product{
				BasicInfo: catalog.BasicInfo{
					Category:       p.IndustryCategory,
					IntendedMarket: p.TargetMarket,
				},
				AttributeProfile: p.AsMap(),
				CreatedDate:      time.Now().UTC().Format(time.RFC3339),
			}
			if err := store.Save(cat); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s\n", name, store.Path) //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file (default: from .packadvisor.yaml)")
	cmd.Flags().StringVar(&purpose, "purpose", "", "What the packaging is for")
	cmd.Flags().StringVar(&budget, "budget", "", "Budget range: Economy, Standard or Premium")
	cmd.Flags().StringVar(&shelfLife, "shelf-life", "", "Shelf life requirement: Days, Weeks, Months or Years")
	return cmd
}

func newCatalogAddMaterialCommand() *cobra.Command {
	var catalogPath string
	var filePath string

	cmd := &cobra.Command{
		Use:   "add-material <material-name>",
		Short: "Add a packaging material from a JSON file",
		Long: `Add a packaging material from a JSON file.

The file holds one material record in the catalog's packaging_materials
format. The record is validated before the catalog is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			data, err := os.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("reading material file: %w", err)
			}
			var m catalog.Material
			if err := json.Unmarshal(data, &m); err != nil {
				return fmt.Errorf("parsing material file %s: %w", filePath, err)
			}
			if err := m.Validate(name); err != nil {
				return err
			}

			store, _, err := resolveStore(catalogPath)
			if err != nil {
				return err
			}
			cat, err := store.Load()
			if err != nil {
				return err
			}
			if _, exists := cat.Materials[name]; exists {
				return fmt.Errorf("material %q already exists in %s", name, store.Path)
			}

			cat.Materials[name] = m
			if err := store.Save(cat); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added material %q to %s\n", name, store.Path) //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file (default: from .packadvisor.yaml)")
	cmd.Flags().StringVar(&filePath, "file", "", "JSON file holding the material record (required)")
	cmd.MarkFlagRequired("file") //nolint:errcheck
	return cmd
}

func newCatalogAddRuleCommand() *cobra.Command {
	var catalogPath string
	var filePath string

	cmd := &cobra.Command{
		Use:   "add-rule <rule-name>",
		Short: "Add a recommendation rule from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			data, err := os.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("reading rule file: %w", err)
			}
			var rule catalog.RecommendationRule
			if err := json.Unmarshal(data, &rule); err != nil {
				return fmt.Errorf("parsing rule file %s: %w", filePath, err)
			}
			if len(rule.Triggers) == 0 {
				return fmt.Errorf("rule %q has no triggers", name)
			}

			store, _, err := resolveStore(catalogPath)
			if err != nil {
				return err
			}
			cat, err := store.Load()
			if err != nil {
				return err
			}
			if _, exists := cat.Rules[name]; exists {
				return fmt.Errorf("rule %q already exists in %s", name, store.Path)
			}

			cat.Rules[name] = rule
			if err := store.Save(cat); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added rule %q to %s\n", name, store.Path) //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file (default: from .packadvisor.yaml)")
	cmd.Flags().StringVar(&filePath, "file", "", "JSON file holding the rule record (required)")
	cmd.MarkFlagRequired("file") //nolint:errcheck
	return cmd
}
