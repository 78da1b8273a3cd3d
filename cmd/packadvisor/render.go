package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/psinghania/packadvisor/internal/profile"
	"github.com/psinghania/packadvisor/internal/recommend"
	"github.com/psinghania/packadvisor/internal/reporting"
)

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// truncateName shortens a name to maxLen runes, replacing the last rune with "…" if needed.
func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-1]) + "…"
}

// renderRecommendations prints the ranked materials as a table, optionally
// followed by per-material scoring details and reasons.
func renderRecommendations(w io.Writer, recs []recommend.Recommendation, showDetails bool) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No packaging materials in the catalog.") //nolint:errcheck
		return
	}

	const minNameWidth = 12
	const maxNameWidth = 32
	nameWidth := minNameWidth
	for _, r := range recs {
		if runeLen := utf8.RuneCountInString(r.Name); runeLen > nameWidth {
			nameWidth = runeLen
		}
	}
	if nameWidth > maxNameWidth {
		nameWidth = maxNameWidth
	}

	// Fixed column widths (display columns) for emoji-safe alignment.
	const colRank = 4
	const colScore = 8
	const colType = 12
	totalWidth := colRank + nameWidth + colScore + colType + 17 + 8 // 17 = widest match label, 8 = 4 gaps × 2 spaces

	fmt.Fprintf(w, "\n")                                      //nolint:errcheck
	fmt.Fprintf(w, "%s\n", strings.Repeat("═", totalWidth))   //nolint:errcheck
	fmt.Fprintf(w, " PACKAGING RECOMMENDATIONS\n")            //nolint:errcheck
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("═", totalWidth)) //nolint:errcheck

	fmt.Fprintf(w, "%s  %s  %s  %s  %s\n", //nolint:errcheck
		padRight("Rank", colRank),
		padRight("Material", nameWidth),
		padRight("Score", colScore),
		padRight("Type", colType),
		"Match")
	fmt.Fprintf(w, "%s\n", strings.Repeat("─", totalWidth)) //nolint:errcheck

	for i, r := range recs {
		fmt.Fprintf(w, "%s  %s  %s  %s  %s\n", //nolint:errcheck
			padRight(fmt.Sprintf("%d", i+1), colRank),
			padRight(truncateName(r.Name, nameWidth), nameWidth),
			padRight(fmt.Sprintf("%.1f%%", r.Score), colScore),
			padRight(truncateName(r.Material.MaterialType, colType), colType),
			reporting.ScoreLabel(r.Score))
	}
	fmt.Fprintf(w, "\n") //nolint:errcheck

	if !showDetails {
		return
	}

	for i, r := range recs {
		fmt.Fprintf(w, "%d. %s (%.1f%%)\n", i+1, r.Name, r.Score) //nolint:errcheck
		for _, reason := range r.Reasons {
			fmt.Fprintf(w, "   %s\n", reason) //nolint:errcheck
		}
		for _, detail := range r.ScoringDetails {
			fmt.Fprintf(w, "   %s\n", detail) //nolint:errcheck
		}
		fmt.Fprintf(w, "\n") //nolint:errcheck
	}
}

// renderProfile prints the attribute profile as aligned key/value rows.
func renderProfile(w io.Writer, p profile.Profile) {
	rows := [][2]string{
		{"Product state", string(p.ProductState)},
		{"Viscosity", p.Viscosity},
		{"pH level", string(p.PHLevel)},
		{"Oxygen sensitivity", string(p.OxygenSensitivity)},
		{"Moisture sensitivity", string(p.MoistureSensitivity)},
		{"Light sensitivity", string(p.LightSensitivity)},
		{"Storage temperature", string(p.StorageTemperature)},
		{"Budget range", string(p.BudgetRange)},
		{"Sustainability priority", string(p.Sustainability)},
		{"Shelf life requirement", string(p.ShelfLife)},
		{"Brand positioning", string(p.BrandPositioning)},
		{"Industry category", p.IndustryCategory},
	}

	const keyWidth = 24
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", padRight(row[0]+":", keyWidth), row[1]) //nolint:errcheck
	}
}
