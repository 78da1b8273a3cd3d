// Package reporting renders recommendation results as markdown and HTML
// reports.
package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/psinghania/packadvisor/internal/profile"
	"github.com/psinghania/packadvisor/internal/recommend"
)

// ScoreLabel returns a plain-language label for a compatibility score (0–100).
func ScoreLabel(score float64) string {
	switch {
	case score >= 90:
		return "Excellent match"
	case score >= 75:
		return "Strong match"
	case score >= 60:
		return "Fair match"
	default:
		return "Weak match"
	}
}

// Report is the input for one rendered recommendation report.
type Report struct {
	ProductName string
	Profile     profile.Profile
	Results     []recommend.Recommendation

	// Generated defaults to the current time when zero.
	Generated time.Time
}

// Markdown renders the report as a markdown document.
func (r Report) Markdown() string {
	generated := r.Generated
	if generated.IsZero() {
		generated = time.Now()
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# Packaging Recommendation Report: %s\n\n", r.ProductName)
	fmt.Fprintf(&b, "_Generated %s_\n\n", generated.Format("2006-01-02 15:04 MST"))

	b.WriteString("## Product Profile\n\n")
	for _, line := range profileLines(r.Profile) {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	b.WriteString("\n")

	b.WriteString("## Recommendations\n\n")
	if len(r.Results) == 0 {
		b.WriteString("No packaging materials in the catalog.\n")
		return b.String()
	}

	for i, rec := range r.Results {
		fmt.Fprintf(&b, "### %d. %s — %.1f%% (%s)\n\n", i+1, rec.Name, rec.Score, ScoreLabel(rec.Score))

		if len(rec.Reasons) > 0 {
			b.WriteString("**Why it ranks here:**\n\n")
			for _, reason := range rec.Reasons {
				fmt.Fprintf(&b, "- %s\n", reason)
			}
			b.WriteString("\n")
		}

		if len(rec.ScoringDetails) > 0 {
			b.WriteString("**Scoring breakdown:**\n\n")
			for _, detail := range rec.ScoringDetails {
				fmt.Fprintf(&b, "- %s\n", detail)
			}
			b.WriteString("\n")
		}

		if len(rec.Material.Pros) > 0 {
			fmt.Fprintf(&b, "**Pros:** %s\n\n", strings.Join(rec.Material.Pros, ", "))
		}
		if len(rec.Material.Cons) > 0 {
			fmt.Fprintf(&b, "**Cons:** %s\n\n", strings.Join(rec.Material.Cons, ", "))
		}
	}

	return b.String()
}

// profileLines formats the scoring-relevant profile attributes, skipping
// fields the profile does not set.
func profileLines(p profile.Profile) []string {
	lines := []string{
		fmt.Sprintf("Product state: %s", p.ProductState),
		fmt.Sprintf("pH level: %s", p.PHLevel),
		fmt.Sprintf("Oxygen sensitivity: %s", p.OxygenSensitivity),
		fmt.Sprintf("Moisture sensitivity: %s", p.MoistureSensitivity),
		fmt.Sprintf("Light sensitivity: %s", p.LightSensitivity),
		fmt.Sprintf("Storage temperature: %s", p.StorageTemperature),
		fmt.Sprintf("Budget range: %s", p.BudgetRange),
		fmt.Sprintf("Sustainability priority: %s", p.Sustainability),
		fmt.Sprintf("Shelf life requirement: %s", p.ShelfLife),
	}
	if p.BrandPositioning != "" {
		lines = append(lines, fmt.Sprintf("Brand positioning: %s", p.BrandPositioning))
	}
	if p.IndustryCategory != "" {
		lines = append(lines, fmt.Sprintf("Industry category: %s", p.IndustryCategory))
	}
	return lines
}
