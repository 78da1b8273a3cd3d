package recommend

import (
	"fmt"
	"strings"

	"github.com/psinghania/packadvisor/internal/catalog"
	"github.com/psinghania/packadvisor/internal/profile"
)

// Score-tier thresholds for the closing remark.
const (
	tierExceptional = 90
	tierExcellent   = 75
	tierGood        = 60
)

// Reasons derives the human-readable explanation list for one scored
// material. The rule set is fixed-order and deterministic: each rule appends
// zero or one string, so the same inputs always produce the same list.
func Reasons(p profile.Profile, m catalog.Material, score float64) []string {
	var reasons []string
	chars := m.Characteristics

	if p.ProductState != "" && containsString(chars.ProductStateCompatibility, string(p.ProductState)) {
		reasons = append(reasons, fmt.Sprintf("✅ Perfect for %s products", strings.ToLower(string(p.ProductState))))
	}

	// Barrier praise covers only High sensitivities met by an Excellent or
	// High barrier; partial matches get no line.
	var protected []string
	for _, barrierType := range barrierTypes {
		need := sensitivityByType(p, barrierType)
		level := chars.Barrier(barrierType)
		if need == profile.SensitivityHigh && (level == "Excellent" || level == "High") {
			protected = append(protected, barrierType)
		}
	}
	if len(protected) > 0 {
		reasons = append(reasons, fmt.Sprintf("🛡️ Excellent %s protection", strings.Join(protected, ", ")))
	}

	if p.BudgetRange != "" && string(p.BudgetRange) == chars.CostCategory {
		reasons = append(reasons, fmt.Sprintf("💰 Matches %s budget perfectly", strings.ToLower(string(p.BudgetRange))))
	}

	if p.Sustainability == profile.PriorityEco {
		var features []string
		if m.Sustainability.Recyclable {
			features = append(features, "recyclable")
		}
		if m.Sustainability.PCRAvailable {
			features = append(features, "PCR available")
		}
		if m.Sustainability.Biodegradable {
			features = append(features, "biodegradable")
		}
		if len(features) > 0 {
			reasons = append(reasons, fmt.Sprintf("♻️ Eco-friendly: %s", strings.Join(features, ", ")))
		}
	}

	switch {
	case score >= tierExceptional:
		reasons = append(reasons, "⭐ Exceptional compatibility match")
	case score >= tierExcellent:
		reasons = append(reasons, "✨ Excellent compatibility")
	case score >= tierGood:
		reasons = append(reasons, "👍 Good compatibility")
	}

	// Up to the first two declared pros, verbatim.
	pros := m.Pros
	if len(pros) > 2 {
		pros = pros[:2]
	}
	for _, pro := range pros {
		reasons = append(reasons, fmt.Sprintf("💪 %s", pro))
	}

	return reasons
}

var barrierTypes = []string{"oxygen", "moisture", "light"}

func sensitivityByType(p profile.Profile, barrierType string) profile.Sensitivity {
	switch barrierType {
	case "oxygen":
		return p.OxygenSensitivity
	case "moisture":
		return p.MoistureSensitivity
	case "light":
		return p.LightSensitivity
	}
	return profile.SensitivityNone
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
