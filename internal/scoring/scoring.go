// Package scoring computes the 0–100 compatibility score between a product's
// attribute profile and one packaging material, plus the rule bonus layer that
// sits on top of the base score.
package scoring

import (
	"fmt"
	"strings"

	"github.com/psinghania/packadvisor/internal/catalog"
	"github.com/psinghania/packadvisor/internal/profile"
)

// barrierTypes is the fixed evaluation order for barrier sub-factors.
var barrierTypes = []string{"oxygen", "moisture", "light"}

// Score evaluates one material against a profile and returns the final
// percentage score with one human-readable detail line per sub-factor.
//
// Six additive factors are summed into a running total against a max possible
// accumulated from the configured weights, then rule bonuses are added to the
// total only. The barrier sub-score is intentionally NOT capped by its weight:
// the weight contributes to max_possible while the summed barrier points land
// in the total unclamped. Changing that would silently rescore every catalog,
// so the asymmetry is kept and pinned by tests.
//
// Scoring is total over the profile (missing fields use per-factor defaults)
// but partial over the material: a record missing required characteristics is
// an error rather than a misleading score.
func Score(p profile.Profile, materialName string, m catalog.Material, cat *catalog.Catalog) (float64, []string, error) {
	if err := m.Validate(materialName); err != nil {
		return 0, nil, err
	}

	sp := cat.EffectiveScoring()
	chars := m.Characteristics

	var total float64
	var maxPossible float64
	var details []string

	// Product state compatibility.
	stateWeight := sp.Weight("product_state", catalog.DefaultWeightProductState)
	if contains(chars.ProductStateCompatibility, string(p.ProductState)) {
		total += float64(stateWeight)
		details = append(details, fmt.Sprintf("✅ Product state compatibility: +%d", stateWeight))
	} else {
		details = append(details, "❌ Product state incompatible: +0")
	}
	maxPossible += float64(stateWeight)

	// Barrier requirements. Each barrier type contributes its looked-up points
	// to the total directly; the configured weight only raises max_possible.
	for _, barrierType := range barrierTypes {
		need := sensitivityFor(p, barrierType)
		materialLevel := titleCase(chars.Barrier(barrierType))

		table := sp.BarrierScoring[barrierType]
		if _, ok := table[string(need)]; !ok {
			continue
		}
		points := table[needKey(need)][materialLevel]
		total += points
		if points > 0 {
			details = append(details, fmt.Sprintf("✅ %s barrier: +%s", titleCase(barrierType), formatPoints(points)))
		} else {
			details = append(details, fmt.Sprintf("⚠️ %s barrier: %s", titleCase(barrierType), formatPoints(points)))
		}
	}
	maxPossible += float64(sp.Weight("barrier_requirements", catalog.DefaultWeightBarrier))

	// Chemical compatibility.
	chemWeight := sp.Weight("chemical_compatibility", catalog.DefaultWeightChemical)
	ph := p.PHLevel
	if ph == "" {
		ph = profile.PHNeutral
	}
	if contains(chars.PHTolerance, string(ph)) {
		total += float64(chemWeight)
		details = append(details, fmt.Sprintf("✅ Chemical compatibility: +%d", chemWeight))
	} else {
		details = append(details, "❌ Chemical incompatibility: +0")
	}
	maxPossible += float64(chemWeight)

	// Cost alignment. The looked-up value may be negative; if either key is
	// missing the factor contributes nothing to the total while its weight
	// still counts toward max_possible.
	budget := p.BudgetRange
	if budget == "" {
		budget = profile.BudgetStandard
	}
	if row, ok := sp.CostScoring[string(budget)]; ok {
		if costScore, ok := row[chars.CostCategory]; ok {
			total += costScore
			if costScore > 0 {
				details = append(details, fmt.Sprintf("✅ Cost alignment: +%s", formatPoints(costScore)))
			} else {
				details = append(details, fmt.Sprintf("⚠️ Cost mismatch: %s", formatPoints(costScore)))
			}
		}
	}
	maxPossible += float64(sp.Weight("cost_alignment", catalog.DefaultWeightCost))

	// Temperature requirements.
	tempWeight := sp.Weight("temperature_requirements", catalog.DefaultWeightTemperature)
	storageTemp := p.StorageTemperature
	if storageTemp == "" {
		storageTemp = profile.TempAmbient
	}
	if contains(chars.TemperatureRange, string(storageTemp)) {
		total += float64(tempWeight)
		details = append(details, fmt.Sprintf("✅ Temperature compatibility: +%d", tempWeight))
	} else {
		details = append(details, "❌ Temperature incompatibility: +0")
	}
	maxPossible += float64(tempWeight)

	// Sustainability match. Eco-focused profiles earn per-feature points; every
	// other priority gets a flat neutral 4 regardless of weight configuration.
	var sustainScore float64
	if p.Sustainability == profile.PriorityEco {
		if m.Sustainability.Recyclable {
			sustainScore += 4
		}
		if m.Sustainability.PCRAvailable {
			sustainScore += 2
		}
		if m.Sustainability.Biodegradable {
			sustainScore += 2
		}
	} else {
		sustainScore = 4
	}
	total += sustainScore
	maxPossible += float64(sp.Weight("sustainability_match", catalog.DefaultWeightSustainability))
	details = append(details, fmt.Sprintf("♻️ Sustainability match: +%s", formatPoints(sustainScore)))

	// Rule bonuses adjust the total only, never max_possible.
	bonus := Bonus(p, materialName, cat.Rules)
	total += bonus
	if bonus > 0 {
		details = append(details, fmt.Sprintf("🎯 Rule bonuses: +%.1f", bonus))
	}

	if maxPossible <= 0 {
		return 0, details, nil
	}
	score := (total / maxPossible) * 100
	if score > 100 {
		score = 100
	}
	return score, details, nil
}

// sensitivityFor returns the profile sensitivity for a barrier type, with the
// documented default of None when the field is unset.
func sensitivityFor(p profile.Profile, barrierType string) profile.Sensitivity {
	var s profile.Sensitivity
	switch barrierType {
	case "oxygen":
		s = p.OxygenSensitivity
	case "moisture":
		s = p.MoistureSensitivity
	case "light":
		s = p.LightSensitivity
	}
	if s == "" {
		return profile.SensitivityNone
	}
	return s
}

// needKey derives the points-mapping key for a sensitivity level. Every level
// except None reads from "<level>_need"; None reads from "None" directly. The
// guard in Score checks the bare level name, so the catalog's barrier tables
// carry both key shapes.
func needKey(need profile.Sensitivity) string {
	if need == profile.SensitivityNone {
		return string(need)
	}
	return string(need) + "_need"
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// titleCase lowercases s and capitalizes the first letter of each word, so
// material barrier levels match the table keys however they were entered.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// formatPoints renders a point value without a trailing ".0" for whole numbers.
func formatPoints(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
