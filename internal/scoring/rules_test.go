package scoring

import (
	"testing"

	"github.com/psinghania/packadvisor/internal/catalog"
	"github.com/psinghania/packadvisor/internal/profile"
	"github.com/stretchr/testify/require"
)

func TestBonus_RecommendedMaterial(t *testing.T) {
	p := profile.Profile{BudgetRange: profile.BudgetPremium}
	rules := map[string]catalog.RecommendationRule{
		"premium_glass": {
			Triggers:             []map[string]string{{"budget_range": "Premium"}},
			RecommendedMaterials: []string{"Glass_Jar"},
			PriorityScore:        10,
		},
	}

	require.InDelta(t, 3.0, Bonus(p, "Glass_Jar", rules), 0.0001)
}

func TestBonus_AvoidedMaterial(t *testing.T) {
	p := profile.Profile{BudgetRange: profile.BudgetPremium}
	rules := map[string]catalog.RecommendationRule{
		"premium_glass": {
			Triggers:       []map[string]string{{"budget_range": "Premium"}},
			AvoidMaterials: []string{"Thin_Film"},
			PriorityScore:  10,
		},
	}

	require.InDelta(t, -2.0, Bonus(p, "Thin_Film", rules), 0.0001)
}

func TestBonus_RecommendedWinsOverAvoid(t *testing.T) {
	// A material in both lists gets the bonus only, never both adjustments.
	p := profile.Profile{BudgetRange: profile.BudgetPremium}
	rules := map[string]catalog.RecommendationRule{
		"conflicted": {
			Triggers:             []map[string]string{{"budget_range": "Premium"}},
			RecommendedMaterials: []string{"Glass_Jar"},
			AvoidMaterials:       []string{"Glass_Jar"},
			PriorityScore:        10,
		},
	}

	require.InDelta(t, 3.0, Bonus(p, "Glass_Jar", rules), 0.0001)
}

func TestBonus_UntriggeredRule(t *testing.T) {
	p := profile.Profile{BudgetRange: profile.BudgetEconomy}
	rules := map[string]catalog.RecommendationRule{
		"premium_glass": {
			Triggers:             []map[string]string{{"budget_range": "Premium"}},
			RecommendedMaterials: []string{"Glass_Jar"},
			PriorityScore:        10,
		},
	}

	require.Zero(t, Bonus(p, "Glass_Jar", rules))
}

func TestBonus_SingleKeyMatchFiresMultiKeyTrigger(t *testing.T) {
	// Trigger matching is an OR across every key/value pair: one matching key
	// fires the rule even when its sibling key does not match.
	p := profile.Profile{
		BudgetRange:        profile.BudgetPremium,
		StorageTemperature: profile.TempAmbient,
	}
	rules := map[string]catalog.RecommendationRule{
		"premium_frozen": {
			Triggers: []map[string]string{{
				"budget_range":        "Premium",
				"storage_temperature": "Frozen",
			}},
			RecommendedMaterials: []string{"Glass_Jar"},
			PriorityScore:        10,
		},
	}

	require.InDelta(t, 3.0, Bonus(p, "Glass_Jar", rules), 0.0001)
}

func TestBonus_MultipleRulesAccumulate(t *testing.T) {
	p := profile.Profile{
		BudgetRange:    profile.BudgetPremium,
		Sustainability: profile.PriorityEco,
	}
	rules := map[string]catalog.RecommendationRule{
		"premium": {
			Triggers:             []map[string]string{{"budget_range": "Premium"}},
			RecommendedMaterials: []string{"Glass_Jar"},
			PriorityScore:        10,
		},
		"eco": {
			Triggers:             []map[string]string{{"sustainability_priority": "Eco-focused"}},
			RecommendedMaterials: []string{"Glass_Jar"},
			PriorityScore:        5,
		},
	}

	require.InDelta(t, 4.5, Bonus(p, "Glass_Jar", rules), 0.0001)
}

func TestBonus_NoRules(t *testing.T) {
	require.Zero(t, Bonus(profile.Profile{}, "Glass_Jar", nil))
}
