package recommend

import (
	"strings"
	"testing"

	"github.com/psinghania/packadvisor/internal/catalog"
	"github.com/psinghania/packadvisor/internal/profile"
	"github.com/stretchr/testify/require"
)

func reasonsMaterial() catalog.Material {
	return catalog.Material{
		Characteristics: catalog.Characteristics{
			CostCategory:              "Premium",
			ProductStateCompatibility: []string{"Liquid"},
			OxygenBarrier:             "Excellent",
			MoistureBarrier:           "Medium",
			LightBarrier:              "High",
			PHTolerance:               []string{"Neutral"},
			TemperatureRange:          []string{"Ambient"},
		},
		Sustainability: catalog.Sustainability{Recyclable: true, PCRAvailable: true},
		Pros:           []string{"Inert and taste-neutral", "Premium shelf presence", "Infinitely recyclable"},
	}
}

func TestReasons_StateMatch(t *testing.T) {
	p := profile.Profile{ProductState: profile.StateLiquid}
	reasons := Reasons(p, reasonsMaterial(), 50)
	require.Contains(t, reasons, "✅ Perfect for liquid products")
}

func TestReasons_BarrierPraiseOnlyForHighNeeds(t *testing.T) {
	p := profile.Profile{
		OxygenSensitivity: profile.SensitivityHigh,
		LightSensitivity:  profile.SensitivityHigh,
		// moisture High need against a Medium barrier earns no praise
		MoistureSensitivity: profile.SensitivityHigh,
	}
	reasons := Reasons(p, reasonsMaterial(), 50)
	require.Contains(t, reasons, "🛡️ Excellent oxygen, light protection")
}

func TestReasons_NoBarrierPraiseForPartialMatch(t *testing.T) {
	p := profile.Profile{MoistureSensitivity: profile.SensitivityHigh}
	reasons := Reasons(p, reasonsMaterial(), 50)
	for _, r := range reasons {
		if strings.HasPrefix(r, "🛡") {
			t.Errorf("unexpected barrier praise: %q", r)
		}
	}
}

func TestReasons_BudgetMatch(t *testing.T) {
	p := profile.Profile{BudgetRange: profile.BudgetPremium}
	reasons := Reasons(p, reasonsMaterial(), 50)
	require.Contains(t, reasons, "💰 Matches premium budget perfectly")
}

func TestReasons_EcoFeaturesOnlyUnderEcoPriority(t *testing.T) {
	eco := profile.Profile{Sustainability: profile.PriorityEco}
	reasons := Reasons(eco, reasonsMaterial(), 50)
	require.Contains(t, reasons, "♻️ Eco-friendly: recyclable, PCR available")

	balanced := profile.Profile{Sustainability: profile.PriorityBalanced}
	for _, r := range Reasons(balanced, reasonsMaterial(), 50) {
		require.NotContains(t, r, "Eco-friendly")
	}
}

func TestReasons_ScoreTiers(t *testing.T) {
	m := reasonsMaterial()
	p := profile.Profile{}

	require.Contains(t, Reasons(p, m, 95), "⭐ Exceptional compatibility match")
	require.Contains(t, Reasons(p, m, 80), "✨ Excellent compatibility")
	require.Contains(t, Reasons(p, m, 65), "👍 Good compatibility")

	for _, r := range Reasons(p, m, 40) {
		require.NotContains(t, r, "compatibility")
	}
}

func TestReasons_FirstTwoProsOnly(t *testing.T) {
	reasons := Reasons(profile.Profile{}, reasonsMaterial(), 10)
	require.Contains(t, reasons, "💪 Inert and taste-neutral")
	require.Contains(t, reasons, "💪 Premium shelf presence")
	require.NotContains(t, reasons, "💪 Infinitely recyclable")
}

func TestReasons_Deterministic(t *testing.T) {
	p := profile.Profile{
		ProductState:      profile.StateLiquid,
		BudgetRange:       profile.BudgetPremium,
		Sustainability:    profile.PriorityEco,
		OxygenSensitivity: profile.SensitivityHigh,
	}
	first := Reasons(p, reasonsMaterial(), 92)
	second := Reasons(p, reasonsMaterial(), 92)
	require.Equal(t, first, second)
}
