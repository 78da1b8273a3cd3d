package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAsMap_UsesAttributeKeys(t *testing.T) {
	p := Default()
	attrs := p.AsMap()

	require.Equal(t, StateLiquid, attrs["product_state"])
	require.Equal(t, PriorityBalanced, attrs["sustainability_priority"])
	require.Equal(t, ShelfMonths, attrs["shelf_life_requirement"])
	require.Contains(t, attrs, "oxygen_sensitivity")
	require.Contains(t, attrs, "budget_range")
}

func TestFromMap_RoundTrip(t *testing.T) {
	p := Default()
	p.SafetyFeatures = []string{"Tamper evident"}

	got, err := FromMap(p.AsMap())
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestFromMap_PlainJSONStrings(t *testing.T) {
	// Profiles stored in the catalog come back from JSON as plain strings;
	// decoding must populate the typed fields.
	raw := `{
		"product_state": "Powder",
		"ph_level": "Basic",
		"oxygen_sensitivity": "High",
		"storage_temperature": "Cool",
		"budget_range": "Premium",
		"sustainability_priority": "Eco-focused",
		"shelf_life_requirement": "Years",
		"safety_requirements": ["Child resistant", "Tamper evident"]
	}`
	var attrs map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &attrs))

	p, err := FromMap(attrs)
	require.NoError(t, err)
	require.Equal(t, StatePowder, p.ProductState)
	require.Equal(t, PHBasic, p.PHLevel)
	require.Equal(t, SensitivityHigh, p.OxygenSensitivity)
	require.Equal(t, TempCool, p.StorageTemperature)
	require.Equal(t, BudgetPremium, p.BudgetRange)
	require.Equal(t, PriorityEco, p.Sustainability)
	require.Equal(t, ShelfYears, p.ShelfLife)
	require.Equal(t, []string{"Child resistant", "Tamper evident"}, p.SafetyFeatures)
}

func TestFromMap_UnknownKeysIgnored(t *testing.T) {
	p, err := FromMap(map[string]any{
		"product_state": "Solid",
		"legacy_field":  42,
	})
	require.NoError(t, err)
	require.Equal(t, StateSolid, p.ProductState)
}

func TestSensitivityAtLeast(t *testing.T) {
	if !SensitivityHigh.AtLeast(SensitivityMedium) {
		t.Error("High should be at least Medium")
	}
	if SensitivityLow.AtLeast(SensitivityMedium) {
		t.Error("Low should not be at least Medium")
	}
	if !SensitivityNone.AtLeast(SensitivityNone) {
		t.Error("None should be at least None")
	}
}

func TestParseBudget(t *testing.T) {
	b, err := ParseBudget("economy")
	require.NoError(t, err)
	require.Equal(t, BudgetEconomy, b)

	_, err = ParseBudget("luxurious")
	require.Error(t, err)
}

func TestParseShelfLife(t *testing.T) {
	s, err := ParseShelfLife("Years")
	require.NoError(t, err)
	require.Equal(t, ShelfYears, s)

	_, err = ParseShelfLife("forever")
	require.Error(t, err)
}
