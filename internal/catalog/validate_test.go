package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const wellFormedDoc = `{
	"products": {
		"Honey": {
			"basic_info": {"category": "Food", "subcategory": "Spreads"},
			"properties": {"weight_volume": "250g"},
			"packaging": {"primary": ["Glass Jar"], "secondary": [], "tertiary": []},
			"attribute_profile": {"product_state": "Liquid", "viscosity": "High"}
		}
	},
	"packaging_materials": {
		"Glass_Jar": {
			"material_type": "Glass",
			"characteristics": {
				"cost_category": "Premium",
				"product_state_compatibility": ["Liquid", "Paste"],
				"oxygen_barrier": "Excellent",
				"moisture_barrier": "Excellent",
				"light_barrier": "Low",
				"ph_tolerance": ["Acidic", "Neutral", "Basic"],
				"temperature_range": ["Cold", "Cool", "Ambient", "Hot"]
			},
			"sustainability": {"recyclable": true, "pcr_available": true, "biodegradable": false},
			"pros": ["Inert"],
			"cons": ["Heavy"],
			"technical_specs": {"max_temp": "500C"}
		}
	},
	"recommendation_rules": {
		"premium_glass": {
			"triggers": [{"budget_range": "Premium"}],
			"recommended_materials": ["Glass_Jar"],
			"priority_score": 10
		}
	},
	"scoring_parameters": {
		"compatibility_weights": {"product_state": 25},
		"cost_scoring": {"Premium": {"Premium": 12}}
	}
}`

func TestValidateBytes_WellFormed(t *testing.T) {
	require.Empty(t, ValidateBytes([]byte(wellFormedDoc)))
}

func TestValidateBytes_EmptyDocument(t *testing.T) {
	require.Empty(t, ValidateBytes([]byte(`{}`)))
}

func TestValidateBytes_MissingBarrier(t *testing.T) {
	doc := `{
		"packaging_materials": {
			"Bad": {
				"material_type": "Film",
				"characteristics": {
					"cost_category": "Economy",
					"product_state_compatibility": ["Solid"],
					"oxygen_barrier": "Low",
					"moisture_barrier": "Low",
					"ph_tolerance": ["Neutral"],
					"temperature_range": ["Ambient"]
				},
				"sustainability": {"recyclable": false, "pcr_available": false, "biodegradable": false}
			}
		}
	}`
	errs := ValidateBytes([]byte(doc))
	require.NotEmpty(t, errs)

	found := false
	for _, e := range errs {
		if strings.Contains(e, "Bad") {
			found = true
		}
	}
	require.True(t, found, "expected an error mentioning the bad material, got %v", errs)
}

func TestValidateBytes_BadEnumValue(t *testing.T) {
	doc := `{
		"packaging_materials": {
			"Bad": {
				"material_type": "Film",
				"characteristics": {
					"cost_category": "Cheap",
					"product_state_compatibility": ["Solid"],
					"oxygen_barrier": "Low",
					"moisture_barrier": "Low",
					"light_barrier": "Low",
					"ph_tolerance": ["Neutral"],
					"temperature_range": ["Ambient"]
				},
				"sustainability": {"recyclable": false, "pcr_available": false, "biodegradable": false}
			}
		}
	}`
	require.NotEmpty(t, ValidateBytes([]byte(doc)))
}

func TestValidateBytes_InvalidJSON(t *testing.T) {
	errs := ValidateBytes([]byte("{"))
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "JSON parse error")
}

func TestCatalogValidate_AfterProgrammaticEdit(t *testing.T) {
	cat := New()
	cat.Materials["Glass_Jar"] = validMaterial()
	require.Empty(t, cat.Validate())

	broken := validMaterial()
	broken.Characteristics.CostCategory = "Cheap"
	cat.Materials["Broken"] = broken
	require.NotEmpty(t, cat.Validate())
}
