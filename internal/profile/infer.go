package profile

import (
	"strings"

	"github.com/psinghania/packadvisor/internal/catalog"
)

// categoryRule pairs a keyword set with the profile overrides it applies.
// Rules are evaluated in declaration order and the first rule whose keywords
// match wins exclusively; later rules never apply on top of an earlier match.
type categoryRule struct {
	name     string
	keywords []string
	apply    func(name string, p *Profile)
}

// categoryRules is the ordered product categoriser. Keyword matching is a
// case-insensitive substring test against the product name. The apply blocks
// may branch further on sub-keywords (e.g. "milk" inside beverages).
var categoryRules = []categoryRule{
	{
		name:     "beverages",
		keywords: []string{"juice", "water", "soda", "beverage", "drink", "tea", "coffee", "milk"},
		apply: func(name string, p *Profile) {
			p.ProductState = StateLiquid
			p.Viscosity = "Low"
			p.StorageTemperature = TempAmbient
			p.OxygenSensitivity = SensitivityLow
			p.LightSensitivity = SensitivityMedium
			p.ShelfLife = ShelfMonths
			if strings.Contains(name, "milk") {
				p.StorageTemperature = TempCold
				p.LightSensitivity = SensitivityHigh
				p.ShelfLife = ShelfWeeks
			}
		},
	},
	{
		name:     "dairy",
		keywords: []string{"yogurt", "yoghurt", "cheese", "butter", "cream", "curd", "dairy"},
		apply: func(name string, p *Profile) {
			p.ProductState = StateSemiSolid
			p.StorageTemperature = TempCold
			p.LightSensitivity = SensitivityHigh
			p.OxygenSensitivity = SensitivityMedium
			p.ShelfLife = ShelfWeeks
		},
	},
	{
		name:     "oils and sauces",
		keywords: []string{"oil", "sauce", "ketchup", "dressing", "vinegar", "syrup", "honey"},
		apply: func(name string, p *Profile) {
			p.ProductState = StateLiquid
			p.Viscosity = "High"
			p.OxygenSensitivity = SensitivityHigh
			p.LightSensitivity = SensitivityHigh
			p.ShelfLife = ShelfMonths
			if strings.Contains(name, "ketchup") || strings.Contains(name, "sauce") || strings.Contains(name, "vinegar") || strings.Contains(name, "dressing") {
				p.PHLevel = PHAcidic
			}
		},
	},
	{
		name:     "grains and dry goods",
		keywords: []string{"rice", "flour", "pasta", "cereal", "grain", "lentil", "bean", "sugar", "salt", "spice"},
		apply: func(name string, p *Profile) {
			p.ProductState = StateSolid
			p.Viscosity = "N/A"
			p.MoistureSensitivity = SensitivityHigh
			p.OxygenSensitivity = SensitivityLow
			p.ShelfLife = ShelfMonths
			for _, powdery := range []string{"flour", "sugar", "salt", "spice"} {
				if strings.Contains(name, powdery) {
					p.ProductState = StatePowder
					break
				}
			}
		},
	},
	{
		name:     "snacks",
		keywords: []string{"chips", "snack", "cracker", "biscuit", "cookie", "nut", "popcorn", "pretzel"},
		apply: func(name string, p *Profile) {
			p.ProductState = StateSolid
			p.Viscosity = "N/A"
			p.OxygenSensitivity = SensitivityHigh
			p.MoistureSensitivity = SensitivityHigh
			p.LightSensitivity = SensitivityMedium
			p.FragilityLevel = "Fragile"
			p.ShelfLife = ShelfMonths
		},
	},
	{
		name:     "meat and protein",
		keywords: []string{"meat", "chicken", "beef", "fish", "pork", "seafood", "sausage", "protein"},
		apply: func(name string, p *Profile) {
			p.ProductState = StateSolid
			p.StorageTemperature = TempCold
			p.OxygenSensitivity = SensitivityHigh
			p.LightSensitivity = SensitivityMedium
			p.ShelfLife = ShelfDays
		},
	},
	{
		name:     "frozen",
		keywords: []string{"frozen", "ice cream", "icecream", "popsicle"},
		apply: func(name string, p *Profile) {
			p.ProductState = StateSolid
			p.StorageTemperature = TempFrozen
			p.MoistureSensitivity = SensitivityHigh
			p.ShelfLife = ShelfMonths
			if strings.Contains(name, "ice cream") || strings.Contains(name, "icecream") {
				p.ProductState = StateSemiSolid
			}
		},
	},
	{
		name:     "canned",
		keywords: []string{"canned", "soup", "preserved", "tinned"},
		apply: func(name string, p *Profile) {
			p.ProductState = StateLiquid
			p.Viscosity = "Medium"
			p.StorageTemperature = TempAmbient
			p.OxygenSensitivity = SensitivityHigh
			p.ShelfLife = ShelfYears
		},
	},
	{
		name:     "confectionery",
		keywords: []string{"chocolate", "candy", "sweet", "gum", "confection", "toffee"},
		apply: func(name string, p *Profile) {
			p.ProductState = StateSolid
			p.StorageTemperature = TempCool
			p.LightSensitivity = SensitivityHigh
			p.MoistureSensitivity = SensitivityMedium
			p.ShelfLife = ShelfMonths
		},
	},
	{
		name:     "baby food",
		keywords: []string{"baby", "infant", "formula", "toddler"},
		apply: func(name string, p *Profile) {
			p.ProductState = StatePaste
			p.OxygenSensitivity = SensitivityHigh
			p.MoistureSensitivity = SensitivityHigh
			p.LightSensitivity = SensitivityHigh
			p.SafetyFeatures = []string{"Tamper evident"}
			p.ShelfLife = ShelfMonths
		},
	},
}

// Infer derives a fully-populated attribute profile for a product.
//
// If the product name exactly matches a stored product carrying a saved
// attribute profile, that profile is reused with the caller's budget and shelf
// life overriding the stored values — explicit user input always wins over
// stored history for those two fields. Otherwise the profile starts from
// Default() and the first matching category rule applies, followed by
// cross-cutting adjustments for budget and shelf life. Only the product name
// drives categorisation today; purpose is recorded for future use.
//
// Infer never fails: a product it knows nothing about scores against the
// default profile.
func Infer(productName, purpose string, cost Budget, shelfLife ShelfLife, cat *catalog.Catalog) Profile {
	_ = purpose

	if cat != nil {
		if prod, ok := cat.Products[productName]; ok && prod.AttributeProfile != nil {
			if p, err := FromMap(prod.AttributeProfile); err == nil {
				p.BudgetRange = cost
				p.ShelfLife = shelfLife
				return p
			}
		}
	}

	p := Default()
	lower := strings.ToLower(productName)

	for _, rule := range categoryRules {
		if containsAny(lower, rule.keywords) {
			rule.apply(lower, &p)
			break
		}
	}

	p.BudgetRange = cost
	p.ShelfLife = shelfLife

	// Cross-cutting adjustments apply unconditionally, overriding any
	// category-specific value.
	switch cost {
	case BudgetPremium:
		p.BrandPositioning = PositioningPremium
	case BudgetEconomy:
		p.BrandPositioning = PositioningValue
		p.Sustainability = PriorityCost
	}
	if shelfLife == ShelfMonths || shelfLife == ShelfYears {
		p.OxygenSensitivity = SensitivityHigh
		p.MoistureSensitivity = SensitivityHigh
	}

	return p
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
