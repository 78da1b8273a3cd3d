// Package profile defines the attribute profile that describes a product's
// packaging-relevant properties, and the inference heuristic that derives a
// profile from a product name when no saved profile exists.
package profile

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// State represents the physical state of a product.
type State string

const (
	StateLiquid    State = "Liquid"
	StateSolid     State = "Solid"
	StatePowder    State = "Powder"
	StatePaste     State = "Paste"
	StateSemiSolid State = "Semi-solid"
	StateGas       State = "Gas"
)

// PHLevel represents the chemical nature of a product.
type PHLevel string

const (
	PHAcidic  PHLevel = "Acidic"
	PHNeutral PHLevel = "Neutral"
	PHBasic   PHLevel = "Basic"
)

// Sensitivity represents how strongly a product degrades when exposed to
// oxygen, moisture or light.
type Sensitivity string

const (
	SensitivityNone   Sensitivity = "None"
	SensitivityLow    Sensitivity = "Low"
	SensitivityMedium Sensitivity = "Medium"
	SensitivityHigh   Sensitivity = "High"
)

var sensitivityRank = map[Sensitivity]int{
	SensitivityNone:   0,
	SensitivityLow:    1,
	SensitivityMedium: 2,
	SensitivityHigh:   3,
}

// AtLeast returns true if s is at or above the target sensitivity.
func (s Sensitivity) AtLeast(target Sensitivity) bool {
	return sensitivityRank[s] >= sensitivityRank[target]
}

// Temperature represents required storage conditions.
type Temperature string

const (
	TempFrozen  Temperature = "Frozen"
	TempCold    Temperature = "Cold"
	TempCool    Temperature = "Cool"
	TempAmbient Temperature = "Ambient"
	TempHot     Temperature = "Hot"
)

// Budget represents the packaging budget level.
type Budget string

const (
	BudgetEconomy  Budget = "Economy"
	BudgetStandard Budget = "Standard"
	BudgetPremium  Budget = "Premium"
)

// ParseBudget converts a string flag value to a Budget.
func ParseBudget(s string) (Budget, error) {
	switch s {
	case "Economy", "economy":
		return BudgetEconomy, nil
	case "Standard", "standard":
		return BudgetStandard, nil
	case "Premium", "premium":
		return BudgetPremium, nil
	default:
		return BudgetStandard, fmt.Errorf("invalid budget %q: must be Economy, Standard, or Premium", s)
	}
}

// Priority represents how environmental impact is weighted against cost.
type Priority string

const (
	PriorityCost     Priority = "Cost focused"
	PriorityBalanced Priority = "Balanced"
	PriorityEco      Priority = "Eco-focused"
)

// ShelfLife represents how long a product must remain stable.
type ShelfLife string

const (
	ShelfDays   ShelfLife = "Days"
	ShelfWeeks  ShelfLife = "Weeks"
	ShelfMonths ShelfLife = "Months"
	ShelfYears  ShelfLife = "Years"
)

// ParseShelfLife converts a string flag value to a ShelfLife.
func ParseShelfLife(s string) (ShelfLife, error) {
	switch s {
	case "Days", "days":
		return ShelfDays, nil
	case "Weeks", "weeks":
		return ShelfWeeks, nil
	case "Months", "months":
		return ShelfMonths, nil
	case "Years", "years":
		return ShelfYears, nil
	default:
		return ShelfMonths, fmt.Errorf("invalid shelf life %q: must be Days, Weeks, Months, or Years", s)
	}
}

// Positioning represents how the brand is positioned in its market.
type Positioning string

const (
	PositioningValue      Positioning = "Value"
	PositioningMainstream Positioning = "Mainstream"
	PositioningPremium    Positioning = "Premium"
	PositioningLuxury     Positioning = "Luxury"
)

// Profile is the structured description of a product's packaging-relevant
// properties, used as the scoring input. Absent fields fall back to scoring
// defaults instead of failing; see the scoring package.
type Profile struct {
	ProductState        State       `mapstructure:"product_state" json:"product_state"`
	Viscosity           string      `mapstructure:"viscosity" json:"viscosity,omitempty"`
	PHLevel             PHLevel     `mapstructure:"ph_level" json:"ph_level"`
	OxygenSensitivity   Sensitivity `mapstructure:"oxygen_sensitivity" json:"oxygen_sensitivity"`
	MoistureSensitivity Sensitivity `mapstructure:"moisture_sensitivity" json:"moisture_sensitivity"`
	LightSensitivity    Sensitivity `mapstructure:"light_sensitivity" json:"light_sensitivity"`
	StorageTemperature  Temperature `mapstructure:"storage_temperature" json:"storage_temperature"`
	BudgetRange         Budget      `mapstructure:"budget_range" json:"budget_range"`
	Sustainability      Priority    `mapstructure:"sustainability_priority" json:"sustainability_priority"`
	ShelfLife           ShelfLife   `mapstructure:"shelf_life_requirement" json:"shelf_life_requirement"`

	TargetMarket     string      `mapstructure:"target_market" json:"target_market,omitempty"`
	IndustryCategory string      `mapstructure:"industry_category" json:"industry_category,omitempty"`
	FragilityLevel   string      `mapstructure:"fragility_level" json:"fragility_level,omitempty"`
	SafetyFeatures   []string    `mapstructure:"safety_requirements" json:"safety_requirements,omitempty"`
	BrandPositioning Positioning `mapstructure:"brand_positioning" json:"brand_positioning,omitempty"`
}

// Default returns the baseline profile used when nothing is known about a
// product: a liquid at ambient storage with medium sensitivities and a
// balanced sustainability stance.
func Default() Profile {
	return Profile{
		ProductState:        StateLiquid,
		Viscosity:           "Medium",
		PHLevel:             PHNeutral,
		OxygenSensitivity:   SensitivityMedium,
		MoistureSensitivity: SensitivityMedium,
		LightSensitivity:    SensitivityMedium,
		StorageTemperature:  TempAmbient,
		BudgetRange:         BudgetStandard,
		Sustainability:      PriorityBalanced,
		ShelfLife:           ShelfMonths,
		TargetMarket:        "Consumer retail",
		IndustryCategory:    "Food",
		FragilityLevel:      "Moderate",
		BrandPositioning:    PositioningMainstream,
	}
}

// AsMap converts the profile into the attribute-key → value mapping used by
// rule-trigger matching and the catalog document.
func (p Profile) AsMap() map[string]any {
	var out map[string]any
	// Decoding a struct into a map cannot fail for these field types.
	_ = mapstructure.Decode(p, &out)
	return out
}

// FromMap decodes a stored attribute mapping into a Profile. Unknown keys are
// ignored; known keys with the wrong shape are an error.
func FromMap(attrs map[string]any) (Profile, error) {
	var p Profile
	if err := mapstructure.Decode(attrs, &p); err != nil {
		return Profile{}, fmt.Errorf("decoding attribute profile: %w", err)
	}
	return p, nil
}
