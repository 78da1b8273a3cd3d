// Package catalog holds the packaging catalog document: products, packaging
// materials, recommendation rules, and scoring parameters. The document is a
// single JSON file loaded wholesale at startup and written wholesale after any
// mutation; during a scoring pass the catalog is read-only.
package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMaterialNotFound is returned when a material name does not exist in the catalog.
var ErrMaterialNotFound = errors.New("material not found")

// ErrProductExists is returned when adding a product whose name is already taken.
var ErrProductExists = errors.New("product already exists")

// Catalog is the top-level catalog document.
type Catalog struct {
	Products  map[string]Product           `json:"products"`
	Materials map[string]Material          `json:"packaging_materials"`
	Rules     map[string]RecommendationRule `json:"recommendation_rules"`
	Scoring   ScoringParameters            `json:"scoring_parameters"`
}

// New returns an empty catalog with all sections present.
func New() *Catalog {
	return &Catalog{
		Products:  map[string]Product{},
		Materials: map[string]Material{},
		Rules:     map[string]RecommendationRule{},
	}
}

// Product is a stored product record. AttributeProfile, when present, is the
// saved attribute mapping that inference reuses for exact name matches.
type Product struct {
	BasicInfo        BasicInfo         `json:"basic_info"`
	Properties       ProductProperties `json:"properties"`
	Packaging        PackagingLevels   `json:"packaging"`
	AttributeProfile map[string]any    `json:"attribute_profile,omitempty"`
	CreatedDate      string            `json:"created_date,omitempty"`
}

// BasicInfo identifies a product's category and market.
type BasicInfo struct {
	Category       string `json:"category"`
	Subcategory    string `json:"subcategory,omitempty"`
	IntendedMarket string `json:"intended_market,omitempty"`
}

// ProductProperties holds physical properties captured at save time.
type ProductProperties struct {
	WeightVolume        string `json:"weight_volume,omitempty"`
	ShapeForm           string `json:"shape_form,omitempty"`
	ShelfLife           string `json:"shelf_life,omitempty"`
	Fragility           string `json:"fragility,omitempty"`
	MoistureSensitivity string `json:"moisture_sensitivity,omitempty"`
	LightSensitivity    string `json:"light_sensitivity,omitempty"`
}

// PackagingLevels lists the packaging solutions recorded for a product.
type PackagingLevels struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
	Tertiary  []string `json:"tertiary"`
}

// Material describes one packaging material. Materials are created and edited
// through catalog management and are read-only during scoring.
type Material struct {
	MaterialType    string            `json:"material_type"`
	Characteristics Characteristics   `json:"characteristics"`
	Sustainability  Sustainability    `json:"sustainability"`
	Pros            []string          `json:"pros,omitempty"`
	Cons            []string          `json:"cons,omitempty"`
	TechnicalSpecs  map[string]string `json:"technical_specs,omitempty"`
}

// Characteristics holds the scoring-relevant properties of a material.
// Barrier levels are qualitative (Low, Medium, High, Excellent).
type Characteristics struct {
	CostCategory              string   `json:"cost_category"`
	ProductStateCompatibility []string `json:"product_state_compatibility"`
	OxygenBarrier             string   `json:"oxygen_barrier"`
	MoistureBarrier           string   `json:"moisture_barrier"`
	LightBarrier              string   `json:"light_barrier"`
	ChemicalResistance        string   `json:"chemical_resistance,omitempty"`
	PHTolerance               []string `json:"ph_tolerance"`
	TemperatureRange          []string `json:"temperature_range"`
}

// Sustainability holds a material's environmental attributes.
type Sustainability struct {
	Recyclable    bool `json:"recyclable"`
	PCRAvailable  bool `json:"pcr_available"`
	Biodegradable bool `json:"biodegradable"`
}

// Barrier returns the named barrier level (oxygen, moisture or light).
func (c Characteristics) Barrier(barrierType string) string {
	switch barrierType {
	case "oxygen":
		return c.OxygenBarrier
	case "moisture":
		return c.MoistureBarrier
	case "light":
		return c.LightBarrier
	}
	return ""
}

// Validate checks that a material record carries every field the scorer
// requires. Scoring a material with absent barrier data as fully compatible
// would corrupt rankings, so a malformed record is an error, not a guess.
func (m Material) Validate(name string) error {
	c := m.Characteristics
	if c.CostCategory == "" {
		return fmt.Errorf("material %q: missing characteristics.cost_category", name)
	}
	if len(c.ProductStateCompatibility) == 0 {
		return fmt.Errorf("material %q: missing characteristics.product_state_compatibility", name)
	}
	for _, bt := range []string{"oxygen", "moisture", "light"} {
		if c.Barrier(bt) == "" {
			return fmt.Errorf("material %q: missing characteristics.%s_barrier", name, bt)
		}
	}
	if len(c.PHTolerance) == 0 {
		return fmt.Errorf("material %q: missing characteristics.ph_tolerance", name)
	}
	if len(c.TemperatureRange) == 0 {
		return fmt.Errorf("material %q: missing characteristics.temperature_range", name)
	}
	return nil
}

// RecommendationRule boosts or penalizes specific materials when a profile
// matches its triggers. A rule fires as soon as any single key/value pair in
// any trigger matches the profile; this is deliberately an OR across all
// (trigger, key) pairs, matching the behavior the catalog format grew up with.
type RecommendationRule struct {
	Triggers             []map[string]string `json:"triggers"`
	RecommendedMaterials []string            `json:"recommended_materials,omitempty"`
	AvoidMaterials       []string            `json:"avoid_materials,omitempty"`
	PriorityScore        float64             `json:"priority_score"`
}

// ScoringParameters configures the compatibility scorer. All three tables are
// externally editable lookup tables, not code: compatibility weights cap each
// factor, barrier scoring maps sensitivity level and material barrier level to
// points, and cost scoring maps user budget and material cost category to
// points (which may be negative).
type ScoringParameters struct {
	CompatibilityWeights map[string]int                           `json:"compatibility_weights,omitempty"`
	BarrierScoring       map[string]map[string]map[string]float64 `json:"barrier_scoring,omitempty"`
	CostScoring          map[string]map[string]float64            `json:"cost_scoring,omitempty"`
}

// MaterialNames returns the catalog's material names in sorted order, the
// iteration order used by the ranker so identical inputs rank identically.
func (c *Catalog) MaterialNames() []string {
	names := make([]string, 0, len(c.Materials))
	for name := range c.Materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RuleNames returns rule names in sorted order so bonus accumulation is
// deterministic.
func (c *Catalog) RuleNames() []string {
	names := make([]string, 0, len(c.Rules))
	for name := range c.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProductNames returns product names in sorted order.
func (c *Catalog) ProductNames() []string {
	names := make([]string, 0, len(c.Products))
	for name := range c.Products {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
