package catalog

// Default factor weights. These are the single source of truth — the scorer
// falls back to them whenever the catalog's scoring_parameters section is
// missing a weight.
const (
	DefaultWeightProductState   = 25
	DefaultWeightBarrier        = 20
	DefaultWeightChemical       = 15
	DefaultWeightCost           = 12
	DefaultWeightTemperature    = 10
	DefaultWeightSustainability = 8
)

// DefaultWeights returns the built-in compatibility weight table.
func DefaultWeights() map[string]int {
	return map[string]int{
		"product_state":            DefaultWeightProductState,
		"barrier_requirements":     DefaultWeightBarrier,
		"chemical_compatibility":   DefaultWeightChemical,
		"cost_alignment":           DefaultWeightCost,
		"temperature_requirements": DefaultWeightTemperature,
		"sustainability_match":     DefaultWeightSustainability,
	}
}

// DefaultBarrierScoring returns the built-in barrier lookup table.
//
// The table is keyed twice per sensitivity level: the bare level name guards
// whether the sensitivity participates at all, and the "<level>_need" key
// holds the points mapping the lookup actually reads ("None" is both). Both
// shapes must stay present or the guard and the lookup disagree; this mirrors
// the catalog format's historical key derivation and is covered by tests.
func DefaultBarrierScoring() map[string]map[string]map[string]float64 {
	perType := func() map[string]map[string]float64 {
		low := map[string]float64{"Low": 1, "Medium": 2, "High": 2, "Excellent": 2}
		medium := map[string]float64{"Low": 1, "Medium": 3, "High": 4, "Excellent": 5}
		high := map[string]float64{"Low": 0, "Medium": 2, "High": 6, "Excellent": 8}
		return map[string]map[string]float64{
			"None":        {},
			"Low":         low,
			"Low_need":    low,
			"Medium":      medium,
			"Medium_need": medium,
			"High":        high,
			"High_need":   high,
		}
	}
	return map[string]map[string]map[string]float64{
		"oxygen":   perType(),
		"moisture": perType(),
		"light":    perType(),
	}
}

// DefaultCostScoring returns the built-in cost alignment table. Values may be
// negative: a premium material against an economy budget is penalized.
func DefaultCostScoring() map[string]map[string]float64 {
	return map[string]map[string]float64{
		"Economy": {
			"Economy":  12,
			"Standard": 6,
			"Premium":  -4,
		},
		"Standard": {
			"Economy":  8,
			"Standard": 12,
			"Premium":  6,
		},
		"Premium": {
			"Economy":  -2,
			"Standard": 8,
			"Premium":  12,
		},
	}
}

// EffectiveScoring returns the catalog's scoring parameters with any missing
// section replaced by the built-in defaults. The engine must run on an empty
// or partial catalog without crashing.
func (c *Catalog) EffectiveScoring() ScoringParameters {
	sp := c.Scoring
	if sp.CompatibilityWeights == nil {
		sp.CompatibilityWeights = DefaultWeights()
	}
	if sp.BarrierScoring == nil {
		sp.BarrierScoring = DefaultBarrierScoring()
	}
	if sp.CostScoring == nil {
		sp.CostScoring = DefaultCostScoring()
	}
	return sp
}

// Weight returns the configured cap for a factor, or the supplied default when
// the weight table lacks the key.
func (sp ScoringParameters) Weight(factor string, fallback int) int {
	if w, ok := sp.CompatibilityWeights[factor]; ok {
		return w
	}
	return fallback
}
