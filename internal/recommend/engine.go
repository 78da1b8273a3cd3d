// Package recommend ranks every material in the catalog against an attribute
// profile and explains why each one placed where it did.
package recommend

import (
	"sort"
	"strings"

	"github.com/psinghania/packadvisor/internal/catalog"
	"github.com/psinghania/packadvisor/internal/profile"
	"github.com/psinghania/packadvisor/internal/scoring"
)

// Recommendation is one scored material, ephemeral per query.
type Recommendation struct {
	// Name is the display name (underscores replaced with spaces).
	Name string `json:"name"`
	// MaterialName is the catalog key.
	MaterialName   string           `json:"material_name"`
	Score          float64          `json:"score"`
	ScoringDetails []string         `json:"scoring_details"`
	Reasons        []string         `json:"reasons"`
	Material       catalog.Material `json:"data"`
}

// Engine runs the scorer over a whole catalog.
type Engine struct{}

// NewEngine creates a recommendation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Recommend scores every material in the catalog, sorts descending by score,
// and attaches reasons. No material is filtered out — a 0% match is still
// returned, ranked last. An empty catalog yields an empty (non-nil) slice;
// callers render that as "no data", not an error.
//
// Materials are visited in sorted-name order and the sort is stable, so
// identical inputs always produce byte-identical results and ties rank in
// name order.
func (e *Engine) Recommend(p profile.Profile, cat *catalog.Catalog) ([]Recommendation, error) {
	recs := make([]Recommendation, 0, len(cat.Materials))

	for _, name := range cat.MaterialNames() {
		material := cat.Materials[name]
		score, details, err := scoring.Score(p, name, material, cat)
		if err != nil {
			return nil, err
		}
		recs = append(recs, Recommendation{
			Name:           strings.ReplaceAll(name, "_", " "),
			MaterialName:   name,
			Score:          score,
			ScoringDetails: details,
			Reasons:        Reasons(p, material, score),
			Material:       material,
		})
	}

	sort.SliceStable(recs, func(a, b int) bool {
		return recs[a].Score > recs[b].Score
	})
	return recs, nil
}

// Top returns at most n recommendations from an already-ranked slice.
func Top(recs []Recommendation, n int) []Recommendation {
	if n <= 0 || n >= len(recs) {
		return recs
	}
	return recs[:n]
}
