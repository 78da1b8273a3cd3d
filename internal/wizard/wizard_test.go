package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/psinghania/packadvisor/internal/profile"
)

func TestAnswersFrom_RoundTrip(t *testing.T) {
	p := profile.Default()
	p.PHLevel = profile.PHAcidic
	p.BudgetRange = profile.BudgetPremium

	a := AnswersFrom(p)
	assert.Equal(t, "Liquid", a.ProductState)
	assert.Equal(t, "Acidic", a.PHLevel)
	assert.Equal(t, "Premium", a.Budget)

	// Applying unchanged answers reproduces the profile.
	assert.Equal(t, p, a.Apply(p))
}

func TestAnswersApply_Overrides(t *testing.T) {
	p := profile.Default()

	a := AnswersFrom(p)
	a.ProductState = "Powder"
	a.MoistureSensitivity = "High"
	a.Budget = "Economy"
	a.Sustainability = "Eco-focused"

	got := a.Apply(p)
	assert.Equal(t, profile.StatePowder, got.ProductState)
	assert.Equal(t, profile.SensitivityHigh, got.MoistureSensitivity)
	assert.Equal(t, profile.BudgetEconomy, got.BudgetRange)
	assert.Equal(t, profile.PriorityEco, got.Sustainability)

	// Untouched fields carry over.
	assert.Equal(t, p.PHLevel, got.PHLevel)
	assert.Equal(t, p.StorageTemperature, got.StorageTemperature)
}

func TestAnswersApply_BlankLeavesFieldUntouched(t *testing.T) {
	p := profile.Default()
	p.BrandPositioning = profile.PositioningPremium

	var a Answers
	a.ProductState = "Solid"

	got := a.Apply(p)
	assert.Equal(t, profile.StateSolid, got.ProductState)
	assert.Equal(t, profile.PositioningPremium, got.BrandPositioning)
	assert.Equal(t, p.BudgetRange, got.BudgetRange)
}

func TestOptions(t *testing.T) {
	opts := options("Economy", "Standard", "Premium")
	assert.Len(t, opts, 3)
	assert.Equal(t, "Economy", opts[0].Value)
	assert.Equal(t, "Premium", opts[2].Value)
}
