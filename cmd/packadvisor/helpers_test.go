package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psinghania/packadvisor/internal/catalog"
)

func testGlassBottle() catalog.Material {
	return catalog.Material{
		MaterialType: "Glass",
		Characteristics: catalog.Characteristics{
			CostCategory:              "Premium",
			ProductStateCompatibility: []string{"Liquid", "Paste"},
			OxygenBarrier:             "Excellent",
			MoistureBarrier:           "Excellent",
			LightBarrier:              "Low",
			ChemicalResistance:        "Excellent",
			PHTolerance:               []string{"Acidic", "Neutral", "Basic"},
			TemperatureRange:          []string{"Cold", "Cool", "Ambient", "Hot"},
		},
		Sustainability: catalog.Sustainability{Recyclable: true, PCRAvailable: true},
		Pros:           []string{"Inert", "Premium feel"},
		Cons:           []string{"Heavy"},
	}
}

func testPaperPouch() catalog.Material {
	return catalog.Material{
		MaterialType: "Paper",
		Characteristics: catalog.Characteristics{
			CostCategory:              "Economy",
			ProductStateCompatibility: []string{"Solid", "Powder"},
			OxygenBarrier:             "Low",
			MoistureBarrier:           "Low",
			LightBarrier:              "Medium",
			PHTolerance:               []string{"Neutral"},
			TemperatureRange:          []string{"Ambient"},
		},
		Sustainability: catalog.Sustainability{Recyclable: true, Biodegradable: true},
		Pros:           []string{"Lightweight"},
	}
}

// seedCatalog writes a small catalog to a temp dir and returns its path.
func seedCatalog(t *testing.T) string {
	t.Helper()

	cat := catalog.New()
	cat.Materials["Glass_Bottle"] = testGlassBottle()
	cat.Materials["Paper_Pouch"] = testPaperPouch()

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, catalog.NewStore(path).Save(cat))
	return path
}

// runCommand executes the CLI with the given args and returns its combined
// output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := newRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
