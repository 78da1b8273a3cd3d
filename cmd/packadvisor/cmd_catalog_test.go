package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psinghania/packadvisor/internal/catalog"
)

func TestCatalogListCommand(t *testing.T) {
	path := seedCatalog(t)

	out, err := runCommand(t, "catalog", "list", "--catalog", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Glass_Bottle")
	assert.Contains(t, out, "Paper_Pouch")
	assert.Contains(t, out, "Excellent/Excellent/Low")
	assert.Contains(t, out, "2 material(s)")
}

func TestCatalogListCommand_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	out, err := runCommand(t, "catalog", "list", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No packaging materials in the catalog.")
}

func TestCatalogListCommand_JSON(t *testing.T) {
	path := seedCatalog(t)

	out, err := runCommand(t, "catalog", "list", "--catalog", path, "--format", "json")
	require.NoError(t, err)

	var materials map[string]catalog.Material
	require.NoError(t, json.Unmarshal([]byte(out), &materials))
	assert.Len(t, materials, 2)
}

func TestCatalogValidateCommand_Valid(t *testing.T) {
	path := seedCatalog(t)

	out, err := runCommand(t, "catalog", "validate", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestCatalogValidateCommand_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	out, err := runCommand(t, "catalog", "validate", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "does not exist yet")
}

func TestCatalogValidateCommand_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	doc := `{
		"packaging_materials": {
			"Bad_Pouch": {
				"material_type": "Film",
				"characteristics": {
					"cost_category": "Economy",
					"product_state_compatibility": ["Solid"],
					"ph_tolerance": ["Neutral"],
					"temperature_range": ["Ambient"]
				},
				"sustainability": {"recyclable": true, "pcr_available": false, "biodegradable": false}
			}
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := runCommand(t, "catalog", "validate", "--catalog", path)
	require.Error(t, err)

	var issuesErr *CatalogIssuesError
	require.True(t, errors.As(err, &issuesErr), "expected CatalogIssuesError, got %T", err)
	assert.Contains(t, out, "Bad_Pouch")
}

func TestCatalogAddProductCommand(t *testing.T) {
	path := seedCatalog(t)

	out, err := runCommand(t, "catalog", "add-product", "Orange", "Juice",
		"--catalog", path, "--budget", "Premium", "--shelf-life", "Weeks")
	require.NoError(t, err)
	assert.Contains(t, out, `Added "Orange Juice"`)

	cat, err := catalog.NewStore(path).Load()
	require.NoError(t, err)
	prod, ok := cat.Products["Orange Juice"]
	require.True(t, ok)
	assert.Equal(t, "Premium", prod.AttributeProfile["budget_range"])
	assert.NotEmpty(t, prod.CreatedDate)
}

func TestCatalogAddProductCommand_DuplicateFails(t *testing.T) {
	path := seedCatalog(t)

	_, err := runCommand(t, "catalog", "add-product", "Orange Juice", "--catalog", path)
	require.NoError(t, err)

	_, err = runCommand(t, "catalog", "add-product", "Orange Juice", "--catalog", path)
	require.ErrorIs(t, err, catalog.ErrProductExists)
}

func TestCatalogProductsCommand(t *testing.T) {
	path := seedCatalog(t)

	_, err := runCommand(t, "catalog", "add-product", "Orange Juice", "--catalog", path)
	require.NoError(t, err)
	_, err = runCommand(t, "catalog", "add-product", "Oat Flour", "--catalog", path)
	require.NoError(t, err)

	out, err := runCommand(t, "catalog", "products", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Orange Juice")
	assert.Contains(t, out, "Oat Flour")
	assert.Contains(t, out, "2 product(s)")

	out, err = runCommand(t, "catalog", "products", "--catalog", path, "--search", "juice")
	require.NoError(t, err)
	assert.Contains(t, out, "Orange Juice")
	assert.NotContains(t, out, "Oat Flour")
	assert.Contains(t, out, "1 product(s)")
}

func TestCatalogAddMaterialCommand(t *testing.T) {
	path := seedCatalog(t)

	materialJSON, err := json.Marshal(testGlassBottle())
	require.NoError(t, err)
	filePath := filepath.Join(t.TempDir(), "material.json")
	require.NoError(t, os.WriteFile(filePath, materialJSON, 0o644))

	out, err := runCommand(t, "catalog", "add-material", "Glass_Jar", "--catalog", path, "--file", filePath)
	require.NoError(t, err)
	assert.Contains(t, out, `Added material "Glass_Jar"`)

	cat, err := catalog.NewStore(path).Load()
	require.NoError(t, err)
	assert.Contains(t, cat.Materials, "Glass_Jar")
}

func TestCatalogAddMaterialCommand_Errors(t *testing.T) {
	path := seedCatalog(t)

	t.Run("duplicate name", func(t *testing.T) {
		materialJSON, err := json.Marshal(testGlassBottle())
		require.NoError(t, err)
		filePath := filepath.Join(t.TempDir(), "material.json")
		require.NoError(t, os.WriteFile(filePath, materialJSON, 0o644))

		_, err = runCommand(t, "catalog", "add-material", "Glass_Bottle", "--catalog", path, "--file", filePath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("malformed record rejected before save", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "material.json")
		require.NoError(t, os.WriteFile(filePath, []byte(`{"material_type": "Film"}`), 0o644))

		_, err := runCommand(t, "catalog", "add-material", "Bad", "--catalog", path, "--file", filePath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing characteristics")
	})

	t.Run("missing file flag", func(t *testing.T) {
		_, err := runCommand(t, "catalog", "add-material", "X", "--catalog", path)
		require.Error(t, err)
	})
}

func TestCatalogAddRuleCommand(t *testing.T) {
	path := seedCatalog(t)

	rule := catalog.RecommendationRule{
		Triggers:             []map[string]string{{"budget_range": "Premium"}},
		RecommendedMaterials: []string{"Glass_Bottle"},
		PriorityScore:        10,
	}
	ruleJSON, err := json.Marshal(rule)
	require.NoError(t, err)
	filePath := filepath.Join(t.TempDir(), "rule.json")
	require.NoError(t, os.WriteFile(filePath, ruleJSON, 0o644))

	out, err := runCommand(t, "catalog", "add-rule", "premium_glass", "--catalog", path, "--file", filePath)
	require.NoError(t, err)
	assert.Contains(t, out, `Added rule "premium_glass"`)

	cat, err := catalog.NewStore(path).Load()
	require.NoError(t, err)
	assert.Contains(t, cat.Rules, "premium_glass")
}

func TestCatalogSnapshotCommand(t *testing.T) {
	path := seedCatalog(t)

	out, err := runCommand(t, "catalog", "snapshot", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Snapshot written to")

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".packadvisor-snapshots", "catalog-*.json.gz"))
	require.NoError(t, err)
	assert.NotEmpty(t, matches)
}

func TestCatalogSnapshotCommand_MissingCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	_, err := runCommand(t, "catalog", "snapshot", "--catalog", path)
	require.Error(t, err)
}

func TestCatalogAddRuleCommand_NoTriggers(t *testing.T) {
	path := seedCatalog(t)

	filePath := filepath.Join(t.TempDir(), "rule.json")
	require.NoError(t, os.WriteFile(filePath, []byte(`{"priority_score": 5}`), 0o644))

	_, err := runCommand(t, "catalog", "add-rule", "empty", "--catalog", path, "--file", filePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no triggers")
}
