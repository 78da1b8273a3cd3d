package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psinghania/packadvisor/internal/recommend"
)

func writeBatchCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBatchCommand_Table(t *testing.T) {
	catalogPath := seedCatalog(t)
	csvPath := writeBatchCSV(t,
		"name,purpose,budget,shelf_life\nCold Brew Coffee,retail,Premium,Weeks\nOat Flour,bulk,Economy,Months\n")

	out, err := runCommand(t, "batch", csvPath, "--catalog", catalogPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Cold Brew Coffee")
	assert.Contains(t, out, "Oat Flour")
	assert.Contains(t, out, "Scored 2 product(s)")
}

func TestBatchCommand_JSON(t *testing.T) {
	catalogPath := seedCatalog(t)
	csvPath := writeBatchCSV(t, "name\nCold Brew Coffee\nOat Flour\n")

	out, err := runCommand(t, "batch", csvPath, "--catalog", catalogPath, "--format", "json", "--top", "1")
	require.NoError(t, err)

	var results []recommend.BatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "Cold Brew Coffee", results[0].Entry.Name)
	require.Len(t, results[0].Recommendations, 1)
}

func TestBatchCommand_Range(t *testing.T) {
	catalogPath := seedCatalog(t)
	csvPath := writeBatchCSV(t, "name\na\nb\nc\nd\n")

	out, err := runCommand(t, "batch", csvPath, "--catalog", catalogPath, "--start", "2", "--end", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Scored 2 product(s)")
}

func TestBatchCommand_StartWithoutEnd(t *testing.T) {
	catalogPath := seedCatalog(t)
	csvPath := writeBatchCSV(t, "name\na\nb\nc\n")

	out, err := runCommand(t, "batch", csvPath, "--catalog", catalogPath, "--start", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Scored 2 product(s)")
}

func TestBatchCommand_Errors(t *testing.T) {
	catalogPath := seedCatalog(t)

	t.Run("missing input file", func(t *testing.T) {
		_, err := runCommand(t, "batch", "/nonexistent/batch.csv", "--catalog", catalogPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "csv: open")
	})

	t.Run("invalid format", func(t *testing.T) {
		csvPath := writeBatchCSV(t, "name\na\n")
		_, err := runCommand(t, "batch", csvPath, "--catalog", catalogPath, "--format", "yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
	})

	t.Run("invalid budget value in row", func(t *testing.T) {
		csvPath := writeBatchCSV(t, "name,budget\nGranola,Cheap\n")
		_, err := runCommand(t, "batch", csvPath, "--catalog", catalogPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid budget")
	})
}
