// Package projectconfig provides the ProjectConfig struct and loader for
// .packadvisor.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values for project configuration. These are the single source of
// truth — New() references them and no other code should duplicate them.
const (
	DefaultCatalogPath = "packaging_catalog.json"
	DefaultSnapshotDir = ".packadvisor-snapshots"
	DefaultSnapshots   = 5

	DefaultTopN = 5

	DefaultServerPort = 8080

	DefaultBatchWorkers = 4
)

// CatalogConfig holds catalog file settings.
type CatalogConfig struct {
	Path        string `yaml:"path,omitempty"`
	SnapshotDir string `yaml:"snapshot_dir,omitempty"`
	Snapshots   int    `yaml:"snapshots,omitempty"`
}

// RecommendConfig holds recommendation output settings.
type RecommendConfig struct {
	TopN int `yaml:"top_n,omitempty"`
}

// ServerConfig holds dashboard server settings.
type ServerConfig struct {
	Port      int   `yaml:"port,omitempty"`
	NoBrowser *bool `yaml:"no_browser,omitempty"`
}

// BatchConfig holds batch scoring settings.
type BatchConfig struct {
	Workers int `yaml:"workers,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .packadvisor.yaml.
type ProjectConfig struct {
	Catalog   CatalogConfig   `yaml:"catalog,omitempty"`
	Recommend RecommendConfig `yaml:"recommend,omitempty"`
	Server    ServerConfig    `yaml:"server,omitempty"`
	Batch     BatchConfig     `yaml:"batch,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Catalog: CatalogConfig{
			Path:        DefaultCatalogPath,
			SnapshotDir: DefaultSnapshotDir,
			Snapshots:   DefaultSnapshots,
		},
		Recommend: RecommendConfig{
			TopN: DefaultTopN,
		},
		Server: ServerConfig{
			Port:      DefaultServerPort,
			NoBrowser: boolPtr(false),
		},
		Batch: BatchConfig{
			Workers: DefaultBatchWorkers,
		},
	}
}

// Load finds .packadvisor.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading .packadvisor.yaml: %w", err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing .packadvisor.yaml: %w", err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .packadvisor.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found. Propagates real
// I/O errors (e.g. permission denied) instead of silently swallowing them.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ".packadvisor.yaml")
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Catalog.Path != "" {
		dst.Catalog.Path = src.Catalog.Path
	}
	if src.Catalog.SnapshotDir != "" {
		dst.Catalog.SnapshotDir = src.Catalog.SnapshotDir
	}
	if src.Catalog.Snapshots != 0 {
		dst.Catalog.Snapshots = src.Catalog.Snapshots
	}

	if src.Recommend.TopN != 0 {
		dst.Recommend.TopN = src.Recommend.TopN
	}

	if src.Server.Port != 0 {
		dst.Server.Port = src.Server.Port
	}
	if src.Server.NoBrowser != nil {
		dst.Server.NoBrowser = src.Server.NoBrowser
	}

	if src.Batch.Workers != 0 {
		dst.Batch.Workers = src.Batch.Workers
	}
}

func boolPtr(b bool) *bool {
	return &b
}
