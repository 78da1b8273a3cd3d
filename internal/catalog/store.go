package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
)

// DefaultSnapshotRetain is how many compressed catalog snapshots are kept.
const DefaultSnapshotRetain = 5

// Store loads and saves the catalog document as a single pretty-printed JSON
// file. Saves are atomic (temp file + rename) and leave a rotating set of
// gzip-compressed snapshots beside the catalog.
type Store struct {
	Path string

	// SnapshotDir receives rotating catalog snapshots. Empty disables them.
	SnapshotDir string
	// Retain caps how many snapshots are kept; 0 means DefaultSnapshotRetain.
	Retain int
}

// NewStore creates a store for the given catalog path with snapshots enabled
// in a sibling directory.
func NewStore(path string) *Store {
	return &Store{
		Path:        path,
		SnapshotDir: filepath.Join(filepath.Dir(path), ".packadvisor-snapshots"),
		Retain:      DefaultSnapshotRetain,
	}
}

// Load reads the catalog document. A missing file yields an empty catalog with
// all four sections present; a malformed document is an error, never a guess.
func (s *Store) Load() (*Catalog, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("reading catalog %s: %w", s.Path, err)
	}

	if errs := ValidateBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("catalog %s is malformed:\n  %s", s.Path, strings.Join(errs, "\n  "))
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", s.Path, err)
	}
	ensureSections(&cat)
	return &cat, nil
}

// Save writes the catalog atomically and rotates a compressed snapshot.
func (s *Store) Save(cat *Catalog) error {
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("creating temp catalog file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()         //nolint:errcheck
		os.Remove(tmpName)  //nolint:errcheck
		return fmt.Errorf("writing temp catalog file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("closing temp catalog file: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("replacing catalog %s: %w", s.Path, err)
	}

	if s.SnapshotDir != "" {
		if _, err := s.writeSnapshot(data); err != nil {
			return fmt.Errorf("writing catalog snapshot: %w", err)
		}
	}
	return nil
}

// Snapshot writes a gzip snapshot of the catalog file as it is on disk,
// without going through a save. Used by `catalog snapshot`.
func (s *Store) Snapshot() (string, error) {
	if s.SnapshotDir == "" {
		return "", fmt.Errorf("snapshots are disabled for this store")
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("reading catalog %s: %w", s.Path, err)
	}
	name, err := s.writeSnapshot(data)
	if err != nil {
		return "", fmt.Errorf("writing catalog snapshot: %w", err)
	}
	return name, nil
}

// writeSnapshot writes a gzip copy of the serialized catalog, prunes old
// ones, and returns the snapshot path.
func (s *Store) writeSnapshot(data []byte) (string, error) {
	if err := os.MkdirAll(s.SnapshotDir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("catalog-%s.json.gz", time.Now().UTC().Format("20060102T150405.000000000"))
	path := filepath.Join(s.SnapshotDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write(data); err != nil {
		zw.Close() //nolint:errcheck
		f.Close()  //nolint:errcheck
		return "", err
	}
	if err := zw.Close(); err != nil {
		f.Close() //nolint:errcheck
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, s.prune()
}

// prune removes the oldest snapshots beyond the retention cap.
func (s *Store) prune() error {
	retain := s.Retain
	if retain <= 0 {
		retain = DefaultSnapshotRetain
	}
	matches, err := filepath.Glob(filepath.Join(s.SnapshotDir, "catalog-*.json.gz"))
	if err != nil {
		return err
	}
	if len(matches) <= retain {
		return nil
	}
	sort.Strings(matches) // timestamped names sort oldest first
	for _, old := range matches[:len(matches)-retain] {
		if err := os.Remove(old); err != nil {
			return err
		}
	}
	return nil
}

func ensureSections(cat *Catalog) {
	if cat.Products == nil {
		cat.Products = map[string]Product{}
	}
	if cat.Materials == nil {
		cat.Materials = map[string]Material{}
	}
	if cat.Rules == nil {
		cat.Rules = map[string]RecommendationRule{}
	}
}
