package webapi

import (
	"errors"
	"sync"

	"github.com/psinghania/packadvisor/internal/catalog"
)

// ErrProductNotFound is returned when a product name does not exist in the
// catalog.
var ErrProductNotFound = errors.New("product not found")

// CatalogStore provides access to the catalog document behind the API.
type CatalogStore interface {
	// Catalog returns the current catalog. Callers must treat it as
	// read-only; use Mutate for changes.
	Catalog() (*catalog.Catalog, error)
	// Mutate applies fn to the catalog under an exclusive lock and persists
	// the result if fn succeeds.
	Mutate(fn func(*catalog.Catalog) error) error
}

// FileCatalogStore serves a catalog file, caching the parsed document and
// serializing mutations through a single writer lock.
type FileCatalogStore struct {
	store *catalog.Store

	mu     sync.RWMutex
	cat    *catalog.Catalog
	loaded bool
}

// NewFileCatalogStore creates a store backed by the given catalog store.
func NewFileCatalogStore(store *catalog.Store) *FileCatalogStore {
	return &FileCatalogStore{store: store}
}

// Catalog returns the cached catalog, loading it on first use.
func (fs *FileCatalogStore) Catalog() (*catalog.Catalog, error) {
	fs.mu.RLock()
	if fs.loaded {
		cat := fs.cat
		fs.mu.RUnlock()
		return cat, nil
	}
	fs.mu.RUnlock()

	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.loaded {
		return fs.cat, nil
	}
	cat, err := fs.store.Load()
	if err != nil {
		return nil, err
	}
	fs.cat = cat
	fs.loaded = true
	return cat, nil
}

// Reload discards the cached catalog; the next read loads it fresh from disk.
func (fs *FileCatalogStore) Reload() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.cat = nil
	fs.loaded = false
}

// Mutate applies fn under an exclusive lock and saves on success. A failed
// mutation is reloaded from disk so a half-applied fn cannot leave the cached
// document drifted from the file.
func (fs *FileCatalogStore) Mutate(fn func(*catalog.Catalog) error) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.loaded {
		cat, err := fs.store.Load()
		if err != nil {
			return err
		}
		fs.cat = cat
		fs.loaded = true
	}

	if err := fn(fs.cat); err != nil {
		fs.cat = nil
		fs.loaded = false
		return err
	}
	if err := fs.store.Save(fs.cat); err != nil {
		fs.cat = nil
		fs.loaded = false
		return err
	}
	return nil
}

// Ensure FileCatalogStore satisfies CatalogStore.
var _ CatalogStore = (*FileCatalogStore)(nil)
