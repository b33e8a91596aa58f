// Package registry manages the on-disk theme registry: a JSON index of
// registered theme files, the YAML theme schema, and theme pack imports.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	wefterrors "github.com/weftui/weft/pkg/errors"
	"github.com/weftui/weft/theme"
)

const registryVersion = "1.0"

// Registry manages theme registration and lookup. All mutating operations
// are safe for concurrent use; Save persists the index atomically.
type Registry struct {
	path    string
	mu      sync.RWMutex
	version string
	themes  []Entry
	cache   *themeCache
}

// New creates a Registry backed by the index file at path and loads it from
// disk. A missing file yields an empty registry.
func New(path string) (*Registry, error) {
	r := &Registry{
		path:    path,
		version: registryVersion,
		cache:   newThemeCache(),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, wefterrors.NewRegistryError("", fmt.Errorf("create registry directory: %w", err))
	}

	if err := r.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		r.themes = []Entry{}
	}

	return r, nil
}

// Load reads the index from disk.
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return wefterrors.NewParseError(r.path, err)
	}

	r.version = file.Version
	r.themes = file.Themes
	r.cache.invalidateAll()

	return nil
}

// Save writes the index to disk atomically.
func (r *Registry) Save() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	file := File{Version: r.version, Themes: r.themes}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return wefterrors.NewRegistryError("", fmt.Errorf("marshal registry: %w", err))
	}

	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return wefterrors.NewRegistryError("", fmt.Errorf("write temporary file: %w", err))
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		_ = os.Remove(tmpPath)
		return wefterrors.NewRegistryError("", fmt.Errorf("rename temporary file: %w", err))
	}

	return nil
}

// List returns all registered themes.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Entry, len(r.themes))
	copy(result, r.themes)
	return result
}

// Get retrieves a registry entry by theme name.
func (r *Registry) Get(name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.themes {
		if entry.Name == name {
			return entry, nil
		}
	}

	return Entry{}, wefterrors.NewRegistryError(name, fmt.Errorf("theme not found"))
}

// Add registers a theme file. The file is parsed and validated first, so a
// registered theme is always loadable.
func (r *Registry) Add(path, source string) (Entry, error) {
	parsed, err := ParseThemeFile(path)
	if err != nil {
		return Entry{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.themes {
		if existing.Name == parsed.Name {
			return Entry{}, wefterrors.NewRegistryError(parsed.Name, fmt.Errorf("theme already registered"))
		}
	}

	entry := Entry{
		Name:         parsed.Name,
		Path:         path,
		Source:       source,
		RegisteredAt: time.Now().UTC(),
	}
	r.themes = append(r.themes, entry)
	r.cache.set(parsed.Name, parsed)

	return entry, nil
}

// Remove unregisters a theme by name. The theme file itself is left alone.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, entry := range r.themes {
		if entry.Name == name {
			r.themes = append(r.themes[:i], r.themes[i+1:]...)
			r.cache.invalidate(name)
			return nil
		}
	}

	return wefterrors.NewRegistryError(name, fmt.Errorf("theme not found"))
}

// LoadTheme resolves a registered name into a usable theme. The built-in
// "default" and "dark" themes are always available without registration.
func (r *Registry) LoadTheme(name string) (theme.Theme, error) {
	switch name {
	case "", "default":
		return theme.Default(), nil
	case "dark":
		return theme.Dark(), nil
	}

	if cached, ok := r.cache.get(name); ok {
		return cached, nil
	}

	entry, err := r.Get(name)
	if err != nil {
		return theme.Theme{}, err
	}

	parsed, err := ParseThemeFile(entry.Path)
	if err != nil {
		return theme.Theme{}, err
	}

	r.cache.set(name, parsed)
	return parsed, nil
}
