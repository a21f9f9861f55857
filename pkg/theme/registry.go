package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Registry holds the loaded variants and their resolvers.
type Registry struct {
	mu        sync.RWMutex
	themes    map[Variant]*Theme
	resolvers map[Variant]*Resolver
	sources   map[Variant]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		themes:    make(map[Variant]*Theme),
		resolvers: make(map[Variant]*Resolver),
		sources:   make(map[Variant]string),
	}
}

// BuiltinRegistry returns a registry with the shipped Dark and Light variants.
func BuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, v := range Variants() {
		if err := r.Register(MustBuiltin(v), "builtin"); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a theme, replacing any theme of the same variant.
// source describes where it came from (a path or "builtin").
func (r *Registry) Register(t *Theme, source string) error {
	v, err := ParseVariant(string(t.Type))
	if err != nil {
		return fmt.Errorf("%s: %w", t.Name, err)
	}
	res, err := NewResolver(t)
	if err != nil {
		return fmt.Errorf("%s: %w", t.Name, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes[v] = t
	r.resolvers[v] = res
	r.sources[v] = source
	return nil
}

// Get returns the theme for a variant.
func (r *Registry) Get(v Variant) (*Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.themes[v]
	if !ok {
		return nil, fmt.Errorf("%w: variant %s", ErrNotFound, v)
	}
	return t, nil
}

// Resolver returns the resolver for a variant.
func (r *Registry) Resolver(v Variant) (*Resolver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.resolvers[v]
	if !ok {
		return nil, fmt.Errorf("%w: variant %s", ErrNotFound, v)
	}
	return res, nil
}

// Source returns where a variant was loaded from.
func (r *Registry) Source(v Variant) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sources[v]
}

// Lookup finds a theme by variant name ("dark"), theme name ("Vivid Dark") or slug ("vivid-dark").
func (r *Registry) Lookup(name string) (*Theme, error) {
	if v, err := ParseVariant(name); err == nil {
		return r.Get(v)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.themes {
		if strings.EqualFold(t.Name, name) || t.Slug() == strings.ToLower(name) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Variants returns the registered variants in display order.
func (r *Registry) Variants() []Variant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Variant
	for _, v := range Variants() {
		if _, ok := r.themes[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// LoadDir registers every theme document (*.json, *.yaml, *.yml, *.toml) in dir.
// Files are read in name order; a later file for the same variant replaces an earlier one.
func (r *Registry) LoadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme directory: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := FormatForPath(e.Name()); err != nil {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	for _, p := range paths {
		t, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		if err := r.Register(t, p); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	return paths, nil
}
