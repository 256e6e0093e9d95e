// Package registry implements the shared widget catalog. One Registry is
// constructed at process start, populated before render traffic begins, and
// passed by reference to the factory and every consumer; tests build a fresh
// instance per case instead of sharing globals. Reads are concurrent-safe;
// interleaving registration with rendering is the host's responsibility to
// serialize.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

// Option customises the registry before first use.
type Option func(*Registry)

// WithLogger injects the logger used for overwrite and integrity warnings.
func WithLogger(logger widget.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Registry is the widget catalog: descriptors keyed by id plus a category
// index for the picker UI.
type Registry struct {
	mu         sync.RWMutex
	logger     widget.Logger
	entries    map[string]widget.Descriptor
	byCategory map[string][]string
}

// New constructs an empty registry.
func New(options ...Option) *Registry {
	r := &Registry{
		logger:     widget.DefaultLogger(),
		entries:    make(map[string]widget.Descriptor),
		byCategory: make(map[string][]string),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Register inserts a descriptor by its metadata id. Re-registering an id
// logs a warning and overwrites: the last registration wins, matching how
// hosts hot-swap widget implementations during development.
func (r *Registry) Register(d widget.Descriptor) error {
	if d == nil {
		return fmt.Errorf("registry: descriptor is required")
	}
	meta := d.Metadata()
	id := strings.TrimSpace(meta.ID)
	if id == "" {
		return fmt.Errorf("registry: descriptor id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[id]; ok {
		r.logger.Warn("registry: overwriting descriptor",
			"id", id,
			"previousVersion", existing.Metadata().Version,
			"version", meta.Version)
		r.removeFromCategoryLocked(existing.Metadata().Category, id)
	}

	r.entries[id] = d
	r.byCategory[meta.Category] = append(r.byCategory[meta.Category], id)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(d widget.Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Get retrieves a descriptor by id, reporting presence.
func (r *Registry) Get(id string) (widget.Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.entries[id]
	return d, ok
}

// GetRequired retrieves a descriptor or returns a *widget.NotFoundError.
func (r *Registry) GetRequired(id string) (widget.Descriptor, error) {
	if d, ok := r.Get(id); ok {
		return d, nil
	}
	return nil, &widget.NotFoundError{WidgetType: id}
}

// Has reports whether a widget type is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// All returns every descriptor ordered by id.
func (r *Registry) All() []widget.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]widget.Descriptor, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.entries[id])
	}
	return out
}

// ByCategory returns the descriptors filed under a category, ordered by id.
func (r *Registry) ByCategory(category string) []widget.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := append([]string(nil), r.byCategory[category]...)
	sort.Strings(ids)

	out := make([]widget.Descriptor, 0, len(ids))
	for _, id := range ids {
		if d, ok := r.entries[id]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Categories lists the categories that currently hold at least one
// descriptor, sorted.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.byCategory))
	for category, ids := range r.byCategory {
		if len(ids) > 0 {
			out = append(out, category)
		}
	}
	sort.Strings(out)
	return out
}

// Search returns descriptors whose name, description, or tags contain the
// query, case-insensitively. An empty query matches nothing.
func (r *Registry) Search(query string) []widget.Descriptor {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}

	out := make([]widget.Descriptor, 0)
	for _, d := range r.All() {
		meta := d.Metadata()
		if strings.Contains(strings.ToLower(meta.Name), needle) ||
			strings.Contains(strings.ToLower(meta.Description), needle) {
			out = append(out, d)
			continue
		}
		for _, tag := range meta.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// Unregister removes a descriptor, reporting whether it was present.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.entries[id]
	if !ok {
		return false
	}
	delete(r.entries, id)
	r.removeFromCategoryLocked(existing.Metadata().Category, id)
	return true
}

// Clear empties the catalog.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]widget.Descriptor)
	r.byCategory = make(map[string][]string)
}

// Stats summarises the catalog for dashboards and the CLI.
type Stats struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"byCategory"`
}

// Stats returns catalog counts per category.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := Stats{
		Total:      len(r.entries),
		ByCategory: make(map[string]int, len(r.byCategory)),
	}
	for category, ids := range r.byCategory {
		if len(ids) > 0 {
			stats.ByCategory[category] = len(ids)
		}
	}
	return stats
}

func (r *Registry) removeFromCategoryLocked(category, id string) {
	ids := r.byCategory[category]
	for i, current := range ids {
		if current == id {
			r.byCategory[category] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(r.byCategory[category]) == 0 {
		delete(r.byCategory, category)
	}
}
