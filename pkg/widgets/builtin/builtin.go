// Package builtin ships the stock widget descriptors of the framework:
// hero-simple, card-grid, and cta-banner. Each is a widget.Definition
// composed from its family helpers, rendering HTML through the shared
// template seam. The rendering implementation is resolved lazily through
// the definition's provider closure so hosts that only introspect schemas
// never pay for template parsing.
package builtin

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-pagebuilder/pkg/i18n"
	"github.com/goliatone/go-pagebuilder/pkg/registry"
	"github.com/goliatone/go-pagebuilder/pkg/render/template"
	"github.com/goliatone/go-pagebuilder/pkg/render/template/gotemplate"
	"github.com/goliatone/go-pagebuilder/pkg/schema"
	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

// Option configures the built-in widget set.
type Option func(*Set)

// WithTemplateRenderer injects a custom template engine; the embedded
// pongo2 bundle is used otherwise.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(s *Set) {
		if renderer != nil {
			s.renderer = renderer
			s.rendererSet = true
		}
	}
}

// Set builds the built-in descriptors over one shared template engine.
type Set struct {
	renderer    template.TemplateRenderer
	rendererSet bool

	once    sync.Once
	loadErr error
}

// NewSet constructs the built-in widget set.
func NewSet(options ...Option) *Set {
	s := &Set{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Definitions returns fresh descriptor instances for every built-in widget.
func (s *Set) Definitions() []*widget.Definition {
	return []*widget.Definition{
		s.HeroSimple(),
		s.CardGrid(),
		s.CTABanner(),
	}
}

// Register registers every built-in widget with the catalog.
func Register(reg *registry.Registry, options ...Option) error {
	set := NewSet(options...)
	for _, def := range set.Definitions() {
		if err := reg.Register(def); err != nil {
			return fmt.Errorf("builtin: register %q: %w", def.Meta.ID, err)
		}
	}
	return nil
}

// engine resolves the shared template renderer on first use.
func (s *Set) engine() (template.TemplateRenderer, error) {
	s.once.Do(func() {
		if s.rendererSet {
			return
		}
		engine, err := gotemplate.New(gotemplate.WithFS(TemplatesFS()))
		if err != nil {
			s.loadErr = fmt.Errorf("builtin: configure template engine: %w", err)
			return
		}
		s.renderer = engine
	})
	return s.renderer, s.loadErr
}

// renderUnit executes a named template into an HTML unit.
func (s *Set) renderUnit(name string, view schema.InstanceData) (*widget.Unit, error) {
	engine, err := s.engine()
	if err != nil {
		return nil, err
	}
	body, err := engine.RenderTemplate(name, map[string]any(view))
	if err != nil {
		return nil, err
	}
	return &widget.Unit{
		ContentType: "text/html",
		Body:        []byte(body),
	}, nil
}

// skeleton renders the shared skeleton template with a per-widget variant.
func (s *Set) skeleton(variant string) widget.SkeletonFunc {
	return func() *widget.Unit {
		unit, err := s.renderUnit("skeleton", schema.InstanceData{"variant": variant})
		if err != nil {
			return nil
		}
		return unit
	}
}

// projectHeading resolves the shared localized heading fields into the view.
func projectHeading(view, data schema.InstanceData, ctx widget.Context) schema.InstanceData {
	for _, key := range []string{"sectionTitle", "sectionSubtitle"} {
		if resolved := i18n.Project(data, key, ctx.Locale); resolved != "" {
			view[key] = resolved
		}
	}
	return view
}

// normalizeLocalized collapses legacy suffixed field pairs (titleEn/titleTh)
// into the canonical map form for the given keys, dropping the suffixed
// duplicates from the serialized payload. The input is never mutated.
func normalizeLocalized(data schema.InstanceData, keys ...string) schema.InstanceData {
	out := data.Clone()
	if out == nil {
		return nil
	}
	for _, key := range keys {
		if _, ok := i18n.TextFromValue(out[key]); ok {
			continue
		}
		text := schema.InstanceData{}
		for _, locale := range []string{"en", "th"} {
			suffix := map[string]string{"en": "En", "th": "Th"}[locale]
			if value, ok := out.String(key + suffix); ok && value != "" {
				text[locale] = value
				delete(out, key+suffix)
			}
		}
		if len(text) > 0 {
			out[key] = map[string]any(text)
		}
	}
	return out
}
