// Package manifest loads catalog manifests: JSON/YAML documents that curate
// a widget registry at startup without touching widget code. A manifest can
// disable widget types, override catalog names and descriptions, and pin the
// default theme the host passes into render contexts.
package manifest

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-pagebuilder/pkg/registry"
	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

// WidgetConfig is the per-widget curation block.
type WidgetConfig struct {
	// Enabled defaults to true; a disabled widget is unregistered when the
	// manifest applies.
	Enabled *bool `json:"enabled" yaml:"enabled"`
	// Name overrides the catalog display name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Description overrides the catalog description.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Tags are appended to the descriptor's own tags.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Manifest is one parsed catalog document.
type Manifest struct {
	// DefaultTheme names the theme hosts should put on render contexts.
	DefaultTheme string `json:"defaultTheme,omitempty" yaml:"defaultTheme,omitempty"`
	// DefaultLocale names the locale used when a context omits one.
	DefaultLocale string `json:"defaultLocale,omitempty" yaml:"defaultLocale,omitempty"`
	// Widgets keys curation blocks by widget type.
	Widgets map[string]WidgetConfig `json:"widgets,omitempty" yaml:"widgets,omitempty"`

	source string
}

// Source returns the file the manifest was parsed from.
func (m Manifest) Source() string {
	return m.source
}

// ContextDefaults fills the theme and locale of a render context from the
// manifest when the caller left them empty. Explicit values always win.
func (m Manifest) ContextDefaults(ctx widget.Context) widget.Context {
	if ctx.Theme == "" {
		ctx.Theme = m.DefaultTheme
	}
	if ctx.Locale == "" {
		ctx.Locale = m.DefaultLocale
	}
	return ctx
}

// Enabled reports whether the manifest keeps a widget type active.
func (m Manifest) Enabled(widgetType string) bool {
	cfg, ok := m.Widgets[widgetType]
	if !ok || cfg.Enabled == nil {
		return true
	}
	return *cfg.Enabled
}

// LoadFS walks the filesystem and merges every JSON/YAML manifest found.
// Later files win on conflicting keys; a nil fsys yields an empty manifest.
func LoadFS(fsys fs.FS) (Manifest, error) {
	merged := Manifest{Widgets: make(map[string]WidgetConfig)}
	if fsys == nil {
		return merged, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isManifestFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("manifest: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		if doc.DefaultTheme != "" {
			merged.DefaultTheme = doc.DefaultTheme
		}
		if doc.DefaultLocale != "" {
			merged.DefaultLocale = doc.DefaultLocale
		}
		for widgetType, cfg := range doc.Widgets {
			id := strings.TrimSpace(widgetType)
			if id == "" {
				return fmt.Errorf("manifest: file %s defines an empty widget type", path)
			}
			merged.Widgets[id] = cfg
		}
		merged.source = path
		return nil
	})
	if err != nil {
		return Manifest{}, err
	}
	return merged, nil
}

// Apply curates the registry in place: disabled widgets are unregistered and
// overridden metadata is wrapped around the surviving descriptors.
func (m Manifest) Apply(reg *registry.Registry) error {
	if reg == nil {
		return fmt.Errorf("manifest: registry is required")
	}

	for widgetType, cfg := range m.Widgets {
		d, ok := reg.Get(widgetType)
		if !ok {
			return fmt.Errorf("manifest: widget type %q is not registered", widgetType)
		}
		if !m.Enabled(widgetType) {
			reg.Unregister(widgetType)
			continue
		}
		if cfg.Name == "" && cfg.Description == "" && len(cfg.Tags) == 0 {
			continue
		}
		reg.Unregister(widgetType)
		if err := reg.Register(&overrideDescriptor{Descriptor: d, cfg: cfg}); err != nil {
			return fmt.Errorf("manifest: apply override for %q: %w", widgetType, err)
		}
	}
	return nil
}

// overrideDescriptor decorates a descriptor with manifest metadata, leaving
// schema, defaults, validation, and rendering untouched.
type overrideDescriptor struct {
	widget.Descriptor
	cfg WidgetConfig
}

func (d *overrideDescriptor) Metadata() widget.Metadata {
	meta := d.Descriptor.Metadata()
	if d.cfg.Name != "" {
		meta.Name = d.cfg.Name
	}
	if d.cfg.Description != "" {
		meta.Description = d.cfg.Description
	}
	meta.Tags = append(meta.Tags, d.cfg.Tags...)
	return meta
}

// HasProductionPipeline preserves the wrapped descriptor's readiness report.
func (d *overrideDescriptor) HasProductionPipeline() bool {
	if readiness, ok := d.Descriptor.(widget.ProductionReadiness); ok {
		return readiness.HasProductionPipeline()
	}
	return false
}

func parseDocument(data []byte, source string) (Manifest, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Manifest{}, fmt.Errorf("manifest: file %s is empty", source)
	}

	var doc Manifest
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return Manifest{}, fmt.Errorf("manifest: parse %s: invalid JSON or YAML", source)
}

func isManifestFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
