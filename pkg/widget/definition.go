package widget

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-pagebuilder/pkg/schema"
)

// RenderFunc produces a renderable unit from instance data and context.
type RenderFunc func(data schema.InstanceData, ctx Context) (*Unit, error)

// SkeletonFunc produces the data-independent loading placeholder.
type SkeletonFunc func() *Unit

// TransformFunc derives the serialized form of instance data. It must return
// a copy and leave its input untouched.
type TransformFunc func(data schema.InstanceData) schema.InstanceData

// Implementation bundles the rendering pipelines of a widget. Definitions
// resolve it through a provider closure so expensive rendering code can be
// wired lazily; a provider failure surfaces as a render error and degrades
// to the skeleton at the factory boundary.
type Implementation struct {
	// Interactive is the full-featured pipeline. Required.
	Interactive RenderFunc
	// ProductionSafe is the deterministic first-paint pipeline. When nil,
	// the definition falls back to Interactive with ctx.Preview forced,
	// which the pipeline convention requires to suppress animation and
	// timer-dependent sub-features.
	ProductionSafe RenderFunc
}

// Definition builds a Descriptor by composition: identity, schema, defaults,
// pluggable validators, and a provider closure for the rendering
// implementation. It replaces inheritance chains with plain data plus
// helper functions, so family behaviour (card, grid, hero) is composed in
// rather than inherited.
type Definition struct {
	// Meta is the catalog identity. Meta.ID must be unique.
	Meta Metadata
	// Schema is the configuration contract.
	Schema schema.Config
	// Defaults must satisfy Validate.
	Defaults schema.InstanceData
	// Load resolves the rendering implementation on first use. Required.
	Load func() (*Implementation, error)
	// Skeleton produces the loading placeholder. When nil a minimal
	// placeholder unit is synthesised.
	Skeleton SkeletonFunc
	// SkeletonProduction overrides the skeleton used under production
	// constraints; defaults to Skeleton.
	SkeletonProduction SkeletonFunc
	// Validators are appended after the structural schema validation.
	Validators []Validator
	// Transform derives the serialized payload; identity when nil.
	Transform TransformFunc

	once    sync.Once
	impl    *Implementation
	loadErr error
}

var _ Descriptor = (*Definition)(nil)
var _ ProductionReadiness = (*Definition)(nil)

// Metadata implements Descriptor.
func (d *Definition) Metadata() Metadata {
	meta := d.Meta
	meta.Tags = append([]string(nil), d.Meta.Tags...)
	return meta
}

// ConfigSchema implements Descriptor, returning an independent copy.
func (d *Definition) ConfigSchema() schema.Config {
	return d.Schema.Clone()
}

// DefaultData implements Descriptor, returning an independent copy.
func (d *Definition) DefaultData() schema.InstanceData {
	return d.Defaults.Clone()
}

// Validate runs the structural pass then every registered validator.
func (d *Definition) Validate(data schema.InstanceData) ValidationResult {
	result := Validate(d.Schema, data)
	for _, validator := range d.Validators {
		if validator == nil {
			continue
		}
		result = result.Merge(validator(data))
	}
	return result
}

// RenderInteractive implements Descriptor.
func (d *Definition) RenderInteractive(data schema.InstanceData, ctx Context) (*Unit, error) {
	impl, err := d.implementation()
	if err != nil {
		return nil, err
	}
	unit, err := impl.Interactive(data, ctx)
	if err != nil {
		return nil, err
	}
	return stamped(unit, d.Meta.ID, ModeInteractive), nil
}

// RenderProductionSafe implements Descriptor. Without a dedicated pipeline it
// reuses the interactive one with the preview flag forced.
func (d *Definition) RenderProductionSafe(data schema.InstanceData, ctx Context) (*Unit, error) {
	impl, err := d.implementation()
	if err != nil {
		return nil, err
	}

	pipeline := impl.ProductionSafe
	if pipeline == nil {
		pipeline = impl.Interactive
		ctx = ctx.WithPreview()
	}
	ctx.ProductionSafe = true

	unit, err := pipeline(data, ctx)
	if err != nil {
		return nil, err
	}
	return stamped(unit, d.Meta.ID, ModeProduction), nil
}

// RenderSkeleton implements Descriptor.
func (d *Definition) RenderSkeleton() *Unit {
	if d.Skeleton != nil {
		if unit := d.Skeleton(); unit != nil {
			return stamped(unit, d.Meta.ID, ModeSkeleton)
		}
	}
	return placeholderSkeleton(d.Meta.ID)
}

// RenderSkeletonProductionSafe implements Descriptor.
func (d *Definition) RenderSkeletonProductionSafe() *Unit {
	if d.SkeletonProduction != nil {
		if unit := d.SkeletonProduction(); unit != nil {
			return stamped(unit, d.Meta.ID, ModeSkeleton)
		}
	}
	return d.RenderSkeleton()
}

// HasProductionPipeline implements ProductionReadiness. It resolves the
// implementation, so calling it belongs in a startup review phase rather
// than a hot path.
func (d *Definition) HasProductionPipeline() bool {
	impl, err := d.implementation()
	if err != nil {
		return false
	}
	return impl.ProductionSafe != nil
}

// TransformData applies the serialization transform, defaulting to a plain
// copy of the input.
func (d *Definition) TransformData(data schema.InstanceData) schema.InstanceData {
	if d.Transform != nil {
		return d.Transform(data)
	}
	return data.Clone()
}

func (d *Definition) implementation() (*Implementation, error) {
	d.once.Do(func() {
		if d.Load == nil {
			d.loadErr = fmt.Errorf("widget: descriptor %q has no implementation provider", d.Meta.ID)
			return
		}
		impl, err := d.Load()
		switch {
		case err != nil:
			d.loadErr = fmt.Errorf("widget: load implementation for %q: %w", d.Meta.ID, err)
		case impl == nil || impl.Interactive == nil:
			d.loadErr = fmt.Errorf("widget: descriptor %q loaded an empty implementation", d.Meta.ID)
		default:
			d.impl = impl
		}
	})
	return d.impl, d.loadErr
}

// StaticImplementation wraps already-constructed pipelines in a provider
// closure, for widgets with nothing to defer.
func StaticImplementation(impl Implementation) func() (*Implementation, error) {
	return func() (*Implementation, error) {
		return &impl, nil
	}
}

func stamped(unit *Unit, widgetType string, mode Mode) *Unit {
	out := *unit
	out.WidgetType = widgetType
	out.Mode = mode
	if out.ContentType == "" {
		out.ContentType = "text/html"
	}
	return &out
}

func placeholderSkeleton(widgetType string) *Unit {
	return &Unit{
		WidgetType:  widgetType,
		Mode:        ModeSkeleton,
		ContentType: "text/html",
		Body:        []byte(`<div class="pb-skeleton" aria-hidden="true"></div>`),
	}
}
