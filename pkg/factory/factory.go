// Package factory orchestrates widget rendering: it resolves descriptors
// from the registry, revalidates instance data, invokes the requested
// pipeline behind a fault boundary, and degrades to the descriptor's
// skeleton on every failure path. No public entrypoint ever panics or
// returns an error across the render boundary; unknown widget types surface
// as nil units the host renders as an explicit placeholder.
package factory

import (
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-pagebuilder/pkg/registry"
	"github.com/goliatone/go-pagebuilder/pkg/schema"
	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

// Option customises the factory.
type Option func(*Factory)

// WithLogger injects the logger used for degradation and validation notices.
func WithLogger(logger widget.Logger) Option {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithThemeSelector wires a go-theme selector so Context.Theme names resolve
// into a *theme.RendererConfig before pipelines run.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(f *Factory) {
		f.themes = selector
	}
}

// WithThemeVariant sets the variant requested from the theme selector.
func WithThemeVariant(variant string) Option {
	return func(f *Factory) {
		f.themeVariant = variant
	}
}

// Factory is a stateless façade over a registry: every render is a pure
// function of (registry, widgetType, data, context). Safe for concurrent
// use once registration has completed.
type Factory struct {
	registry     *registry.Registry
	logger       widget.Logger
	themes       theme.ThemeSelector
	themeVariant string
}

// New constructs a factory bound to the given registry.
func New(reg *registry.Registry, options ...Option) *Factory {
	f := &Factory{
		registry: reg,
		logger:   widget.DefaultLogger(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Create resolves a descriptor by widget type. It never panics and never
// returns an error: unknown or misbehaving lookups log and yield nil.
func (f *Factory) Create(widgetType string) widget.Descriptor {
	if f.registry == nil {
		f.logger.Error("factory: no registry configured", "widgetType", widgetType)
		return nil
	}
	d, ok := f.registry.Get(widgetType)
	if !ok {
		f.logger.Debug("factory: unknown widget type", "widgetType", widgetType)
		return nil
	}
	return d
}

// CreateRequired resolves a descriptor or returns a *widget.NotFoundError.
func (f *Factory) CreateRequired(widgetType string) (widget.Descriptor, error) {
	if d := f.Create(widgetType); d != nil {
		return d, nil
	}
	return nil, &widget.NotFoundError{WidgetType: widgetType}
}

// Render resolves, validates, and renders one widget instance. The result is
// the real unit, the descriptor's skeleton when anything fails, or nil when
// the widget type is unknown. It never propagates an error or panic.
func (f *Factory) Render(widgetType string, data schema.InstanceData, ctx widget.Context) *widget.Unit {
	d := f.Create(widgetType)
	if d == nil {
		return nil
	}

	ctx = f.resolveTheme(ctx)

	result := d.Validate(data)
	if !result.Valid {
		if ctx.ProductionSafe {
			f.logger.Warn("factory: invalid data under production constraints, degrading to skeleton",
				"widgetType", widgetType,
				"errors", result.Errors)
			return f.safeSkeleton(d, true)
		}
		f.logger.Warn("factory: rendering with invalid data",
			"widgetType", widgetType,
			"errors", result.Errors)
	}

	if ctx.ProductionSafe {
		return f.invoke(d, widgetType, data, ctx, true)
	}

	// embedded previews must stay deterministic even on the interactive
	// pipeline
	ctx = ctx.WithPreview()
	return f.invoke(d, widgetType, data, ctx, false)
}

// RenderSkeleton returns the loading placeholder for a widget type, or nil
// when the type is unknown.
func (f *Factory) RenderSkeleton(widgetType string) *widget.Unit {
	d := f.Create(widgetType)
	if d == nil {
		return nil
	}
	return f.safeSkeleton(d, false)
}

// invoke runs the selected pipeline inside the fault boundary. A panic, an
// error, or a nil unit all degrade to the matching skeleton.
func (f *Factory) invoke(d widget.Descriptor, widgetType string, data schema.InstanceData, ctx widget.Context, production bool) (unit *widget.Unit) {
	defer func() {
		if recovered := recover(); recovered != nil {
			f.logRenderFailure(widgetType, production, fmt.Errorf("panic: %v", recovered))
			unit = f.safeSkeleton(d, production)
		}
	}()

	var err error
	if production {
		unit, err = d.RenderProductionSafe(data, ctx)
	} else {
		unit, err = d.RenderInteractive(data, ctx)
	}
	if err != nil || unit == nil {
		if err == nil {
			err = fmt.Errorf("pipeline returned no unit")
		}
		f.logRenderFailure(widgetType, production, err)
		return f.safeSkeleton(d, production)
	}
	return unit
}

// safeSkeleton fetches a skeleton without trusting the descriptor: a panic
// inside a skeleton pipeline still yields a usable placeholder.
func (f *Factory) safeSkeleton(d widget.Descriptor, production bool) (unit *widget.Unit) {
	widgetType := d.Metadata().ID
	defer func() {
		if recovered := recover(); recovered != nil {
			f.logger.Error("factory: skeleton pipeline panicked",
				"widgetType", widgetType,
				"panic", fmt.Sprint(recovered))
			unit = &widget.Unit{
				WidgetType:  widgetType,
				Mode:        widget.ModeSkeleton,
				ContentType: "text/html",
				Body:        []byte(`<div class="pb-skeleton" aria-hidden="true"></div>`),
			}
		}
	}()

	if production {
		unit = d.RenderSkeletonProductionSafe()
	} else {
		unit = d.RenderSkeleton()
	}
	if unit == nil {
		unit = &widget.Unit{
			WidgetType:  widgetType,
			Mode:        widget.ModeSkeleton,
			ContentType: "text/html",
			Body:        []byte(`<div class="pb-skeleton" aria-hidden="true"></div>`),
		}
	}
	return unit
}

func (f *Factory) logRenderFailure(widgetType string, production bool, err error) {
	mode := widget.ModeInteractive
	if production {
		mode = widget.ModeProduction
	}
	renderErr := &widget.RenderError{WidgetType: widgetType, Mode: mode, Err: err}
	f.logger.Error("factory: pipeline failed, degrading to skeleton", "error", renderErr.Error())
}

func (f *Factory) resolveTheme(ctx widget.Context) widget.Context {
	if f.themes == nil || ctx.Theme == "" || ctx.ThemeConfig != nil {
		return ctx
	}
	selection, err := f.themes.Select(ctx.Theme, f.themeVariant)
	if err != nil || selection == nil {
		f.logger.Warn("factory: theme resolution failed", "theme", ctx.Theme, "error", fmt.Sprint(err))
		return ctx
	}

	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}
	if selection.Manifest != nil {
		cfg.Tokens = selection.Manifest.Tokens
	}
	ctx.ThemeConfig = cfg
	return ctx
}
