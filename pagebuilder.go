// Package pagebuilder assembles the widget framework: a registry of
// self-describing widget descriptors, a factory that turns stored section
// configuration into safely rendered output, and the schema model that
// drives both validation and externally generated editing forms. The root
// package re-exports the common surface and offers a one-call constructor
// wired with the built-in widgets.
package pagebuilder

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-pagebuilder/pkg/factory"
	"github.com/goliatone/go-pagebuilder/pkg/registry"
	"github.com/goliatone/go-pagebuilder/pkg/schema"
	"github.com/goliatone/go-pagebuilder/pkg/widget"
	"github.com/goliatone/go-pagebuilder/pkg/widgets/builtin"
)

// Commonly used types re-exported for convenience.
type (
	// Descriptor is the widget plugin contract.
	Descriptor = widget.Descriptor
	// Definition builds a Descriptor by composition.
	Definition = widget.Definition
	// Context carries ambient render parameters.
	Context = widget.Context
	// Unit is the opaque renderable output.
	Unit = widget.Unit
	// Section is a persisted widget placement.
	Section = widget.Section
	// InstanceData is untrusted stored widget configuration.
	InstanceData = schema.InstanceData
	// ValidationResult reports schema violations and advisories.
	ValidationResult = widget.ValidationResult
)

// Option customises the assembled engine.
type Option func(*config)

type config struct {
	logger          widget.Logger
	themeSelector   theme.ThemeSelector
	skipBuiltins    bool
	builtinOptions  []builtin.Option
	registryOptions []registry.Option
	factoryOptions  []factory.Option
}

// WithLogger injects a shared logger into the registry and factory.
func WithLogger(logger widget.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithThemeSelector wires a go-theme selector into the factory.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(cfg *config) {
		cfg.themeSelector = selector
	}
}

// WithoutBuiltins skips registration of the stock widgets.
func WithoutBuiltins() Option {
	return func(cfg *config) {
		cfg.skipBuiltins = true
	}
}

// WithBuiltinOptions forwards options to the built-in widget set.
func WithBuiltinOptions(options ...builtin.Option) Option {
	return func(cfg *config) {
		cfg.builtinOptions = append(cfg.builtinOptions, options...)
	}
}

// Engine pairs a populated registry with its factory. Construct one per
// process at startup, finish registration, then share it across render
// traffic.
type Engine struct {
	Registry *registry.Registry
	Factory  *factory.Factory
}

// New assembles an engine with the built-in widgets registered.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	registryOptions := cfg.registryOptions
	factoryOptions := cfg.factoryOptions
	if cfg.logger != nil {
		registryOptions = append(registryOptions, registry.WithLogger(cfg.logger))
		factoryOptions = append(factoryOptions, factory.WithLogger(cfg.logger))
	}
	if cfg.themeSelector != nil {
		factoryOptions = append(factoryOptions, factory.WithThemeSelector(cfg.themeSelector))
	}

	reg := registry.New(registryOptions...)
	if !cfg.skipBuiltins {
		if err := builtin.Register(reg, cfg.builtinOptions...); err != nil {
			return nil, err
		}
	}

	return &Engine{
		Registry: reg,
		Factory:  factory.New(reg, factoryOptions...),
	}, nil
}
