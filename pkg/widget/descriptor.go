package widget

import (
	"github.com/goliatone/go-pagebuilder/pkg/schema"
)

// Metadata identifies a descriptor inside the catalog.
type Metadata struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Version     string   `json:"version"`
	Tags        []string `json:"tags,omitempty"`
}

// Descriptor is the unit of plugability: a self-describing widget exposing
// identity, a config schema, default data, validation, and three rendering
// pipelines. Implementations must be safe for concurrent use once
// registered; every method other than the render pipelines must be pure.
type Descriptor interface {
	// Metadata returns the catalog identity. It must be constant for the
	// lifetime of the descriptor.
	Metadata() Metadata

	// ConfigSchema returns the configuration contract. Deterministic, no
	// side effects; callers receive an independent copy.
	ConfigSchema() schema.Config

	// DefaultData returns instance data that satisfies Validate.
	DefaultData() schema.InstanceData

	// Validate checks instance data against the config schema plus any
	// widget-specific rules. It never mutates data.
	Validate(data schema.InstanceData) ValidationResult

	// RenderInteractive produces full-featured output and may assume a
	// live execution environment unless ctx.Preview is set.
	RenderInteractive(data schema.InstanceData, ctx Context) (*Unit, error)

	// RenderProductionSafe produces a single-pass deterministic unit for
	// first paint, free of animation and timer dependence.
	RenderProductionSafe(data schema.InstanceData, ctx Context) (*Unit, error)

	// RenderSkeleton returns the loading placeholder. It must succeed
	// without instance data.
	RenderSkeleton() *Unit

	// RenderSkeletonProductionSafe is the skeleton variant used under
	// production constraints.
	RenderSkeletonProductionSafe() *Unit
}

// ProductionReadiness lets a descriptor report whether it ships a dedicated
// production-safe pipeline or relies on the preview fallback. The registry's
// completeness check consults it at startup review time.
type ProductionReadiness interface {
	HasProductionPipeline() bool
}
