// Package template defines the engine-agnostic template seam built-in widget
// pipelines render through. Widgets depend on the TemplateRenderer interface
// only; the gotemplate subpackage supplies the pongo2-backed default engine.
package template
