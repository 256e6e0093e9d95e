// Package widget defines the plugin contract of the page-builder framework: a
// Descriptor is a self-describing renderable unit exposing identity metadata,
// a config schema, defaults, and three rendering pipelines (interactive,
// production-safe, skeleton). Definition is the composition-first way to
// build a Descriptor from closures, with an optional lazy implementation
// provider for widgets whose rendering code is expensive to wire up front.
// The package also carries the pieces every other layer shares: the render
// Context, the renderable Unit, the schema-driven validator, the JSON
// serialization envelope, section records, the error taxonomy, and the
// Logger seam.
package widget
