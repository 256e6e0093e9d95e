package widget

import theme "github.com/goliatone/go-theme"

// Mode names the rendering pipeline a Unit was produced by.
type Mode string

const (
	// ModeInteractive permits full dynamic behaviour: animation, timers,
	// user interaction. Editing and preview surfaces request it.
	ModeInteractive Mode = "interactive"
	// ModeProduction is a single deterministic pass suitable for first
	// paint; it must not depend on animation or timer state.
	ModeProduction Mode = "production"
	// ModeSkeleton is the data-independent loading placeholder every
	// failure path degrades to.
	ModeSkeleton Mode = "skeleton"
)

// Context carries the ambient, read-only parameters of one render call. It is
// passed by value through every pipeline; implementations derive copies when
// they need to adjust flags and never mutate shared state.
type Context struct {
	// Preview suppresses animation/timer-dependent sub-features inside the
	// interactive pipeline, producing deterministic embedded previews.
	Preview bool
	// ProductionSafe marks safety-critical output: invalid instance data
	// short-circuits to the skeleton instead of best-effort rendering.
	ProductionSafe bool
	// Locale is the BCP-47 tag localized fields project against.
	Locale string
	// Theme names the visual theme; the factory resolves it into
	// ThemeConfig before pipelines run.
	Theme string
	// SectionID identifies the section record being rendered, when any.
	SectionID string
	// ThemeConfig is the resolved theme payload (tokens, partials, asset
	// resolver). Nil when no theme selector is configured.
	ThemeConfig *theme.RendererConfig
}

// WithPreview returns a copy of the context with the preview flag set.
func (c Context) WithPreview() Context {
	c.Preview = true
	return c
}

// WithSection returns a copy of the context scoped to a section record.
func (c Context) WithSection(sectionID string) Context {
	c.SectionID = sectionID
	return c
}

// Unit is the opaque, engine-agnostic output of a rendering pipeline. The
// host UI consumes Body according to ContentType; the framework only
// inspects the envelope fields.
type Unit struct {
	// WidgetType is the descriptor id that produced the unit.
	WidgetType string `json:"widgetType"`
	// Mode records which pipeline ran.
	Mode Mode `json:"mode"`
	// ContentType describes Body (typically "text/html").
	ContentType string `json:"contentType"`
	// Body is the rendered payload.
	Body []byte `json:"body"`
	// Meta carries renderer-specific annotations (resolved locale, theme
	// name, fallback markers) for the host to inspect.
	Meta map[string]string `json:"meta,omitempty"`
}

// WithMeta returns a copy of the unit with the key/value annotation added.
func (u Unit) WithMeta(key, value string) Unit {
	meta := make(map[string]string, len(u.Meta)+1)
	for k, v := range u.Meta {
		meta[k] = v
	}
	meta[key] = value
	u.Meta = meta
	return u
}
