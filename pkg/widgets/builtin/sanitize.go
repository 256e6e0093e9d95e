package builtin

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	richText   *bluemonday.Policy
	iconMarkup *bluemonday.Policy
)

func initPolicies() {
	policyOnce.Do(func() {
		richText = bluemonday.UGCPolicy()

		policy := bluemonday.StrictPolicy()
		elements := []string{
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc", "defs", "use",
		}
		policy.AllowElements(elements...)
		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")
		policy.AllowAttrs("href", "xlink:href").OnElements("use")
		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"stroke-linecap", "stroke-linejoin", "class",
			).OnElements(el)
		}
		iconMarkup = policy
	})
}

// sanitizeRichText cleans editor-supplied HTML before it reaches a |safe
// template slot.
func sanitizeRichText(raw string) string {
	initPolicies()
	return strings.TrimSpace(richText.Sanitize(raw))
}

// sanitizeIcon strips inline icon markup down to presentational SVG.
func sanitizeIcon(raw string) string {
	initPolicies()
	return strings.TrimSpace(iconMarkup.Sanitize(raw))
}
