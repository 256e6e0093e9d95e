package factory

import (
	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

// SectionResult pairs a stored section record with its resolved renderable.
// Renderable is nil when the section's widget type is unknown; hosts render
// an explicit placeholder in that case.
type SectionResult struct {
	Section    widget.Section
	Renderable *widget.Unit
}

// RenderSection renders a single stored section. Inactive sections return
// nil immediately; active ones delegate to Render with the context scoped
// to the section id.
func (f *Factory) RenderSection(section widget.Section, ctx widget.Context) *widget.Unit {
	if !section.Active {
		return nil
	}
	return f.Render(section.WidgetType, section.Data, ctx.WithSection(section.ID))
}

// RenderSections renders a page worth of sections: inactive records are
// filtered out, the rest render in ascending order, and each renders
// independently so one failing section never suppresses the others.
func (f *Factory) RenderSections(sections []widget.Section, ctx widget.Context) []SectionResult {
	ordered := widget.SortSections(sections)
	out := make([]SectionResult, 0, len(ordered))
	for _, section := range ordered {
		out = append(out, SectionResult{
			Section:    section,
			Renderable: f.RenderSection(section, ctx),
		})
	}
	return out
}
