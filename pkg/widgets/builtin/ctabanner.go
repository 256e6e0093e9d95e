package builtin

import (
	"github.com/goliatone/go-pagebuilder/pkg/families"
	"github.com/goliatone/go-pagebuilder/pkg/i18n"
	"github.com/goliatone/go-pagebuilder/pkg/schema"
	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

// CTABanner is a card-family strip with a headline, rich-text body, and one
// button.
func (s *Set) CTABanner() *widget.Definition {
	def := &widget.Definition{
		Meta: widget.Metadata{
			ID:          "cta-banner",
			Name:        "CTA Banner",
			Category:    "card",
			Description: "Call-to-action strip with headline, body copy, and a button.",
			Version:     "1.0.1",
			Tags:        []string{"conversion"},
		},
		Schema: schema.Config{
			ID:       "cta-banner",
			Name:     "CTA Banner",
			Category: "card",
			Fields: []schema.Field{
				{Key: "title", Label: "Title", Kind: schema.KindLocale, Required: true},
				{Key: "body", Label: "Body", Kind: schema.KindRichText},
				{Key: "buttonText", Label: "Button Text", Kind: schema.KindLocale, Required: true},
				{Key: "buttonLink", Label: "Button Link", Kind: schema.KindURL, Required: true},
			},
		},
		Defaults: schema.InstanceData{
			"title":      map[string]any{"en": "Ready to launch?"},
			"buttonText": map[string]any{"en": "Talk to us"},
			"buttonLink": "/contact",
		},
		Skeleton: s.skeleton("banner"),
		Load: widget.StaticImplementation(widget.Implementation{
			Interactive: s.renderCTABanner,
		}),
		Transform: func(data schema.InstanceData) schema.InstanceData {
			return normalizeLocalized(data, "title", "body", "buttonText")
		},
	}
	return families.Apply(def, families.Card())
}

// renderCTABanner serves both pipelines: the banner has no animation or
// timer dependence, so the definition relies on the preview fallback for
// production-safe output.
func (s *Set) renderCTABanner(data schema.InstanceData, ctx widget.Context) (*widget.Unit, error) {
	view := data.Clone()
	if view == nil {
		view = schema.InstanceData{}
	}
	view = projectHeading(view, data, ctx)

	for _, key := range []string{"title", "body", "buttonText"} {
		if resolved := i18n.Project(data, key, ctx.Locale); resolved != "" {
			view[key] = resolved
		}
	}
	if body, ok := view.String("body"); ok {
		view["body"] = sanitizeRichText(body)
	}
	view["sectionId"] = ctx.SectionID

	return s.renderUnit("cta_banner", view)
}
