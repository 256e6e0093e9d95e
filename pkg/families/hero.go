package families

import (
	"github.com/goliatone/go-pagebuilder/pkg/i18n"
	"github.com/goliatone/go-pagebuilder/pkg/schema"
	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

// heroViewKeys are the localizable fields every hero-like widget projects
// before rendering.
var heroViewKeys = []string{"title", "subtitle", "description", "ctaText"}

// Hero returns the hero-like family: the card prefix plus a CTA link field.
func Hero() Family {
	fields := append(sectionHeadingFields(), backgroundStyleField(),
		schema.Field{
			Key:         "ctaLink",
			Label:       "CTA Link",
			Kind:        schema.KindURL,
			Placeholder: "/contact",
		},
	)
	return Family{
		Name:   "hero",
		Fields: fields,
		Defaults: schema.InstanceData{
			"backgroundStyle": "gradient",
		},
	}
}

// ProjectHeroView derives the locale-resolved view of hero instance data:
// for each localizable key the stored value (map form or legacy suffixed
// pair) collapses into a plain string matching ctx.Locale, falling back to
// English. The stored bilingual data is never mutated; the projection is a
// fresh copy carrying both the original values and the resolved ones.
func ProjectHeroView(data schema.InstanceData, ctx widget.Context) schema.InstanceData {
	view := data.Clone()
	if view == nil {
		view = schema.InstanceData{}
	}
	for _, key := range heroViewKeys {
		if resolved := i18n.Project(data, key, ctx.Locale); resolved != "" {
			view[key] = resolved
		}
	}
	return view
}
