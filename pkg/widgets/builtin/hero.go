package builtin

import (
	"github.com/goliatone/go-pagebuilder/pkg/families"
	"github.com/goliatone/go-pagebuilder/pkg/schema"
	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

// HeroSimple is a hero-family banner with a localized title, supporting
// copy, and a single call to action.
func (s *Set) HeroSimple() *widget.Definition {
	def := &widget.Definition{
		Meta: widget.Metadata{
			ID:          "hero-simple",
			Name:        "Simple Hero",
			Category:    "hero",
			Description: "Full-width banner with a localized headline and one call to action.",
			Version:     "1.2.0",
			Tags:        []string{"banner", "landing"},
		},
		Schema: schema.Config{
			ID:       "hero-simple",
			Name:     "Simple Hero",
			Category: "hero",
			Fields: []schema.Field{
				{Key: "title", Label: "Title", Kind: schema.KindLocale, Required: true},
				{Key: "subtitle", Label: "Subtitle", Kind: schema.KindLocale},
				{Key: "description", Label: "Description", Kind: schema.KindRichText},
				{Key: "ctaText", Label: "CTA Text", Kind: schema.KindLocale},
				{Key: "image", Label: "Image", Kind: schema.KindImage},
			},
		},
		Defaults: schema.InstanceData{
			"title":           map[string]any{"en": "Build pages faster", "th": "สร้างเพจได้เร็วขึ้น"},
			"ctaText":         map[string]any{"en": "Get started"},
			"ctaLink":         "/contact",
			"backgroundStyle": "gradient",
		},
		Skeleton: s.skeleton("hero"),
		Load: widget.StaticImplementation(widget.Implementation{
			Interactive:    s.renderHero(false),
			ProductionSafe: s.renderHero(true),
		}),
		Transform: func(data schema.InstanceData) schema.InstanceData {
			return normalizeLocalized(data, "title", "subtitle", "description", "ctaText")
		},
	}
	return families.Apply(def, families.Hero())
}

func (s *Set) renderHero(production bool) widget.RenderFunc {
	return func(data schema.InstanceData, ctx widget.Context) (*widget.Unit, error) {
		view := families.ProjectHeroView(data, ctx)
		view = projectHeading(view, data, ctx)
		if description, ok := view.String("description"); ok {
			view["description"] = sanitizeRichText(description)
		}

		view["animate"] = !production && !ctx.Preview
		view["sectionId"] = ctx.SectionID
		if ctx.ThemeConfig != nil {
			view["themeTokens"] = ctx.ThemeConfig.Tokens
		}

		unit, err := s.renderUnit("hero_simple", view)
		if err != nil {
			return nil, err
		}
		if title, ok := view.String("title"); ok {
			unit = referenced(unit, "title", title)
		}
		return unit, nil
	}
}

// referenced annotates a unit with the resolved value of a projected field
// so hosts and tests can assert locale projection without parsing HTML.
func referenced(unit *widget.Unit, key, value string) *widget.Unit {
	stampedUnit := unit.WithMeta("resolved."+key, value)
	return &stampedUnit
}
