package builtin

import (
	"github.com/goliatone/go-pagebuilder/pkg/families"
	"github.com/goliatone/go-pagebuilder/pkg/schema"
	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

const cardGridMaxItems = 12

// CardGrid is a grid-family widget laying out 1..12 cards, each with a
// title, description, and optional icon, accent color, and link.
func (s *Set) CardGrid() *widget.Definition {
	def := &widget.Definition{
		Meta: widget.Metadata{
			ID:          "card-grid",
			Name:        "Card Grid",
			Category:    "grid",
			Description: "Responsive grid of cards with icon, title, and description.",
			Version:     "1.4.0",
			Tags:        []string{"cards", "features"},
		},
		Schema: schema.Config{
			ID:       "card-grid",
			Name:     "Card Grid",
			Category: "grid",
			MaxItems: cardGridMaxItems,
			Fields: []schema.Field{
				{
					Key:      "items",
					Label:    "Grid Items",
					Kind:     schema.KindArray,
					Required: true,
					MaxItems: cardGridMaxItems,
					SubFields: []schema.Field{
						{Key: "title", Label: "Title", Kind: schema.KindText, Required: true},
						{Key: "description", Label: "Description", Kind: schema.KindTextarea, Required: true},
						{Key: "icon", Label: "Icon", Kind: schema.KindIcon},
						{Key: "color", Label: "Accent Color", Kind: schema.KindColor},
						{Key: "link", Label: "Link", Kind: schema.KindURL},
					},
				},
			},
		},
		Defaults: schema.InstanceData{
			"items": []any{
				map[string]any{
					"title":       "Composable widgets",
					"description": "Assemble pages from self-describing units.",
				},
			},
		},
		Validators: []widget.Validator{
			families.ItemBounds("items", "grid item", 1, cardGridMaxItems),
		},
		Skeleton: s.skeleton("grid"),
		Load: widget.StaticImplementation(widget.Implementation{
			Interactive:    s.renderCardGrid(false),
			ProductionSafe: s.renderCardGrid(true),
		}),
		Transform: func(data schema.InstanceData) schema.InstanceData {
			return normalizeLocalized(data, "sectionTitle", "sectionSubtitle")
		},
	}
	return families.Apply(def, families.Grid())
}

func (s *Set) renderCardGrid(production bool) widget.RenderFunc {
	return func(data schema.InstanceData, ctx widget.Context) (*widget.Unit, error) {
		view := data.Clone()
		if view == nil {
			view = schema.InstanceData{}
		}
		view = projectHeading(view, data, ctx)

		items, _ := data.Items("items")
		cleaned := make([]any, 0, len(items))
		for _, item := range items {
			if item == nil {
				continue
			}
			entry := item.Clone()
			if icon, ok := entry.String("icon"); ok && icon != "" {
				entry["icon"] = sanitizeIcon(icon)
			}
			cleaned = append(cleaned, map[string]any(entry))
		}
		view["items"] = cleaned

		// carousels advance on a timer, so the layout downgrades to a
		// static grid for deterministic output
		if layout, _ := view.String("layout"); layout == "carousel" && (production || ctx.Preview) {
			view["layout"] = "grid"
		}
		view["sectionId"] = ctx.SectionID

		return s.renderUnit("card_grid", view)
	}
}
