// Package families captures what card-like, grid-like, and hero-like widgets
// share: a fixed prefix of section-level fields, merged defaults, and
// appended validators. Families are composed onto a widget.Definition with
// Apply instead of being inherited, so a concrete widget remains a flat
// value: its own fields behind the family prefix, its own defaults winning
// on collision, its own validators running after the family's.
package families

import (
	"github.com/goliatone/go-pagebuilder/pkg/schema"
	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

// Family bundles the shared schema prefix, defaults, and validators of one
// widget family.
type Family struct {
	Name       string
	Fields     []schema.Field
	Defaults   schema.InstanceData
	Validators []widget.Validator
}

// Apply composes the family onto a definition: family fields are prepended
// ahead of the widget's own, family defaults merge underneath the widget's
// (widget values win), and family validators run before the widget's own.
func Apply(def *widget.Definition, family Family) *widget.Definition {
	fields := make([]schema.Field, 0, len(family.Fields)+len(def.Schema.Fields))
	fields = append(fields, cloneFields(family.Fields)...)
	fields = append(fields, def.Schema.Fields...)
	def.Schema.Fields = fields

	def.Defaults = family.Defaults.Merge(def.Defaults)

	validators := make([]widget.Validator, 0, len(family.Validators)+len(def.Validators))
	validators = append(validators, family.Validators...)
	validators = append(validators, def.Validators...)
	def.Validators = validators

	if family.Name != "" {
		def.Meta.Tags = append(def.Meta.Tags, family.Name)
	}
	return def
}

// backgroundStyleField is shared by every family: a closed enumeration the
// theme layer maps onto surface styles.
func backgroundStyleField() schema.Field {
	return schema.Field{
		Key:   "backgroundStyle",
		Label: "Background Style",
		Kind:  schema.KindSelect,
		Options: []schema.Option{
			{Value: "plain", Label: "Plain"},
			{Value: "soft", Label: "Soft"},
			{Value: "gradient", Label: "Gradient"},
			{Value: "dark", Label: "Dark"},
		},
		Default: "plain",
	}
}

func sectionHeadingFields() []schema.Field {
	return []schema.Field{
		{
			Key:         "sectionTitle",
			Label:       "Section Title",
			Kind:        schema.KindLocale,
			Placeholder: "Add a section title",
		},
		{
			Key:   "sectionSubtitle",
			Label: "Section Subtitle",
			Kind:  schema.KindLocale,
		},
	}
}

// Card returns the card-like family: section heading plus background style.
func Card() Family {
	return Family{
		Name:   "card",
		Fields: append(sectionHeadingFields(), backgroundStyleField()),
		Defaults: schema.InstanceData{
			"backgroundStyle": "plain",
		},
	}
}

// Grid returns the grid-like family: the card prefix plus the layout,
// column, and gap triple grid widgets lay items out with.
func Grid() Family {
	fields := append(sectionHeadingFields(), backgroundStyleField(),
		schema.Field{
			Key:   "layout",
			Label: "Layout",
			Kind:  schema.KindSelect,
			Options: []schema.Option{
				{Value: "grid", Label: "Grid"},
				{Value: "masonry", Label: "Masonry"},
				{Value: "carousel", Label: "Carousel"},
			},
			Default: "grid",
		},
		schema.Field{
			Key:     "columns",
			Label:   "Columns",
			Kind:    schema.KindNumber,
			Default: 3,
		},
		schema.Field{
			Key:     "gap",
			Label:   "Gap",
			Kind:    schema.KindSelect,
			Options: []schema.Option{
				{Value: "compact", Label: "Compact"},
				{Value: "regular", Label: "Regular"},
				{Value: "spacious", Label: "Spacious"},
			},
			Default: "regular",
		},
	)
	return Family{
		Name:   "grid",
		Fields: fields,
		Defaults: schema.InstanceData{
			"backgroundStyle": "plain",
			"layout":          "grid",
			"columns":         3,
			"gap":             "regular",
		},
	}
}

func cloneFields(fields []schema.Field) []schema.Field {
	cfg := schema.Config{Fields: fields}
	return cfg.Clone().Fields
}
