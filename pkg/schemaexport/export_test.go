package schemaexport_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagebuilder/pkg/schema"
	"github.com/goliatone/go-pagebuilder/pkg/schemaexport"
)

func exportConfig() schema.Config {
	return schema.Config{
		ID:          "card-grid",
		Name:        "Card Grid",
		Description: "Responsive grid of cards.",
		Fields: []schema.Field{
			{Key: "title", Label: "Title", Kind: schema.KindLocale, Required: true},
			{Key: "columns", Label: "Columns", Kind: schema.KindNumber, Default: 3},
			{Key: "featured", Label: "Featured", Kind: schema.KindBoolean},
			{
				Key:   "layout",
				Label: "Layout",
				Kind:  schema.KindSelect,
				Options: []schema.Option{
					{Value: "grid", Label: "Grid"},
					{Value: "masonry", Label: "Masonry"},
				},
			},
			{Key: "link", Label: "Link", Kind: schema.KindURL},
			{Key: "accent", Label: "Accent", Kind: schema.KindColor},
			{Key: "body", Label: "Body", Kind: schema.KindRichText},
			{
				Key:      "items",
				Label:    "Items",
				Kind:     schema.KindArray,
				MaxItems: 12,
				SubFields: []schema.Field{
					{Key: "title", Label: "Title", Kind: schema.KindText, Required: true},
				},
			},
		},
	}
}

func TestExport(t *testing.T) {
	out := schemaexport.Export(exportConfig())

	if !out.Type.Is("object") {
		t.Fatalf("root type = %v, want object", out.Type)
	}
	if out.Title != "Card Grid" {
		t.Fatalf("title = %q", out.Title)
	}
	if diff := cmp.Diff([]string{"title"}, out.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}

	title := out.Properties["title"].Value
	if !title.Type.Is("object") || title.AdditionalProperties.Schema == nil {
		t.Fatalf("localized field should export as a string map: %+v", title)
	}
	if !title.AdditionalProperties.Schema.Value.Type.Is("string") {
		t.Fatalf("localized map values should be strings")
	}

	columns := out.Properties["columns"].Value
	if !columns.Type.Is("number") || columns.Default != 3 {
		t.Fatalf("number field exported as %+v", columns)
	}

	if !out.Properties["featured"].Value.Type.Is("boolean") {
		t.Fatalf("boolean field mis-exported")
	}

	layout := out.Properties["layout"].Value
	if diff := cmp.Diff([]any{"grid", "masonry"}, layout.Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}

	if got := out.Properties["link"].Value.Format; got != "uri-reference" {
		t.Fatalf("url format = %q", got)
	}
	if got := out.Properties["accent"].Value.Format; got != "color" {
		t.Fatalf("color format = %q", got)
	}
	if got := out.Properties["body"].Value.Format; got != "html" {
		t.Fatalf("richtext format = %q", got)
	}

	items := out.Properties["items"].Value
	if !items.Type.Is("array") {
		t.Fatalf("array field type = %v", items.Type)
	}
	if items.MaxItems == nil || *items.MaxItems != 12 {
		t.Fatalf("maxItems = %v", items.MaxItems)
	}
	nested := items.Items.Value
	if diff := cmp.Diff([]string{"title"}, nested.Required); diff != "" {
		t.Fatalf("nested required mismatch (-want +got):\n%s", diff)
	}
}

func TestExportJSON(t *testing.T) {
	raw, err := schemaexport.ExportJSON(exportConfig())
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	text := string(raw)
	for _, fragment := range []string{`"type":"object"`, `"required":["title"]`, `"maxItems":12`} {
		if !strings.Contains(text, fragment) {
			t.Fatalf("encoded schema missing %s:\n%s", fragment, text)
		}
	}
}
