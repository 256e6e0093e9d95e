package families_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagebuilder/pkg/families"
	"github.com/goliatone/go-pagebuilder/pkg/schema"
	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

func TestApplyComposesFamilyOntoDefinition(t *testing.T) {
	familyRan := make([]string, 0, 2)
	def := &widget.Definition{
		Meta: widget.Metadata{ID: "card-grid", Tags: []string{"cards"}},
		Schema: schema.Config{
			Fields: []schema.Field{{Key: "items", Label: "Items", Kind: schema.KindArray}},
		},
		Defaults: schema.InstanceData{"backgroundStyle": "dark", "own": "value"},
		Validators: []widget.Validator{
			func(schema.InstanceData) widget.ValidationResult {
				familyRan = append(familyRan, "widget")
				return widget.ValidationResult{Valid: true}
			},
		},
	}

	family := families.Grid()
	family.Validators = []widget.Validator{
		func(schema.InstanceData) widget.ValidationResult {
			familyRan = append(familyRan, "family")
			return widget.ValidationResult{Valid: true}
		},
	}

	families.Apply(def, family)

	// family fields come first, the widget's own last
	if def.Schema.Fields[0].Key != "sectionTitle" {
		t.Fatalf("first field = %q, want sectionTitle", def.Schema.Fields[0].Key)
	}
	if last := def.Schema.Fields[len(def.Schema.Fields)-1]; last.Key != "items" {
		t.Fatalf("last field = %q, want items", last.Key)
	}

	// widget defaults win on collision, family defaults fill the rest
	if def.Defaults["backgroundStyle"] != "dark" {
		t.Fatalf("widget default lost: %v", def.Defaults["backgroundStyle"])
	}
	if def.Defaults["layout"] != "grid" || def.Defaults["own"] != "value" {
		t.Fatalf("defaults merge mismatch: %v", def.Defaults)
	}

	def.Validate(schema.InstanceData{})
	if diff := cmp.Diff([]string{"family", "widget"}, familyRan); diff != "" {
		t.Fatalf("validator order mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"cards", "grid"}, def.Meta.Tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestFamilyFieldPrefixes(t *testing.T) {
	cases := []struct {
		name   string
		family families.Family
		keys   []string
	}{
		{
			name:   "card",
			family: families.Card(),
			keys:   []string{"sectionTitle", "sectionSubtitle", "backgroundStyle"},
		},
		{
			name:   "grid",
			family: families.Grid(),
			keys:   []string{"sectionTitle", "sectionSubtitle", "backgroundStyle", "layout", "columns", "gap"},
		},
		{
			name:   "hero",
			family: families.Hero(),
			keys:   []string{"sectionTitle", "sectionSubtitle", "backgroundStyle", "ctaLink"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := make([]string, 0, len(tc.family.Fields))
			for _, field := range tc.family.Fields {
				got = append(got, field.Key)
			}
			if diff := cmp.Diff(tc.keys, got); diff != "" {
				t.Fatalf("field keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyClonesFamilyFields(t *testing.T) {
	family := families.Card()
	def := &widget.Definition{Meta: widget.Metadata{ID: "a"}}
	families.Apply(def, family)

	def.Schema.Fields[0].Label = "Changed"
	if family.Fields[0].Label == "Changed" {
		t.Fatalf("Apply shared family field storage with the definition")
	}
}

func TestItemBounds(t *testing.T) {
	validator := families.ItemBounds("items", "grid item", 1, 12)

	items := func(n int) schema.InstanceData {
		list := make([]any, n)
		for i := range list {
			list[i] = map[string]any{"title": "x"}
		}
		return schema.InstanceData{"items": list}
	}

	cases := []struct {
		name       string
		data       schema.InstanceData
		wantValid  bool
		wantErrors []string
	}{
		{
			name:       "zero items",
			data:       items(0),
			wantValid:  false,
			wantErrors: []string{"At least one grid item is required"},
		},
		{
			name:       "missing key counts as zero",
			data:       schema.InstanceData{},
			wantValid:  false,
			wantErrors: []string{"At least one grid item is required"},
		},
		{
			name:      "within bounds",
			data:      items(3),
			wantValid: true,
		},
		{
			name:      "at the ceiling",
			data:      items(12),
			wantValid: true,
		},
		{
			name:       "over the ceiling",
			data:       items(13),
			wantValid:  false,
			wantErrors: []string{"Maximum 12 grid items allowed"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := validator(tc.data)
			if result.Valid != tc.wantValid {
				t.Fatalf("Valid = %v, want %v (errors: %v)", result.Valid, tc.wantValid, result.Errors)
			}
			if diff := cmp.Diff(tc.wantErrors, result.Errors); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestItemBoundsPluralMinimum(t *testing.T) {
	validator := families.ItemBounds("items", "logo", 3, 0)
	result := validator(schema.InstanceData{"items": []any{map[string]any{}}})
	if result.Valid {
		t.Fatalf("below plural minimum should be invalid")
	}
	if diff := cmp.Diff([]string{"At least 3 logos are required"}, result.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestEachItemRequires(t *testing.T) {
	validator := families.EachItemRequires("items", "Card", map[string]string{
		"title":       "a title",
		"description": "a description",
	})

	result := validator(schema.InstanceData{"items": []any{
		map[string]any{"title": "One", "description": "ok"},
		map[string]any{"title": "Two"},
		map[string]any{},
	}})

	want := []string{
		"Card 2 is missing a description",
		"Card 3 is missing a description",
		"Card 3 is missing a title",
	}
	if result.Valid {
		t.Fatalf("missing sub-values should be invalid")
	}
	if diff := cmp.Diff(want, result.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectHeroView(t *testing.T) {
	data := schema.InstanceData{
		"title":    map[string]any{"en": "Hi", "th": "สวัสดี"},
		"titleEn":  "Legacy",
		"subtitle": "plain subtitle",
		"ctaText":  map[string]any{"en": "Go"},
	}

	view := families.ProjectHeroView(data, widget.Context{Locale: "th"})

	if view["title"] != "สวัสดี" {
		t.Fatalf("title projection = %v", view["title"])
	}
	if view["subtitle"] != "plain subtitle" {
		t.Fatalf("subtitle projection = %v", view["subtitle"])
	}
	if view["ctaText"] != "Go" {
		t.Fatalf("ctaText fallback = %v", view["ctaText"])
	}

	// the stored bilingual value is untouched
	stored, ok := data["title"].(map[string]any)
	if !ok || stored["th"] != "สวัสดี" {
		t.Fatalf("projection mutated stored data: %v", data["title"])
	}
}
