package schema_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagebuilder/pkg/schema"
)

func TestInstanceDataCloneIsIndependent(t *testing.T) {
	original := schema.InstanceData{
		"title": map[string]any{"en": "Hello"},
		"items": []any{
			map[string]any{"title": "One"},
		},
		"count": 3,
	}

	clone := original.Clone()
	clone["count"] = 9
	clone["title"].(map[string]any)["en"] = "Changed"
	clone["items"].([]any)[0].(map[string]any)["title"] = "Changed"

	if got := original["count"]; got != 3 {
		t.Fatalf("count mutated through clone: %v", got)
	}
	if got := original["title"].(map[string]any)["en"]; got != "Hello" {
		t.Fatalf("nested map mutated through clone: %v", got)
	}
	if got := original["items"].([]any)[0].(map[string]any)["title"]; got != "One" {
		t.Fatalf("nested slice mutated through clone: %v", got)
	}
}

func TestInstanceDataMerge(t *testing.T) {
	base := schema.InstanceData{"a": "base", "b": "base"}
	overrides := schema.InstanceData{"b": "override", "c": "override"}

	merged := base.Merge(overrides)

	want := schema.InstanceData{"a": "base", "b": "override", "c": "override"}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
	if base["b"] != "base" {
		t.Fatalf("merge mutated receiver: %v", base["b"])
	}

	var nilData schema.InstanceData
	merged = nilData.Merge(overrides)
	if diff := cmp.Diff(overrides, merged); diff != "" {
		t.Fatalf("nil receiver merge mismatch (-want +got):\n%s", diff)
	}
}

func TestInstanceDataItems(t *testing.T) {
	cases := []struct {
		name      string
		data      schema.InstanceData
		wantOK    bool
		wantCount int
	}{
		{
			name:      "any slice of maps",
			data:      schema.InstanceData{"items": []any{map[string]any{"title": "One"}, map[string]any{"title": "Two"}}},
			wantOK:    true,
			wantCount: 2,
		},
		{
			name:      "typed slice",
			data:      schema.InstanceData{"items": []schema.InstanceData{{"title": "One"}}},
			wantOK:    true,
			wantCount: 1,
		},
		{
			name:      "map slice",
			data:      schema.InstanceData{"items": []map[string]any{{"title": "One"}}},
			wantOK:    true,
			wantCount: 1,
		},
		{
			name:      "non slice value",
			data:      schema.InstanceData{"items": "nope"},
			wantOK:    false,
			wantCount: 0,
		},
		{
			name:      "missing key",
			data:      schema.InstanceData{},
			wantOK:    false,
			wantCount: 0,
		},
		{
			name:      "non map entries become nil placeholders",
			data:      schema.InstanceData{"items": []any{"text", map[string]any{"title": "Two"}}},
			wantOK:    true,
			wantCount: 2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, ok := tc.data.Items("items")
			if ok != tc.wantOK {
				t.Fatalf("Items ok = %v, want %v", ok, tc.wantOK)
			}
			if len(items) != tc.wantCount {
				t.Fatalf("Items count = %d, want %d", len(items), tc.wantCount)
			}
		})
	}
}

func TestIsEmptyValue(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"empty slice", []any{}, true},
		{"whitespace string is present", " ", false},
		{"zero number is present", 0, false},
		{"false is present", false, false},
		{"populated slice", []any{"x"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := schema.IsEmptyValue(tc.value); got != tc.want {
				t.Fatalf("IsEmptyValue(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestConfigCloneIsIndependent(t *testing.T) {
	cfg := schema.Config{
		ID: "card-grid",
		Fields: []schema.Field{
			{
				Key:  "items",
				Kind: schema.KindArray,
				SubFields: []schema.Field{
					{Key: "title", Required: true},
				},
				Options: []schema.Option{{Value: "a", Label: "A"}},
			},
		},
	}

	clone := cfg.Clone()
	clone.Fields[0].SubFields[0].Key = "changed"
	clone.Fields[0].Options[0].Value = "changed"

	if cfg.Fields[0].SubFields[0].Key != "title" {
		t.Fatalf("sub-field mutated through clone")
	}
	if cfg.Fields[0].Options[0].Value != "a" {
		t.Fatalf("options mutated through clone")
	}
}

func TestConfigFieldLookup(t *testing.T) {
	cfg := schema.Config{Fields: []schema.Field{{Key: "title"}, {Key: "items", Kind: schema.KindArray}}}

	field, ok := cfg.Field("items")
	if !ok {
		t.Fatalf("Field(items) not found")
	}
	if !field.IsContainer() {
		t.Fatalf("array field should report container")
	}

	if _, ok := cfg.Field("missing"); ok {
		t.Fatalf("Field(missing) should not be found")
	}
}
