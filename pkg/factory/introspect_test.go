package factory_test

import (
	"testing"

	"github.com/goliatone/go-pagebuilder/pkg/factory"
	"github.com/goliatone/go-pagebuilder/pkg/schema"
	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

func TestIntrospection(t *testing.T) {
	f := factory.New(newRegistry(t, healthyDescriptor("hero-simple")), factory.WithLogger(widget.NopLogger{}))

	cfg, err := f.Config("hero-simple")
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if _, ok := cfg.Field("title"); !ok {
		t.Fatalf("config fields missing: %+v", cfg)
	}

	meta, err := f.Metadata("hero-simple")
	if err != nil || meta.ID != "hero-simple" {
		t.Fatalf("Metadata = %+v, %v", meta, err)
	}

	result, err := f.ValidateData("hero-simple", schema.InstanceData{"title": "Hi"})
	if err != nil || !result.Valid {
		t.Fatalf("ValidateData = %+v, %v", result, err)
	}

	if _, err := f.DefaultData("hero-simple"); err != nil {
		t.Fatalf("DefaultData: %v", err)
	}
}

func TestIntrospectionUnknownType(t *testing.T) {
	f := factory.New(newRegistry(t), factory.WithLogger(widget.NopLogger{}))

	if _, err := f.Config("missing"); err == nil {
		t.Fatalf("Config(missing) should fail")
	}
	if _, err := f.ValidateData("missing", nil); err == nil {
		t.Fatalf("ValidateData(missing) should fail")
	}
	if _, err := f.DefaultData("missing"); err == nil {
		t.Fatalf("DefaultData(missing) should fail")
	}
	if _, err := f.Metadata("missing"); err == nil {
		t.Fatalf("Metadata(missing) should fail")
	}
}
