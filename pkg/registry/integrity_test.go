package registry_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagebuilder/pkg/registry"
	"github.com/goliatone/go-pagebuilder/pkg/schema"
	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

func TestValidateIntegrityCleanCatalog(t *testing.T) {
	reg := registry.New(registry.WithLogger(widget.NopLogger{}))
	reg.MustRegister(newDescriptor("hero-simple", "hero", "1.0.0"))
	reg.MustRegister(newDescriptor("card-grid", "grid", "1.0.0"))
	reg.MustRegister(newDescriptor("card-grid", "grid", "1.1.0"))
	reg.Unregister("hero-simple")

	report := reg.ValidateIntegrity()
	if !report.Valid {
		t.Fatalf("clean catalog reported errors: %v", report.Errors)
	}
}

func TestCheckCompleteness(t *testing.T) {
	reg := registry.New(registry.WithLogger(widget.NopLogger{}))

	full := newDescriptor("card-grid", "grid", "1.0.0")
	full.Load = widget.StaticImplementation(widget.Implementation{
		Interactive: func(schema.InstanceData, widget.Context) (*widget.Unit, error) {
			return &widget.Unit{}, nil
		},
		ProductionSafe: func(schema.InstanceData, widget.Context) (*widget.Unit, error) {
			return &widget.Unit{}, nil
		},
	})
	reg.MustRegister(full)
	reg.MustRegister(newDescriptor("cta-banner", "card", "1.0.0"))
	reg.MustRegister(newDescriptor("hero-simple", "hero", "1.0.0"))

	got := reg.CheckCompleteness()

	// newDescriptor wires only the interactive pipeline
	want := []string{"cta-banner", "hero-simple"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("completeness mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckCompletenessAllReady(t *testing.T) {
	reg := registry.New(registry.WithLogger(widget.NopLogger{}))

	d := newDescriptor("hero-simple", "hero", "1.0.0")
	d.Load = widget.StaticImplementation(widget.Implementation{
		Interactive: func(schema.InstanceData, widget.Context) (*widget.Unit, error) {
			return &widget.Unit{}, nil
		},
		ProductionSafe: func(schema.InstanceData, widget.Context) (*widget.Unit, error) {
			return &widget.Unit{}, nil
		},
	})
	reg.MustRegister(d)

	if got := reg.CheckCompleteness(); len(got) != 0 {
		t.Fatalf("complete catalog reported %v", got)
	}
}
