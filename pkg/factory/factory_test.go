package factory_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/goliatone/go-pagebuilder/pkg/factory"
	"github.com/goliatone/go-pagebuilder/pkg/registry"
	"github.com/goliatone/go-pagebuilder/pkg/schema"
	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

func newRegistry(t *testing.T, descriptors ...*widget.Definition) *registry.Registry {
	t.Helper()
	reg := registry.New(registry.WithLogger(widget.NopLogger{}))
	for _, d := range descriptors {
		reg.MustRegister(d)
	}
	return reg
}

func healthyDescriptor(id string) *widget.Definition {
	return &widget.Definition{
		Meta: widget.Metadata{ID: id, Name: id, Category: "test", Version: "1.0.0"},
		Schema: schema.Config{
			Fields: []schema.Field{
				{Key: "title", Label: "Title", Kind: schema.KindText, Required: true},
			},
		},
		Load: widget.StaticImplementation(widget.Implementation{
			Interactive: func(data schema.InstanceData, ctx widget.Context) (*widget.Unit, error) {
				title, _ := data.String("title")
				return &widget.Unit{Body: []byte("interactive:" + title)}, nil
			},
			ProductionSafe: func(data schema.InstanceData, ctx widget.Context) (*widget.Unit, error) {
				title, _ := data.String("title")
				return &widget.Unit{Body: []byte("production:" + title)}, nil
			},
		}),
	}
}

func panickingDescriptor(id string) *widget.Definition {
	return &widget.Definition{
		Meta: widget.Metadata{ID: id, Name: id, Category: "test", Version: "1.0.0"},
		Load: widget.StaticImplementation(widget.Implementation{
			Interactive: func(schema.InstanceData, widget.Context) (*widget.Unit, error) {
				panic("boom")
			},
		}),
	}
}

func TestCreateUnknownTypeReturnsNil(t *testing.T) {
	f := factory.New(newRegistry(t), factory.WithLogger(widget.NopLogger{}))

	if d := f.Create("missing"); d != nil {
		t.Fatalf("Create(missing) = %v, want nil", d)
	}
	if unit := f.Render("missing", nil, widget.Context{}); unit != nil {
		t.Fatalf("Render(missing) = %v, want nil", unit)
	}
	if unit := f.RenderSkeleton("missing"); unit != nil {
		t.Fatalf("RenderSkeleton(missing) = %v, want nil", unit)
	}
}

func TestCreateRequired(t *testing.T) {
	f := factory.New(newRegistry(t, healthyDescriptor("hero-simple")), factory.WithLogger(widget.NopLogger{}))

	if _, err := f.CreateRequired("hero-simple"); err != nil {
		t.Fatalf("CreateRequired(hero-simple): %v", err)
	}

	_, err := f.CreateRequired("missing")
	notFound, ok := err.(*widget.NotFoundError)
	if !ok {
		t.Fatalf("error type = %T, want *widget.NotFoundError", err)
	}
	if notFound.WidgetType != "missing" {
		t.Fatalf("NotFoundError widget type = %q", notFound.WidgetType)
	}
}

func TestRenderSelectsPipeline(t *testing.T) {
	f := factory.New(newRegistry(t, healthyDescriptor("hero-simple")), factory.WithLogger(widget.NopLogger{}))
	data := schema.InstanceData{"title": "Hi"}

	unit := f.Render("hero-simple", data, widget.Context{})
	if unit == nil || string(unit.Body) != "interactive:Hi" {
		t.Fatalf("interactive render = %+v", unit)
	}
	if unit.Mode != widget.ModeInteractive {
		t.Fatalf("mode = %q, want %q", unit.Mode, widget.ModeInteractive)
	}

	unit = f.Render("hero-simple", data, widget.Context{ProductionSafe: true})
	if unit == nil || string(unit.Body) != "production:Hi" {
		t.Fatalf("production render = %+v", unit)
	}
	if unit.Mode != widget.ModeProduction {
		t.Fatalf("mode = %q, want %q", unit.Mode, widget.ModeProduction)
	}
}

func TestRenderForcesPreviewOnInteractivePipeline(t *testing.T) {
	var seen widget.Context
	d := &widget.Definition{
		Meta: widget.Metadata{ID: "hero-simple", Category: "test", Version: "1.0.0"},
		Load: widget.StaticImplementation(widget.Implementation{
			Interactive: func(_ schema.InstanceData, ctx widget.Context) (*widget.Unit, error) {
				seen = ctx
				return &widget.Unit{Body: []byte("ok")}, nil
			},
		}),
	}
	f := factory.New(newRegistry(t, d), factory.WithLogger(widget.NopLogger{}))

	if unit := f.Render("hero-simple", nil, widget.Context{}); unit == nil {
		t.Fatalf("render failed")
	}
	if !seen.Preview {
		t.Fatalf("embedded render should force the preview flag")
	}
}

func TestRenderPanicDegradesToSkeleton(t *testing.T) {
	f := factory.New(newRegistry(t, panickingDescriptor("broken")), factory.WithLogger(widget.NopLogger{}))

	unit := f.Render("broken", nil, widget.Context{})
	if unit == nil {
		t.Fatalf("panic should degrade to a skeleton, not nil")
	}
	if unit.Mode != widget.ModeSkeleton {
		t.Fatalf("mode = %q, want %q", unit.Mode, widget.ModeSkeleton)
	}
	if !strings.Contains(string(unit.Body), "pb-skeleton") {
		t.Fatalf("skeleton body = %s", unit.Body)
	}
}

func TestRenderErrorDegradesToSkeleton(t *testing.T) {
	d := &widget.Definition{
		Meta: widget.Metadata{ID: "failing", Category: "test", Version: "1.0.0"},
		Load: widget.StaticImplementation(widget.Implementation{
			Interactive: func(schema.InstanceData, widget.Context) (*widget.Unit, error) {
				return nil, fmt.Errorf("upstream down")
			},
		}),
	}
	f := factory.New(newRegistry(t, d), factory.WithLogger(widget.NopLogger{}))

	unit := f.Render("failing", nil, widget.Context{})
	if unit == nil || unit.Mode != widget.ModeSkeleton {
		t.Fatalf("error should degrade to skeleton, got %+v", unit)
	}
}

func TestRenderNilUnitDegradesToSkeleton(t *testing.T) {
	d := &widget.Definition{
		Meta: widget.Metadata{ID: "empty", Category: "test", Version: "1.0.0"},
		Load: widget.StaticImplementation(widget.Implementation{
			Interactive: func(schema.InstanceData, widget.Context) (*widget.Unit, error) {
				return nil, nil
			},
		}),
	}
	f := factory.New(newRegistry(t, d), factory.WithLogger(widget.NopLogger{}))

	unit := f.Render("empty", nil, widget.Context{})
	if unit == nil || unit.Mode != widget.ModeSkeleton {
		t.Fatalf("nil unit should degrade to skeleton, got %+v", unit)
	}
}

func TestRenderInvalidDataUnderProductionShortCircuits(t *testing.T) {
	rendered := false
	d := healthyDescriptor("hero-simple")
	d.Load = widget.StaticImplementation(widget.Implementation{
		Interactive: func(schema.InstanceData, widget.Context) (*widget.Unit, error) {
			rendered = true
			return &widget.Unit{Body: []byte("ok")}, nil
		},
		ProductionSafe: func(schema.InstanceData, widget.Context) (*widget.Unit, error) {
			rendered = true
			return &widget.Unit{Body: []byte("ok")}, nil
		},
	})
	f := factory.New(newRegistry(t, d), factory.WithLogger(widget.NopLogger{}))

	unit := f.Render("hero-simple", schema.InstanceData{}, widget.Context{ProductionSafe: true})
	if unit == nil || unit.Mode != widget.ModeSkeleton {
		t.Fatalf("invalid production render should yield skeleton, got %+v", unit)
	}
	if rendered {
		t.Fatalf("pipeline must not run on invalid production data")
	}
}

func TestRenderInvalidDataInteractiveProceedsBestEffort(t *testing.T) {
	f := factory.New(newRegistry(t, healthyDescriptor("hero-simple")), factory.WithLogger(widget.NopLogger{}))

	unit := f.Render("hero-simple", schema.InstanceData{}, widget.Context{})
	if unit == nil || unit.Mode != widget.ModeInteractive {
		t.Fatalf("invalid interactive render should proceed, got %+v", unit)
	}
}

func TestRenderSkeleton(t *testing.T) {
	f := factory.New(newRegistry(t, healthyDescriptor("hero-simple")), factory.WithLogger(widget.NopLogger{}))

	unit := f.RenderSkeleton("hero-simple")
	if unit == nil || unit.Mode != widget.ModeSkeleton {
		t.Fatalf("RenderSkeleton = %+v", unit)
	}
}

func TestSafeSkeletonSurvivesPanickingSkeleton(t *testing.T) {
	d := &widget.Definition{
		Meta: widget.Metadata{ID: "hostile", Category: "test", Version: "1.0.0"},
		Skeleton: func() *widget.Unit {
			panic("skeleton boom")
		},
		Load: widget.StaticImplementation(widget.Implementation{
			Interactive: func(schema.InstanceData, widget.Context) (*widget.Unit, error) {
				panic("render boom")
			},
		}),
	}
	f := factory.New(newRegistry(t, d), factory.WithLogger(widget.NopLogger{}))

	unit := f.Render("hostile", nil, widget.Context{})
	if unit == nil {
		t.Fatalf("double panic should still yield a placeholder")
	}
	if !strings.Contains(string(unit.Body), "pb-skeleton") {
		t.Fatalf("placeholder body = %s", unit.Body)
	}
}
