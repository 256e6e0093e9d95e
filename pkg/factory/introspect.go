package factory

import (
	"github.com/goliatone/go-pagebuilder/pkg/schema"
	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

// ValidateData validates instance data against a widget type's schema. An
// unknown type yields a *widget.NotFoundError instead of a panic.
func (f *Factory) ValidateData(widgetType string, data schema.InstanceData) (widget.ValidationResult, error) {
	d, err := f.CreateRequired(widgetType)
	if err != nil {
		return widget.ValidationResult{}, err
	}
	return d.Validate(data), nil
}

// Config returns the configuration schema for a widget type. The external
// form builder consumes it to auto-generate editing UIs.
func (f *Factory) Config(widgetType string) (schema.Config, error) {
	d, err := f.CreateRequired(widgetType)
	if err != nil {
		return schema.Config{}, err
	}
	return d.ConfigSchema(), nil
}

// DefaultData returns the default instance data for a widget type.
func (f *Factory) DefaultData(widgetType string) (schema.InstanceData, error) {
	d, err := f.CreateRequired(widgetType)
	if err != nil {
		return nil, err
	}
	return d.DefaultData(), nil
}

// Metadata returns the catalog identity for a widget type.
func (f *Factory) Metadata(widgetType string) (widget.Metadata, error) {
	d, err := f.CreateRequired(widgetType)
	if err != nil {
		return widget.Metadata{}, err
	}
	return d.Metadata(), nil
}
