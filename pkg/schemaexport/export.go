// Package schemaexport converts widget configuration schemas into OpenAPI
// schema objects. The external form-generation collaborator consumes the
// result to auto-build editing UIs from the same contract the runtime
// validates against.
package schemaexport

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	json "github.com/goccy/go-json"

	"github.com/goliatone/go-pagebuilder/pkg/schema"
)

// Export converts a widget config schema into an OpenAPI object schema: one
// property per field, required fields collected at the object level, enums
// and cardinality bounds carried through.
func Export(cfg schema.Config) *openapi3.Schema {
	out := objectSchema(cfg.Fields)
	out.Title = cfg.Name
	out.Description = cfg.Description
	return out
}

// ExportJSON emits the OpenAPI schema as JSON for transport to the form
// builder.
func ExportJSON(cfg schema.Config) ([]byte, error) {
	raw, err := json.Marshal(Export(cfg))
	if err != nil {
		return nil, fmt.Errorf("schemaexport: encode %q: %w", cfg.ID, err)
	}
	return raw, nil
}

func objectSchema(fields []schema.Field) *openapi3.Schema {
	out := &openapi3.Schema{
		Type:       &openapi3.Types{openapi3.TypeObject},
		Properties: make(openapi3.Schemas, len(fields)),
	}
	for _, field := range fields {
		out.Properties[field.Key] = openapi3.NewSchemaRef("", fieldSchema(field))
		if field.Required {
			out.Required = append(out.Required, field.Key)
		}
	}
	return out
}

func fieldSchema(field schema.Field) *openapi3.Schema {
	var out *openapi3.Schema

	switch field.Kind {
	case schema.KindNumber:
		out = &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeNumber}}
	case schema.KindBoolean:
		out = &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeBoolean}}
	case schema.KindSelect:
		out = &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}}
		for _, option := range field.Options {
			out.Enum = append(out.Enum, option.Value)
		}
	case schema.KindLocale:
		// localized text: a map of BCP-47 tags to translations
		out = &openapi3.Schema{
			Type: &openapi3.Types{openapi3.TypeObject},
			AdditionalProperties: openapi3.AdditionalProperties{
				Schema: openapi3.NewSchemaRef("", &openapi3.Schema{
					Type: &openapi3.Types{openapi3.TypeString},
				}),
			},
		}
	case schema.KindArray:
		out = &openapi3.Schema{
			Type:  &openapi3.Types{openapi3.TypeArray},
			Items: openapi3.NewSchemaRef("", objectSchema(field.SubFields)),
		}
		if field.MaxItems > 0 {
			bound := uint64(field.MaxItems)
			out.MaxItems = &bound
		}
	case schema.KindGroup:
		out = objectSchema(field.SubFields)
	default:
		out = &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}}
		switch field.Kind {
		case schema.KindURL, schema.KindImage:
			out.Format = "uri-reference"
		case schema.KindRichText:
			out.Format = "html"
		case schema.KindColor:
			out.Format = "color"
		}
	}

	out.Title = field.Label
	out.Description = field.Description
	if field.Default != nil {
		out.Default = field.Default
	}
	return out
}
