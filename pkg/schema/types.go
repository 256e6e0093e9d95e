package schema

// Kind enumerates the field kinds the widget framework understands. Renderers
// and the external form builder key their controls off this value.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindRichText Kind = "richtext"
	KindNumber   Kind = "number"
	KindBoolean  Kind = "boolean"
	KindSelect   Kind = "select"
	KindColor    Kind = "color"
	KindIcon     Kind = "icon"
	KindURL      Kind = "url"
	KindImage    Kind = "image"
	KindLocale   Kind = "localized"
	KindArray    Kind = "array"
	KindGroup    Kind = "group"
)

// Option is a single enumerated choice on a select-kind field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes one configurable value inside a widget config schema. Array
// and group kinds nest sub-fields; every other kind is a leaf. Struct fields
// carry JSON tags so the external form builder can consume schemas directly.
type Field struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Kind        Kind     `json:"kind"`
	Required    bool     `json:"required,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Description string   `json:"description,omitempty"`
	Options     []Option `json:"options,omitempty"`
	// MaxItems bounds array-kind fields. Zero means unbounded.
	MaxItems  int     `json:"maxItems,omitempty"`
	SubFields []Field `json:"subFields,omitempty"`
	Default   any     `json:"defaultValue,omitempty"`
}

// IsContainer reports whether the field nests sub-fields.
func (f Field) IsContainer() bool {
	return f.Kind == KindArray || f.Kind == KindGroup
}

// Config is the full configuration schema one descriptor exposes. Immutable
// once returned; consumers receive defensive copies.
type Config struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	MaxItems    int     `json:"maxItems,omitempty"`
	Fields      []Field `json:"fields"`
	Defaults    InstanceData
}

// Field returns the top-level field with the given key.
func (c Config) Field(key string) (Field, bool) {
	for _, field := range c.Fields {
		if field.Key == key {
			return field, true
		}
	}
	return Field{}, false
}

// Clone returns a deep copy of the config so callers can hand it out without
// exposing the descriptor's internal state to mutation.
func (c Config) Clone() Config {
	out := c
	out.Fields = cloneFields(c.Fields)
	out.Defaults = c.Defaults.Clone()
	return out
}

func cloneFields(fields []Field) []Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]Field, len(fields))
	for i, field := range fields {
		field.Options = append([]Option(nil), field.Options...)
		field.SubFields = cloneFields(field.SubFields)
		out[i] = field
	}
	return out
}
