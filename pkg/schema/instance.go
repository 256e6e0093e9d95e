package schema

// InstanceData is the stored configuration of one widget instance: an opaque
// string-keyed map loosely conforming to a Config. The framework never trusts
// it to be well formed and never mutates it in place; derived values are
// produced on copies.
type InstanceData map[string]any

// Clone deep-copies the instance data. Maps and slices are duplicated;
// scalar values are shared, which is safe because the framework treats them
// as immutable.
func (d InstanceData) Clone() InstanceData {
	if d == nil {
		return nil
	}
	out := make(InstanceData, len(d))
	for key, value := range d {
		out[key] = cloneValue(value)
	}
	return out
}

// Merge returns a new InstanceData combining the receiver with overrides;
// override values win on key collision. Neither input is mutated.
func (d InstanceData) Merge(overrides InstanceData) InstanceData {
	out := d.Clone()
	if out == nil {
		out = InstanceData{}
	}
	for key, value := range overrides {
		out[key] = cloneValue(value)
	}
	return out
}

// String returns the value under key when it is a string.
func (d InstanceData) String(key string) (string, bool) {
	value, ok := d[key].(string)
	return value, ok
}

// Items returns the value under key coerced to a slice of maps, the shape
// array-kind fields store. Non-map entries are preserved as nil placeholders
// so indexes stay aligned with the stored value.
func (d InstanceData) Items(key string) ([]InstanceData, bool) {
	raw, ok := d[key]
	if !ok {
		return nil, false
	}
	list, ok := sliceOf(raw)
	if !ok {
		return nil, false
	}
	out := make([]InstanceData, len(list))
	for i, entry := range list {
		switch item := entry.(type) {
		case InstanceData:
			out[i] = item
		case map[string]any:
			out[i] = InstanceData(item)
		}
	}
	return out, true
}

func sliceOf(raw any) ([]any, bool) {
	switch list := raw.(type) {
	case []any:
		return list, true
	case []InstanceData:
		out := make([]any, len(list))
		for i, entry := range list {
			out[i] = entry
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(list))
		for i, entry := range list {
			out[i] = entry
		}
		return out, true
	default:
		return nil, false
	}
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case InstanceData:
		return typed.Clone()
	case map[string]any:
		return map[string]any(InstanceData(typed).Clone())
	case map[string]string:
		out := make(map[string]string, len(typed))
		for k, v := range typed {
			out[k] = v
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, entry := range typed {
			out[i] = cloneValue(entry)
		}
		return out
	default:
		return value
	}
}

// IsEmptyValue reports whether a value counts as "missing" for required-field
// validation: nil, empty string, or empty slice.
func IsEmptyValue(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	case []any:
		return len(typed) == 0
	case []InstanceData:
		return len(typed) == 0
	case []map[string]any:
		return len(typed) == 0
	default:
		return false
	}
}
