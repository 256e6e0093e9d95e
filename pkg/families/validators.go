package families

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-pagebuilder/pkg/schema"
	"github.com/goliatone/go-pagebuilder/pkg/widget"
)

// ItemBounds builds a validator enforcing item-list cardinality with
// editor-facing messages ("At least one grid item is required", "Maximum 12
// grid items allowed"). The noun names a single item as shown to editors.
func ItemBounds(key, noun string, min, max int) widget.Validator {
	return func(data schema.InstanceData) widget.ValidationResult {
		result := widget.ValidationResult{Valid: true}
		items, _ := data.Items(key)

		if min > 0 && len(items) < min {
			if min == 1 {
				result.Errors = append(result.Errors, fmt.Sprintf("At least one %s is required", noun))
			} else {
				result.Errors = append(result.Errors, fmt.Sprintf("At least %d %ss are required", min, noun))
			}
		}
		if max > 0 && len(items) > max {
			result.Errors = append(result.Errors, fmt.Sprintf("Maximum %d %ss allowed", max, noun))
		}

		result.Valid = len(result.Errors) == 0
		return result
	}
}

// EachItemRequires builds a validator that checks every item in a list for
// the given sub-keys, reporting editor-facing messages per missing value.
// It complements the schema-driven sub-field pass for families whose item
// requirements are fixed by convention rather than per-widget schema.
func EachItemRequires(key, noun string, required map[string]string) widget.Validator {
	return func(data schema.InstanceData) widget.ValidationResult {
		result := widget.ValidationResult{Valid: true}
		items, ok := data.Items(key)
		if !ok {
			return result
		}
		keys := make([]string, 0, len(required))
		for subKey := range required {
			keys = append(keys, subKey)
		}
		sort.Strings(keys)
		for index, item := range items {
			for _, subKey := range keys {
				if item == nil || schema.IsEmptyValue(item[subKey]) {
					result.Errors = append(result.Errors,
						fmt.Sprintf("%s %d is missing %s", noun, index+1, required[subKey]))
				}
			}
		}
		result.Valid = len(result.Errors) == 0
		return result
	}
}
