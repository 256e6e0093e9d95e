package widget

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-pagebuilder/pkg/schema"
)

// ValidationResult carries the outcome of validating instance data. Errors
// are schema violations that block production rendering; warnings are
// advisory and never block.
type ValidationResult struct {
	Valid    bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Merge appends another result, recomputing validity.
func (r ValidationResult) Merge(other ValidationResult) ValidationResult {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Valid = len(r.Errors) == 0
	return r
}

// Validator is a composable domain check appended after the structural pass.
type Validator func(data schema.InstanceData) ValidationResult

// Validate runs the generic schema-driven structural validation: required
// top-level fields, array cardinality bounds, required sub-fields per array
// item, and advisory URL shape checks. Families and widgets extend it by
// merging their own validators on top, never replacing it.
func Validate(cfg schema.Config, data schema.InstanceData) ValidationResult {
	result := ValidationResult{Valid: true}

	for _, field := range cfg.Fields {
		value, present := data[field.Key]

		if field.Required && (!present || schema.IsEmptyValue(value)) {
			result.Errors = append(result.Errors, fmt.Sprintf("%s is required", field.Label))
			continue
		}
		if !present {
			continue
		}

		switch field.Kind {
		case schema.KindArray:
			result = validateArray(field, data, result)
		case schema.KindURL:
			result = validateURLShape(field, value, result)
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func validateArray(field schema.Field, data schema.InstanceData, result ValidationResult) ValidationResult {
	items, ok := data.Items(field.Key)
	if !ok {
		result.Errors = append(result.Errors, fmt.Sprintf("%s must be a list", field.Label))
		return result
	}

	if field.MaxItems > 0 && len(items) > field.MaxItems {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s cannot have more than %d items", field.Label, field.MaxItems))
	}

	for index, item := range items {
		for _, sub := range field.SubFields {
			if !sub.Required {
				continue
			}
			if item == nil || schema.IsEmptyValue(item[sub.Key]) {
				result.Errors = append(result.Errors,
					fmt.Sprintf("%s[%d].%s is required", field.Label, index, sub.Label))
			}
		}
	}
	return result
}

// validateURLShape flags values that are neither relative paths nor absolute
// http(s) URLs. Advisory only: stored assets often move between hosts and a
// malformed URL should not block an editor from saving.
func validateURLShape(field schema.Field, value any, result ValidationResult) ValidationResult {
	raw, ok := value.(string)
	if !ok || raw == "" {
		return result
	}
	if strings.HasPrefix(raw, "/") ||
		strings.HasPrefix(raw, "http://") ||
		strings.HasPrefix(raw, "https://") {
		return result
	}
	result.Warnings = append(result.Warnings,
		fmt.Sprintf("%s should be a valid URL or start with /", field.Label))
	return result
}
