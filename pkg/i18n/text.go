// Package i18n models localized text values inside widget instance data. A
// localizable field holds a single Text map keyed by BCP-47 tags instead of
// parallel suffixed field pairs, so adding a locale is additive. Project
// resolves one locale out of a stored value, accepting both the map form and
// the legacy suffixed pairs still present in older stored sections.
package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/goliatone/go-pagebuilder/pkg/schema"
)

// DefaultLocale is the fallback when a requested locale has no entry.
const DefaultLocale = "en"

// Text maps BCP-47 locale tags to translated strings.
type Text map[string]string

// TextFromValue interprets an instance-data value as localized text. Plain
// strings are treated as a single default-locale entry.
func TextFromValue(value any) (Text, bool) {
	switch typed := value.(type) {
	case Text:
		return typed, true
	case map[string]string:
		return Text(typed), true
	case map[string]any:
		out := make(Text, len(typed))
		for locale, entry := range typed {
			if s, ok := entry.(string); ok {
				out[locale] = s
			}
		}
		if len(out) == 0 {
			return nil, false
		}
		return out, true
	case string:
		if typed == "" {
			return nil, false
		}
		return Text{DefaultLocale: typed}, true
	default:
		return nil, false
	}
}

// Resolve picks the best entry for the requested locale using BCP-47
// matching, falling back to the default locale and then to any entry.
func (t Text) Resolve(locale string) string {
	if len(t) == 0 {
		return ""
	}
	if locale == "" {
		locale = DefaultLocale
	}
	if value, ok := t[locale]; ok && value != "" {
		return value
	}

	tags := make([]language.Tag, 0, len(t))
	keys := make([]string, 0, len(t))
	for key := range t {
		tag, err := language.Parse(key)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		keys = append(keys, key)
	}
	if len(tags) > 0 {
		matcher := language.NewMatcher(tags)
		if desired, err := language.Parse(locale); err == nil {
			if _, index, confidence := matcher.Match(desired); confidence > language.No {
				if value := t[keys[index]]; value != "" {
					return value
				}
			}
		}
	}

	if value, ok := t[DefaultLocale]; ok && value != "" {
		return value
	}
	for _, value := range t {
		if value != "" {
			return value
		}
	}
	return ""
}

// Project resolves the localized string stored under key in data. It accepts
// the map form first, then the legacy suffixed pair convention (titleEn,
// titleTh, ...), then a plain string stored under the bare key.
func Project(data schema.InstanceData, key, locale string) string {
	if text, ok := TextFromValue(data[key]); ok {
		if value := text.Resolve(locale); value != "" {
			return value
		}
	}

	if value := suffixedValue(data, key, locale); value != "" {
		return value
	}
	if value := suffixedValue(data, key, DefaultLocale); value != "" {
		return value
	}
	if value, ok := data.String(key); ok {
		return value
	}
	return ""
}

// suffixedValue handles the legacy field-pair layout where every localizable
// string is duplicated per locale with a capitalized suffix.
func suffixedValue(data schema.InstanceData, key, locale string) string {
	if locale == "" {
		return ""
	}
	base, _, _ := strings.Cut(locale, "-")
	if base == "" {
		return ""
	}
	suffix := strings.ToUpper(base[:1]) + strings.ToLower(base[1:])
	value, _ := data.String(key + suffix)
	return value
}
