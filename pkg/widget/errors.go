package widget

import "fmt"

// NotFoundError marks an unknown widget type. The factory never lets it
// cross the public render boundary; hosts see a nil unit instead and render
// their own "widget not found" placeholder.
type NotFoundError struct {
	WidgetType string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("widget: type %q is not registered", e.WidgetType)
}

// RenderError wraps a failure inside a descriptor's pipeline: a thrown panic,
// an error return, or a nil unit. The factory converts it to a skeleton
// fallback and never propagates it.
type RenderError struct {
	WidgetType string
	Mode       Mode
	Err        error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("widget: render %s pipeline for %q: %v", e.Mode, e.WidgetType, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// IntegrityError reports catalog inconsistencies: duplicate registrations or
// a descriptor filed under a category index that disagrees with its own
// metadata. Logged as warnings; registration still proceeds last-write-wins.
type IntegrityError struct {
	WidgetType string
	Reason     string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("widget: catalog integrity for %q: %s", e.WidgetType, e.Reason)
}

// ParseError is the typed failure Deserialize returns on malformed envelopes.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("widget: parse envelope: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("widget: parse envelope: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
