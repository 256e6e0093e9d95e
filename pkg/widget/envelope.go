package widget

import (
	"strings"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-pagebuilder/pkg/schema"
)

// Envelope is the stable storage/transport shape for widget instance data.
type Envelope struct {
	WidgetType string              `json:"widgetType"`
	Version    string              `json:"version"`
	Data       schema.InstanceData `json:"data"`
}

// DataTransformer is implemented by descriptors that derive a serialized form
// of their instance data (stripping runtime-only keys, normalising shapes).
type DataTransformer interface {
	TransformData(data schema.InstanceData) schema.InstanceData
}

// Serialize emits the storage envelope for a descriptor's instance data,
// applying the descriptor's transform step when it declares one. The input
// data is never mutated.
func Serialize(d Descriptor, data schema.InstanceData) (string, error) {
	meta := d.Metadata()
	payload := data.Clone()
	if transformer, ok := d.(DataTransformer); ok {
		payload = transformer.TransformData(data)
	}

	envelope := Envelope{
		WidgetType: meta.ID,
		Version:    meta.Version,
		Data:       payload,
	}
	raw, err := json.Marshal(envelope)
	if err != nil {
		return "", &ParseError{Reason: "encode envelope", Err: err}
	}
	return string(raw), nil
}

// Deserialize is the exact inverse of Serialize. Malformed input yields a
// typed *ParseError rather than a decoding panic or an untyped error.
func Deserialize(text string) (Envelope, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Envelope{}, &ParseError{Reason: "empty payload"}
	}

	var envelope Envelope
	if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil {
		return Envelope{}, &ParseError{Reason: "malformed JSON", Err: err}
	}
	if envelope.WidgetType == "" {
		return Envelope{}, &ParseError{Reason: "missing widgetType"}
	}
	return envelope, nil
}
