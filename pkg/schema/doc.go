// Package schema defines the recursive field-schema model that drives both
// runtime validation and externally generated editing forms. A Config is the
// full configuration contract one widget descriptor exposes: a flat list of
// Fields, each of which may nest sub-fields when its kind is array or group.
// InstanceData is the untrusted, string-keyed instance payload stored against
// a placed widget; the framework always revalidates it before rendering and
// never mutates it in place.
package schema
