package jsonstore

import "errors"

var (
	// ErrWrite is returned by mutations whose result could not be persisted.
	// The in-memory document keeps the mutation.
	ErrWrite = errors.New("config write failed")

	// ErrUnsupportedValue is returned by SetValue for values that cannot be
	// encoded as JSON. The document is left unchanged.
	ErrUnsupportedValue = errors.New("value cannot be encoded as JSON")

	// ErrInvalidJSON reports content that is not well-formed JSON.
	ErrInvalidJSON = errors.New("not valid JSON")

	// ErrNotObject reports well-formed JSON whose top level is not an object.
	ErrNotObject = errors.New("top level is not a JSON object")

	// ErrUnrepresentable reports a well-formed JSON object holding a value
	// that cannot be decoded, such as a number beyond the float64 range.
	ErrUnrepresentable = errors.New("JSON value cannot be represented")

	// ErrLegacyFormat reports content that is neither current-format JSON
	// nor a recognisable legacy settings file.
	ErrLegacyFormat = errors.New("unrecognised legacy config format")
)
