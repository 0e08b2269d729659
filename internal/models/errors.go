package models

import "fmt"

// ValidationError reports a Post that is structurally well formed JSON but breaks
// one of the model's rules.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid post: " + e.Reason
	}
	return fmt.Sprintf("invalid post: %s: %s", e.Field, e.Reason)
}

// UnknownVariantError is returned when a content block's type tag names no known
// variant.
type UnknownVariantError struct {
	Type string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown content block type %q", e.Type)
}

// MissingFieldError is returned when a required key is absent from the JSON.
// Variant is empty for top-level Post fields.
type MissingFieldError struct {
	Variant string
	Field   string
}

func (e *MissingFieldError) Error() string {
	if e.Variant == "" {
		return fmt.Sprintf("missing required field %q", e.Field)
	}
	return fmt.Sprintf("%s block: missing required field %q", e.Variant, e.Field)
}

// DecodeError wraps malformed JSON and unknown enum strings.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decode post: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
