package settings

import "errors"

var (
	// ErrUnknownField is returned when a name is not declared in the field table.
	ErrUnknownField = errors.New("unknown setting")
	// ErrKindMismatch is returned when a value cannot be represented as the field's kind.
	ErrKindMismatch = errors.New("setting kind mismatch")
)
