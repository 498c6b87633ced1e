package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAttributes is returned when a validation names no attribute.
	ErrNoAttributes = errors.New("validation needs at least one attribute")

	// ErrInvalidUnit is returned when a chain is given something it cannot run.
	ErrInvalidUnit = errors.New("invalid validation unit")

	// ErrInvalid is matched by the error built from a non-empty report.
	ErrInvalid = errors.New("validation failed")
)

// UnitTypeError reports a value added to a chain that is neither a
// Validation nor a Chain, or a chain added to itself.
type UnitTypeError struct {
	Type   string
	Reason string
}

func (e *UnitTypeError) Error() string {
	return fmt.Sprintf("invalid validation unit %s: %s", e.Type, e.Reason)
}

func (e *UnitTypeError) Is(target error) bool { return target == ErrInvalidUnit }
