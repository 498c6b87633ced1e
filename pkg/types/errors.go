package types

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is returned when a kind is not present in the registry.
	ErrUnknownType = errors.New("unknown value type")

	// ErrDuplicateType is returned when registering a kind twice.
	ErrDuplicateType = errors.New("value type already registered")

	// ErrAbstractType is returned when registering a type without a constructor.
	ErrAbstractType = errors.New("value type is abstract")

	// ErrInvalidArgument is returned by Increment for amounts that cannot be
	// converted to the value's numeric kind.
	ErrInvalidArgument = errors.New("invalid argument")
)

// UnknownTypeError names the kind that could not be resolved.
type UnknownTypeError struct {
	Kind Kind
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown value type: %q", string(e.Kind))
}

func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

func invalidAmount(kind Kind, amount any) error {
	return fmt.Errorf("%w: cannot increment %s by %v (%T)", ErrInvalidArgument, kind, amount, amount)
}
