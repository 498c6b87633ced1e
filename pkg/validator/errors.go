package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrArity is returned when a validator receives the wrong number of values.
	ErrArity = errors.New("wrong number of values for validator")

	// ErrUnknownValidator is returned when a name is not registered.
	ErrUnknownValidator = errors.New("unknown validator")

	// ErrDuplicateValidator is returned when registering a name twice.
	ErrDuplicateValidator = errors.New("validator already registered")

	// ErrInvalidParams is returned by Prepare for missing or malformed parameters.
	ErrInvalidParams = errors.New("invalid validator parameters")
)

// ArityError reports a validator called with the wrong number of values.
type ArityError struct {
	Validator string
	Want      int
	Got       int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("validator %q expects %d value(s), got %d", e.Validator, e.Want, e.Got)
}

func (e *ArityError) Is(target error) bool { return target == ErrArity }

// UnknownValidatorError names a validator missing from the registry.
type UnknownValidatorError struct {
	Name string
}

func (e *UnknownValidatorError) Error() string {
	return fmt.Sprintf("unknown validator: %q", e.Name)
}

func (e *UnknownValidatorError) Is(target error) bool { return target == ErrUnknownValidator }

func invalidParams(validator, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidParams, validator, fmt.Sprintf(format, args...))
}
