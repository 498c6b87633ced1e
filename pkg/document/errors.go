package document

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAttribute is returned when a validation names an attribute
	// the model does not define.
	ErrUnknownAttribute = errors.New("unknown attribute")
)

func unknownAttribute(model, name string) error {
	return fmt.Errorf("%w: %s.%s", ErrUnknownAttribute, model, name)
}
