package attributes

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAttribute = errors.New("unknown attribute")
	ErrNotCollection    = errors.New("attribute is not a collection")
	ErrNotNumeric       = errors.New("attribute is not numeric")
)

func unknownAttribute(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
}
