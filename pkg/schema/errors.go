package schema

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrDuplicateAlias = errors.New("duplicate alias")
	ErrEmptyName      = errors.New("key name is empty")
	ErrInvalidDefault = errors.New("default function must take no arguments and return one value")
)

// DuplicateKeyError names a key whose name is already used as a name or an
// alias.
type DuplicateKeyError struct {
	Name string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: %q is already defined", e.Name)
}

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }

// DuplicateAliasError names an alias already used as a name or an alias.
type DuplicateAliasError struct {
	Alias string
}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("duplicate alias: %q is already defined", e.Alias)
}

func (e *DuplicateAliasError) Is(target error) bool { return target == ErrDuplicateAlias }
