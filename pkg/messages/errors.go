package messages

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported messages file format")
	ErrFailedToParse     = errors.New("failed to parse messages")
	ErrFailedToRead      = errors.New("failed to read messages")
	ErrInvalidStructure  = errors.New("invalid messages structure")
	ErrLoadingCancelled  = errors.New("loading messages cancelled")
)
