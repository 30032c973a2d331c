package codec

import "errors"

// Row and header failures. All of them are reported wrapped together with
// models.ErrFormat.
var (
	ErrInvalidID        = errors.New("invalid id")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrInvalidCompleted = errors.New("invalid completed flag")
	ErrUnknownColumn    = errors.New("unknown column")
	ErrDuplicateColumn  = errors.New("duplicate column")
	ErrMissingColumn    = errors.New("missing column")
)
