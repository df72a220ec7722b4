package vectors

import "errors"

// ErrFrozen is the panic value (wrapped) when a frozen mutable vector is written.
var ErrFrozen = errors.New("vector is frozen")

// ErrLengthMismatch is the panic value (wrapped) when keys and values differ in length.
var ErrLengthMismatch = errors.New("keys and values differ in length")
