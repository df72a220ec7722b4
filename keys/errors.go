package keys

import "errors"

var (
	// ErrUnownedDomain is the panic value (wrapped) when an unowned domain is mutated.
	ErrUnownedDomain = errors.New("domain is not owned")

	// ErrIndexOutOfRange is the panic value (wrapped) for positions outside the domain.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrKeyNotInDomain is the panic value (wrapped) when a key outside the domain is written.
	ErrKeyNotInDomain = errors.New("key not in domain")

	// ErrDomainMismatch is the panic value (wrapped) when a position-aligned
	// operation is given domains that do not share keys.
	ErrDomainMismatch = errors.New("domains do not share keys")
)
