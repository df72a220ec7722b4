package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrPositionOverflow is returned when a position does not fit a bit index.
var ErrPositionOverflow = errors.New("position overflow")

// MaxPositions is the largest number of positions a mask can address.
const MaxPositions = math.MaxUint32 + 1

// BitIndex converts a domain position to a mask bit index.
func BitIndex(pos int) (uint32, error) {
	if pos < 0 {
		return 0, fmt.Errorf("%w: %d cannot be a bit index (negative)", ErrPositionOverflow, pos)
	}
	if uint64(pos) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d cannot be a bit index (too large)", ErrPositionOverflow, pos)
	}
	return uint32(pos), nil
}

// MustBitIndex is like BitIndex but panics on overflow.
func MustBitIndex(pos int) uint32 {
	b, err := BitIndex(pos)
	if err != nil {
		panic(err)
	}
	return b
}

// Position converts a mask bit index back to a domain position.
func Position(bit uint32) int {
	return int(uint64(bit))
}

// CheckDomainSize reports whether n positions fit a mask.
func CheckDomainSize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative domain size %d", ErrPositionOverflow, n)
	}
	if uint64(n) > MaxPositions {
		return fmt.Errorf("%w: domain size %d exceeds %d", ErrPositionOverflow, n, uint64(MaxPositions))
	}
	return nil
}
