package keys

import "fmt"

// Position is the result of looking a key up in a domain: either the index
// at which the key was found, or the index at which it would be inserted.
type Position struct {
	idx   int
	found bool
}

// FoundAt returns a Position for a key present at idx.
func FoundAt(idx int) Position {
	return Position{idx: idx, found: true}
}

// MissingAt returns a Position for an absent key whose insertion point is ip.
func MissingAt(ip int) Position {
	return Position{idx: ip}
}

// Decode converts a signed index (as returned by Domain.Index) to a Position.
func Decode(code int) Position {
	if code >= 0 {
		return FoundAt(code)
	}
	return MissingAt(-code - 1)
}

// Found reports whether the key is in the domain.
func (p Position) Found() bool {
	return p.found
}

// Index returns the key's position, or -1 if it was not found.
func (p Position) Index() int {
	if !p.found {
		return -1
	}
	return p.idx
}

// InsertionPoint returns the position at which the key is, or would be
// inserted to keep the domain sorted.
func (p Position) InsertionPoint() int {
	return p.idx
}

// Encode returns the signed form: the index when found, else
// -(insertionPoint)-1.
func (p Position) Encode() int {
	if p.found {
		return p.idx
	}
	return -p.idx - 1
}

func (p Position) String() string {
	if p.found {
		return fmt.Sprintf("Found(%d)", p.idx)
	}
	return fmt.Sprintf("Missing(%d)", p.idx)
}
