package lenskit

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRatings is returned when an operation needs at least one rating.
	ErrNoRatings = errors.New("no ratings")

	// ErrUnknownUser is returned when a user has no ratings in an index.
	ErrUnknownUser = errors.New("unknown user")

	// ErrInvalidWorkers is returned for a non-positive worker count.
	ErrInvalidWorkers = errors.New("workers must be positive")
)

// ErrRatingOutOfRange indicates a rating value that is not a finite number.
type ErrRatingOutOfRange struct {
	User  int64
	Item  int64
	Value float64
}

func (e *ErrRatingOutOfRange) Error() string {
	return fmt.Sprintf("rating out of range: user %d, item %d, value %v", e.User, e.Item, e.Value)
}
