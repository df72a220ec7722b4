package lenskit

import (
	"context"
	"math"

	"github.com/lenskit/lenskit-sub015/keys"
	"github.com/lenskit/lenskit-sub015/vectors"
)

// Rating is one explicit user-item preference.
type Rating struct {
	User  int64
	Item  int64
	Value float64
}

// RatingIndex holds ratings grouped by user and by item.
//
// All vectors it returns are immutable and all domains unowned, so a
// RatingIndex is safe for concurrent reads.
type RatingIndex struct {
	users  *keys.Domain
	items  *keys.Domain
	byUser map[int64]*vectors.Immutable
	byItem map[int64]*vectors.Immutable
	n      int
	sum    float64
}

// NewRatingIndex builds an index from ratings. When a user rated the same
// item more than once, the last rating wins.
func NewRatingIndex(ratings []Rating, optFns ...Option) (*RatingIndex, error) {
	o := applyOptions(optFns)
	if len(ratings) == 0 {
		return nil, ErrNoRatings
	}

	userRatings := make(map[int64]map[int64]float64)
	for _, r := range ratings {
		if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
			return nil, &ErrRatingOutOfRange{User: r.User, Item: r.Item, Value: r.Value}
		}
		m := userRatings[r.User]
		if m == nil {
			m = make(map[int64]float64)
			userRatings[r.User] = m
		}
		m[r.Item] = r.Value
	}

	itemRatings := make(map[int64]map[int64]float64)
	idx := &RatingIndex{
		byUser: make(map[int64]*vectors.Immutable, len(userRatings)),
	}
	userIDs := make([]int64, 0, len(userRatings))
	for u, m := range userRatings {
		userIDs = append(userIDs, u)
		idx.byUser[u] = vectors.FromMap(m).Freeze()
		for i, v := range m {
			im := itemRatings[i]
			if im == nil {
				im = make(map[int64]float64)
				itemRatings[i] = im
			}
			im[u] = v
			idx.n++
			idx.sum += v
		}
	}

	itemIDs := make([]int64, 0, len(itemRatings))
	idx.byItem = make(map[int64]*vectors.Immutable, len(itemRatings))
	for i, m := range itemRatings {
		itemIDs = append(itemIDs, i)
		idx.byItem[i] = vectors.FromMap(m).Freeze()
	}

	idx.users = keys.Create(userIDs...).Unowned()
	idx.items = keys.Create(itemIDs...).Unowned()
	o.logger.LogIndexBuilt(context.Background(), idx.n, len(userIDs), len(itemIDs))
	return idx, nil
}

// Users returns the domain of user IDs.
func (x *RatingIndex) Users() *keys.Domain {
	return x.users
}

// Items returns the domain of item IDs.
func (x *RatingIndex) Items() *keys.Domain {
	return x.items
}

// Len returns the number of distinct (user, item) ratings.
func (x *RatingIndex) Len() int {
	return x.n
}

// GlobalMean returns the mean of all ratings.
func (x *RatingIndex) GlobalMean() float64 {
	return x.sum / float64(x.n)
}

// UserVector returns the ratings of user keyed by item, or an empty vector
// for an unknown user.
func (x *RatingIndex) UserVector(user int64) *vectors.Immutable {
	if v, ok := x.byUser[user]; ok {
		return v
	}
	return vectors.Empty()
}

// ItemVector returns the ratings of item keyed by user, or an empty vector
// for an unknown item.
func (x *RatingIndex) ItemVector(item int64) *vectors.Immutable {
	if v, ok := x.byItem[item]; ok {
		return v
	}
	return vectors.Empty()
}

// HasUser reports whether user has at least one rating.
func (x *RatingIndex) HasUser(user int64) bool {
	_, ok := x.byUser[user]
	return ok
}
