package similarity

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	lenskit "github.com/lenskit/lenskit-sub015"
	"github.com/lenskit/lenskit-sub015/keys"
	"github.com/lenskit/lenskit-sub015/vectors"
)

type itemPair struct {
	lo, hi int64
}

func orderedPair(i, j int64) itemPair {
	if i > j {
		i, j = j, i
	}
	return itemPair{lo: i, hi: j}
}

// ItemSimilarity computes similarities between the rating vectors of items
// and memoizes the most recently used pairs. It is safe for concurrent use.
type ItemSimilarity struct {
	idx   *lenskit.RatingIndex
	fn    Func
	cache *lru.Cache[itemPair, float64]
}

// NewItemSimilarity creates an ItemSimilarity over idx remembering up to
// cacheSize pairs. fn must be symmetric; nil selects Cosine.
func NewItemSimilarity(idx *lenskit.RatingIndex, fn Func, cacheSize int) (*ItemSimilarity, error) {
	if idx == nil {
		return nil, lenskit.ErrNoRatings
	}
	if fn == nil {
		fn = Cosine
	}
	cache, err := lru.New[itemPair, float64](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("similarity cache: %w", err)
	}
	return &ItemSimilarity{idx: idx, fn: fn, cache: cache}, nil
}

// Between returns the similarity of items i and j. Unknown items have
// empty rating vectors and thus similarity 0.
func (s *ItemSimilarity) Between(i, j int64) float64 {
	p := orderedPair(i, j)
	if v, ok := s.cache.Get(p); ok {
		return v
	}
	v := s.fn(s.idx.ItemVector(p.lo), s.idx.ItemVector(p.hi))
	s.cache.Add(p, v)
	return v
}

// Neighbors returns the k candidates most similar to item, as a vector
// over an inactive copy of candidates holding their similarities. The item
// itself and candidates with non-positive similarity are left out.
func (s *ItemSimilarity) Neighbors(item int64, candidates *keys.Domain, k int) *vectors.Mutable {
	out := vectors.New(candidates)
	for c := range candidates.ActiveSet().All() {
		if c == item {
			continue
		}
		if sim := s.Between(item, c); sim > 0 {
			out.Set(c, sim)
		}
	}
	if k >= 0 && out.Size() > k {
		for _, c := range out.KeysByValue(true)[k:] {
			out.Unset(c)
		}
	}
	return out
}

// CacheLen returns the number of memoized pairs.
func (s *ItemSimilarity) CacheLen() int {
	return s.cache.Len()
}
