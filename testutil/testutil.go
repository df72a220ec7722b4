package testutil

import (
	"math"
	"math/rand"
	"sync"

	lenskit "github.com/lenskit/lenskit-sub015"
	"github.com/lenskit/lenskit-sub015/keys"
	"github.com/lenskit/lenskit-sub015/vectors"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Keys returns n strictly increasing keys with random gaps in [1, maxGap].
func (r *RNG) Keys(n, maxGap int) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	ks := make([]int64, n)
	var k int64
	for i := range ks {
		k += int64(1 + r.rand.Intn(maxGap))
		ks[i] = k
	}
	return ks
}

// SparseVector builds a vector over keys 0..domainSize-1 where each key is
// active with probability density. Values are standard normal.
func (r *RNG) SparseVector(domainSize int, density float64) *vectors.Mutable {
	r.mu.Lock()
	defer r.mu.Unlock()

	ks := make([]int64, domainSize)
	vs := make([]float64, domainSize)
	for i := range ks {
		ks[i] = int64(i)
		vs[i] = r.rand.NormFloat64()
	}
	d := keys.Wrap(ks, domainSize, false)
	for i := range domainSize {
		if r.rand.Float64() < density {
			d.SetActive(i, true)
		}
	}
	return vectors.WrapDomain(d, vs)
}

// Siblings builds n vectors sharing one key array, as produced by
// vectors.New over a common domain.
func (r *RNG) Siblings(n, domainSize int, density float64) []*vectors.Mutable {
	ks := make([]int64, domainSize)
	for i := range ks {
		ks[i] = int64(i * 2)
	}
	d := keys.Wrap(ks, domainSize, false)

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*vectors.Mutable, n)
	for i := range out {
		v := vectors.New(d)
		for _, k := range ks {
			if r.rand.Float64() < density {
				v.Set(k, r.rand.NormFloat64())
			}
		}
		out[i] = v
	}
	return out
}

// Zipf returns a Zipfian-distributed value in [0, n).
// s=1.0 gives standard Zipf, larger s gives a heavier head.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}

	return n - 1
}

// Ratings generates about users*items*density ratings on a 1-5 half-star
// scale. Item popularity follows a Zipf law with exponent s. Every user
// receives at least one rating.
func (r *RNG) Ratings(users, items int, density, s float64) []lenskit.Rating {
	r.mu.Lock()
	defer r.mu.Unlock()

	perUser := max(1, int(float64(items)*density))
	out := make([]lenskit.Rating, 0, users*perUser)
	for u := range users {
		for range perUser {
			out = append(out, lenskit.Rating{
				User:  int64(u + 1),
				Item:  int64(r.zipfLocked(items, s) + 1),
				Value: 1 + float64(r.rand.Intn(9))/2,
			})
		}
	}
	return out
}
