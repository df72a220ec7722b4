// Package baseline implements mean-based rating predictors.
//
// Scorers are trained once from a lenskit.RatingIndex and are then safe for
// concurrent use: all learned state is held in immutable vectors.
package baseline

import (
	"context"
	"errors"
	"fmt"
	"time"

	lenskit "github.com/lenskit/lenskit-sub015"
	"github.com/lenskit/lenskit-sub015/keys"
	"github.com/lenskit/lenskit-sub015/vectors"
)

// ErrInvalidDamping is returned for a negative damping term.
var ErrInvalidDamping = errors.New("damping must not be negative")

// Scorer predicts ratings.
type Scorer interface {
	// Name identifies the scorer in logs and metrics.
	Name() string

	// Score predicts ratings of user for the keys of items. The result is
	// a vector over an inactive copy of items in which every scorable key
	// is set. The receiver keeps no reference to the result.
	Score(user int64, items *keys.Domain) *vectors.Mutable
}

var (
	_ Scorer = (*GlobalMean)(nil)
	_ Scorer = (*ItemMean)(nil)
	_ Scorer = (*UserItemMean)(nil)
)

// GlobalMean predicts the mean of all training ratings for every item.
type GlobalMean struct {
	mean    float64
	metrics lenskit.MetricsCollector
}

// NewGlobalMean trains a GlobalMean scorer.
func NewGlobalMean(ctx context.Context, idx *lenskit.RatingIndex, optFns ...Option) (*GlobalMean, error) {
	o := applyOptions(optFns)
	start := time.Now()
	s, err := trainGlobalMean(idx)
	finish(ctx, o, "global-mean", idx, start, err)
	if err != nil {
		return nil, err
	}
	s.metrics = o.metricsCollector
	return s, nil
}

func trainGlobalMean(idx *lenskit.RatingIndex) (*GlobalMean, error) {
	if idx == nil {
		return nil, lenskit.ErrNoRatings
	}
	return &GlobalMean{mean: idx.GlobalMean()}, nil
}

// Name implements Scorer.
func (s *GlobalMean) Name() string { return "global-mean" }

// Mean returns the learned global mean.
func (s *GlobalMean) Mean() float64 { return s.mean }

// Score implements Scorer.
func (s *GlobalMean) Score(_ int64, items *keys.Domain) *vectors.Mutable {
	start := time.Now()
	d := items.InactiveCopy()
	d.SetAllActive(true)
	out := vectors.WrapDomain(d, make([]float64, d.DomainSize()))
	out.Fill(s.mean)
	s.metrics.RecordScore(out.Size(), time.Since(start))
	return out
}

// ItemMean predicts the global mean plus a damped per-item offset. Items
// without training ratings are not scored.
type ItemMean struct {
	mean    float64
	offsets *vectors.Immutable
	metrics lenskit.MetricsCollector
}

// NewItemMean trains an ItemMean scorer.
func NewItemMean(ctx context.Context, idx *lenskit.RatingIndex, optFns ...Option) (*ItemMean, error) {
	o := applyOptions(optFns)
	start := time.Now()
	s, err := trainItemMean(ctx, idx, o.damping)
	finish(ctx, o, "item-mean", idx, start, err)
	if err != nil {
		return nil, err
	}
	s.metrics = o.metricsCollector
	return s, nil
}

func trainItemMean(ctx context.Context, idx *lenskit.RatingIndex, damping float64) (*ItemMean, error) {
	g, err := trainGlobalMean(idx)
	if err != nil {
		return nil, err
	}
	if damping < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDamping, damping)
	}

	items := idx.Items()
	offsets := vectors.New(items)
	for _, item := range items.Keys() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r := idx.ItemVector(item)
		n := float64(r.Size())
		offsets.Set(item, (r.Sum()-n*g.mean)/(n+damping))
	}
	return &ItemMean{mean: g.mean, offsets: offsets.Freeze()}, nil
}

// Name implements Scorer.
func (s *ItemMean) Name() string { return "item-mean" }

// Offsets returns the learned item offsets keyed by item.
func (s *ItemMean) Offsets() *vectors.Immutable { return s.offsets }

// Score implements Scorer.
func (s *ItemMean) Score(_ int64, items *keys.Domain) *vectors.Mutable {
	start := time.Now()
	out := s.offsets.WithDomain(items)
	out.AddScalar(s.mean)
	s.metrics.RecordScore(out.Size(), time.Since(start))
	return out
}

// UserItemMean extends ItemMean with a damped per-user offset computed
// from the residuals of the item model. Unknown users get a zero offset.
type UserItemMean struct {
	items   *ItemMean
	offsets *vectors.Immutable
	metrics lenskit.MetricsCollector
}

// NewUserItemMean trains a UserItemMean scorer.
func NewUserItemMean(ctx context.Context, idx *lenskit.RatingIndex, optFns ...Option) (*UserItemMean, error) {
	o := applyOptions(optFns)
	start := time.Now()
	s, err := trainUserItemMean(ctx, idx, o.damping)
	finish(ctx, o, "user-item-mean", idx, start, err)
	if err != nil {
		return nil, err
	}
	s.metrics = o.metricsCollector
	return s, nil
}

func trainUserItemMean(ctx context.Context, idx *lenskit.RatingIndex, damping float64) (*UserItemMean, error) {
	im, err := trainItemMean(ctx, idx, damping)
	if err != nil {
		return nil, err
	}

	users := idx.Users()
	offsets := vectors.New(users)
	for _, user := range users.Keys() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r := idx.UserVector(user).MutableCopy()
		r.Subtract(im.offsets)
		n := float64(r.Size())
		offsets.Set(user, (r.Sum()-n*im.mean)/(n+damping))
	}
	return &UserItemMean{items: im, offsets: offsets.Freeze()}, nil
}

// Name implements Scorer.
func (s *UserItemMean) Name() string { return "user-item-mean" }

// UserOffsets returns the learned user offsets keyed by user.
func (s *UserItemMean) UserOffsets() *vectors.Immutable { return s.offsets }

// Score implements Scorer.
func (s *UserItemMean) Score(user int64, items *keys.Domain) *vectors.Mutable {
	start := time.Now()
	out := s.items.offsets.WithDomain(items)
	out.AddScalar(s.items.mean + s.offsets.GetOr(user, 0))
	s.metrics.RecordScore(out.Size(), time.Since(start))
	return out
}

func finish(ctx context.Context, o options, name string, idx *lenskit.RatingIndex, start time.Time, err error) {
	var users, items int
	if idx != nil {
		users, items = idx.Users().Size(), idx.Items().Size()
	}
	o.logger.LogTrain(ctx, name, users, items, err)
	o.metricsCollector.RecordTrain(name, time.Since(start), err)
}
