// Package eval measures prediction accuracy of rating scorers.
//
// The metric functions compare a prediction vector with a truth vector over
// their common keys. An Evaluator applies them to every user of a test set,
// scoring users concurrently.
package eval

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	lenskit "github.com/lenskit/lenskit-sub015"
	"github.com/lenskit/lenskit-sub015/keys"
	"github.com/lenskit/lenskit-sub015/vectors"
)

// Scorer predicts ratings of user for the keys of items.
// Implementations must be safe for concurrent use.
type Scorer interface {
	Name() string
	Score(user int64, items *keys.Domain) *vectors.Mutable
}

// UserResult holds the accuracy of the predictions for one test user.
type UserResult struct {
	User      int64
	Truth     int
	Predicted int
	RMSE      float64
	MAE       float64
	Coverage  float64
}

// Skipped reports whether no test rating of the user could be predicted.
func (r UserResult) Skipped() bool {
	return r.Predicted == 0
}

// Report summarizes an evaluation run. Aggregates are means over the users
// that are not skipped, and NaN when every user was skipped.
type Report struct {
	Scorer   string
	Users    []UserResult
	Skipped  int
	RMSE     float64
	MAE      float64
	Coverage float64
	Duration time.Duration
}

// Evaluator runs a scorer against held-out ratings.
type Evaluator struct {
	scorer Scorer
	opts   options
}

// NewEvaluator creates an evaluator for scorer.
func NewEvaluator(scorer Scorer, optFns ...Option) (*Evaluator, error) {
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}
	return &Evaluator{scorer: scorer, opts: o}, nil
}

// Evaluate scores every user of test for the items they rated and compares
// the predictions with their test ratings. Users are reported in ascending
// ID order.
func (e *Evaluator) Evaluate(ctx context.Context, test *lenskit.RatingIndex) (*Report, error) {
	start := time.Now()
	report, err := e.evaluate(ctx, test)
	duration := time.Since(start)

	var users, skipped int
	var rmse, mae float64
	if report != nil {
		report.Duration = duration
		users, skipped = len(report.Users), report.Skipped
		rmse, mae = report.RMSE, report.MAE
	}
	e.opts.logger.WithScorer(e.scorer.Name()).LogEvaluation(ctx, users, skipped, rmse, mae, err)
	e.opts.metricsCollector.RecordEvaluation(users, skipped, duration, err)

	if err != nil {
		return nil, err
	}
	return report, nil
}

// EvaluateUser scores a single user of test. It returns ErrUnknownUser when
// test holds no ratings for user.
func (e *Evaluator) EvaluateUser(ctx context.Context, test *lenskit.RatingIndex, user int64) (UserResult, error) {
	if test == nil {
		return UserResult{}, lenskit.ErrNoRatings
	}
	if !test.HasUser(user) {
		return UserResult{}, fmt.Errorf("%w: %d", lenskit.ErrUnknownUser, user)
	}
	if err := ctx.Err(); err != nil {
		return UserResult{}, err
	}
	return e.evaluateUser(ctx, user, test.UserVector(user)), nil
}

func (e *Evaluator) evaluate(ctx context.Context, test *lenskit.RatingIndex) (*Report, error) {
	if test == nil {
		return nil, lenskit.ErrNoRatings
	}

	users := test.Users().Keys()
	results := make([]UserResult, len(users))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.workers)
	for i, user := range users {
		g.Go(func() error {
			r, err := e.EvaluateUser(gctx, test, user)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Scorer: e.scorer.Name(), Users: results}
	var rmse, mae, cov []float64
	for _, r := range results {
		if r.Skipped() {
			report.Skipped++
			continue
		}
		rmse = append(rmse, r.RMSE)
		mae = append(mae, r.MAE)
		cov = append(cov, r.Coverage)
	}
	report.RMSE = mean(rmse)
	report.MAE = mean(mae)
	report.Coverage = mean(cov)
	return report, nil
}

func (e *Evaluator) evaluateUser(ctx context.Context, user int64, truth vectors.SparseVector) UserResult {
	pred := e.scorer.Score(user, truth.Domain())
	r := UserResult{
		User:      user,
		Truth:     truth.Size(),
		Predicted: pred.CountCommonKeys(truth),
		RMSE:      RMSE(pred, truth),
		MAE:       MAE(pred, truth),
		Coverage:  Coverage(pred, truth),
	}
	e.opts.logger.LogUserEvaluated(ctx, user, r.Predicted, r.Truth)
	return r
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}
