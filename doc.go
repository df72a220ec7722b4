// Package lenskit provides building blocks for recommender-system algorithms
// over sparse, identifier-keyed data.
//
// The kernel lives in two packages:
//
//   - keys: sorted key domains with per-key activation and an ownership flag
//   - vectors: sparse vectors over key domains, with overlap-restricted
//     arithmetic, aggregate statistics and allocation-free iteration
//
// This package adds the rating data that algorithms consume and the ambient
// pieces they share (logging, metrics, errors). Algorithms and evaluation
// live in subpackages:
//
//   - similarity: cosine, Pearson and MSD similarity between sparse vectors
//   - baseline: mean-based rating predictors
//   - eval: prediction-accuracy metrics and a concurrent evaluator
//
// # Quick Start
//
//	idx, err := lenskit.NewRatingIndex([]lenskit.Rating{
//	    {User: 1, Item: 10, Value: 4},
//	    {User: 1, Item: 20, Value: 3},
//	    {User: 2, Item: 10, Value: 5},
//	})
//	if err != nil {
//	    return err
//	}
//
//	ratings := idx.UserVector(1) // {10: 4, 20: 3}
//	fmt.Println(ratings.Mean())  // 3.5
//
// # Absent Values
//
// Vectors report absent entries as NaN rather than as errors. NaN propagates
// through sums and means, so "no prediction possible" stays visible in
// aggregate statistics. Use math.IsNaN or the comma-ok Lookup accessors.
//
// # Concurrency
//
// The kernel is single-writer and takes no locks. Immutable vectors and
// unowned key domains may be shared freely between goroutines; a
// RatingIndex only hands out such values and is therefore safe for
// concurrent reads.
package lenskit
