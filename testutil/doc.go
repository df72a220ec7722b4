// Package testutil provides testing utilities for lenskit.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for sparse vectors and rating data.
//
// # Random Sparse Vectors
//
//	rng := testutil.NewRNG(seed)
//	v := rng.SparseVector(1000, 0.05) // ~50 active keys out of 1000
//
// # Synthetic Ratings
//
//	ratings := rng.Ratings(100, 500, 0.02, 1.2) // Zipf-skewed item popularity
package testutil
