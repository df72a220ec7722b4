package lenskit_test

import (
	"fmt"

	lenskit "github.com/lenskit/lenskit-sub015"
)

func ExampleNewRatingIndex() {
	idx, err := lenskit.NewRatingIndex([]lenskit.Rating{
		{User: 1, Item: 10, Value: 4},
		{User: 1, Item: 20, Value: 3},
		{User: 2, Item: 10, Value: 5},
	})
	if err != nil {
		panic(err)
	}

	ratings := idx.UserVector(1)
	fmt.Println(ratings, ratings.Mean())
	fmt.Println(idx.ItemVector(10))
	// Output:
	// {10: 4, 20: 3} 3.5
	// {1: 4, 2: 5}
}
