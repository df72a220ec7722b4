package vectors_test

import (
	"fmt"

	"github.com/lenskit/lenskit-sub015/keys"
	"github.com/lenskit/lenskit-sub015/vectors"
)

func Example() {
	a := vectors.Wrap([]int64{3, 7, 8}, []float64{1.5, 3.5, 2})
	b := vectors.Wrap([]int64{3, 5, 8}, []float64{2, 2.3, 1.5})

	fmt.Printf("%.1f\n", a.Dot(b))

	a.Add(b)
	fmt.Println(a)
	// Output:
	// 6.0
	// {3: 3.5, 7: 3.5, 8: 3.5}
}

func ExampleMutable_FastEntries() {
	v := vectors.Wrap([]int64{1, 2, 3}, []float64{1, 2, 3})
	for e := range v.FastEntries() {
		v.SetEntry(e, e.Value()*e.Value())
	}
	fmt.Println(v)
	// Output: {1: 1, 2: 4, 3: 9}
}

func ExampleNew() {
	items := keys.Create(10, 20, 30)

	v := vectors.New(items)
	v.Set(20, 4)
	fmt.Println(v, v.UnsetKeys())
	// Output: {20: 4} [10 30]
}
