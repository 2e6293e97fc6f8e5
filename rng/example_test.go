package rng_test

import (
	"fmt"

	"github.com/pragmastat-go/pragmastat/rng"
)

// ExampleFromString demonstrates seeding from a human-readable string and
// drawing a reproducible permutation.
func ExampleFromString() {
	r := rng.FromString("demo-shuffle")
	out, _ := r.Shuffle([]float64{1, 2, 3, 4, 5})
	fmt.Println(out)
	// Output: [4 2 3 5 1]
}
