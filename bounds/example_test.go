package bounds_test

import (
	"fmt"

	"github.com/pragmastat-go/pragmastat/bounds"
)

func ExampleCenterBounds() {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	b, err := bounds.CenterBounds(x, 0.01)
	if err != nil {
		panic(err)
	}
	fmt.Println(b.Lower, b.Upper)
	// Output: 2.5 8.5
}

func ExampleMedianBounds() {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	b, err := bounds.MedianBounds(x, 0.1)
	if err != nil {
		panic(err)
	}
	fmt.Println(b.Lower, b.Upper)
	// Output: 2 9
}
