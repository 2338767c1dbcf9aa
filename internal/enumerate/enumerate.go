// Package enumerate provides exhaustive iteration over small integer boxes.
package enumerate

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

// Box calls fn for every point of the k-fold cartesian product [lo, hi]^k.
// The slice passed to fn is reused between calls and must not be retained.
func Box(lo, hi, k int, fn func(point []int)) {
	if hi < lo {
		panic(fmt.Sprintf("enumerate: empty interval [%d, %d]", lo, hi))
	}
	if k < 1 {
		panic(fmt.Sprintf("enumerate: dimension %d", k))
	}
	lens := make([]int, k)
	for i := range lens {
		lens[i] = hi - lo + 1
	}
	gen := combin.NewCartesianGenerator(lens)
	point := make([]int, k)
	for gen.Next() {
		gen.Product(point)
		for i := range point {
			point[i] += lo
		}
		fn(point)
	}
}
