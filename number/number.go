package number

import (
	"math"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Cast[T Number, U Number](v T) U {
	return U(v)
}

// ToFloat64s copies x into dst, which must have the same length.
func ToFloat64s[T Number](dst []float64, x []T) {
	for i := range x {
		dst[i] = Cast[T, float64](x[i])
	}
}

// FirstNonFinite returns the index of the first NaN or infinite value in x, or -1.
func FirstNonFinite(x []float64) int {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}

	return -1
}
