package moqi

import (
	"github.com/ar90n/moqi/number"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// toDense validates set and copies it into a matrix with one row per point.
// dim is the dimension every point must have, or 0 to take it from the first point.
func toDense[T number.Number](name string, set [][]T, dim int) (*mat.Dense, error) {
	if len(set) == 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "%s set is empty", name)
	}
	if dim == 0 {
		dim = len(set[0])
	}
	if dim == 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "%s point 0 has no coordinates", name)
	}

	data := make([]float64, len(set)*dim)
	for i, p := range set {
		if len(p) != dim {
			return nil, errors.Wrapf(ErrInvalidInput, "%s point %d has dimension %d, expected %d", name, i, len(p), dim)
		}

		row := data[i*dim : (i+1)*dim]
		number.ToFloat64s(row, p)
		if k := number.FirstNonFinite(row); 0 <= k {
			return nil, errors.Wrapf(ErrNumericAnomaly, "%s point %d has non-finite coordinate %d", name, i, k)
		}
	}

	return mat.NewDense(len(set), dim, data), nil
}

// toDensePair validates both sets against each other before any numeric work.
func toDensePair[T number.Number](reference, computed [][]T) (*mat.Dense, *mat.Dense, error) {
	ref, err := toDense("reference", reference, 0)
	if err != nil {
		return nil, nil, err
	}

	_, dim := ref.Dims()
	comp, err := toDense("computed", computed, dim)
	if err != nil {
		return nil, nil, err
	}

	return ref, comp, nil
}
