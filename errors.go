package moqi

import (
	"math"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidInput reports an empty point set, inconsistent dimensions or an unknown metric.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNumericAnomaly reports non-finite coordinates or a distance column with no defined value.
	ErrNumericAnomaly = errors.New("numeric anomaly")
)

// checkFinite rejects results that overflowed even though every coordinate was finite.
func checkFinite(indicator string, value float64) error {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return errors.Wrapf(ErrNumericAnomaly, "%s result is not finite: %v", indicator, value)
	}
	return nil
}
