package unit

import (
	"math"
	"strconv"
)

const (
	// DefaultPrecision is used when a request does not specify one.
	DefaultPrecision = 6
	MinPrecision     = 0
	MaxPrecision     = 12
)

// ClampPrecision bounds precision to [MinPrecision, MaxPrecision].
func ClampPrecision(precision int) int {
	if precision < MinPrecision {
		return MinPrecision
	}
	if precision > MaxPrecision {
		return MaxPrecision
	}
	return precision
}

// Round rounds value to precision decimal digits, half to even on the exact
// binary value (2.675 is stored below the tie and yields 2.67).
func Round(value float64, precision int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', precision, 64), 64)
	if err != nil {
		return value
	}
	return rounded
}
