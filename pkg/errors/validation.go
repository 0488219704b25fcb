package errors

import (
	"math"
)

// MinPoints is the smallest series length accepted by the squiggle transform.
const MinPoints = 4

// ValidateShape checks that an (x, y) pair of arrays can be squigglified.
//
// The rules are:
//   - Both arrays must hold at least [MinPoints] values
//   - Both arrays must have the same length
//
// It fails with [ErrCodeShapeValidation].
func ValidateShape(nx, ny int) error {
	if nx < MinPoints || ny < MinPoints {
		return New(ErrCodeShapeValidation, "not enough x/y points: need at least %d, got %d/%d", MinPoints, nx, ny)
	}
	if nx != ny {
		return New(ErrCodeShapeValidation, "len(x) != len(y): %d != %d", nx, ny)
	}
	return nil
}

// ValidateFinite rejects NaN and infinite values in a coordinate array.
// axis names the array in the error message.
func ValidateFinite(axis string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeShapeValidation, "%s[%d] is not finite: %v", axis, i, v)
		}
	}
	return nil
}

// ValidatePositive checks that a parameter is a finite value greater than zero.
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return New(ErrCodeConfiguration, "%s must be positive, got %v", name, v)
	}
	return nil
}

// ValidateNonNegative checks that a parameter is a finite value of zero or more.
func ValidateNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return New(ErrCodeConfiguration, "%s must not be negative, got %v", name, v)
	}
	return nil
}

// ValidatePercent checks that a percentage lies in (0, 100].
func ValidatePercent(name string, v float64) error {
	if math.IsNaN(v) || v <= 0 || v > 100 {
		return New(ErrCodeConfiguration, "%s must be in (0, 100], got %v", name, v)
	}
	return nil
}
