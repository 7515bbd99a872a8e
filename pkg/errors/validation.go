package errors

import "math"

// MaxPriority is the highest priority a constraint can carry.
const MaxPriority = 1000

// ValidateFinite rejects NaN and infinite values. Offsets, insets, sizes and
// multipliers all pass through here before a descriptor reaches a solver.
func ValidateFinite(field string, v float64) error {
	if math.IsNaN(v) {
		return New(ErrCodeInvalidInput, "%s is NaN", field)
	}
	if math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s is infinite", field)
	}
	return nil
}

// ValidatePriority checks that p lies in (0, MaxPriority].
func ValidatePriority(p float64) error {
	if err := ValidateFinite("priority", p); err != nil {
		return err
	}
	if p <= 0 || p > MaxPriority {
		return New(ErrCodeInvalidInput, "priority %g out of range (0, %d]", p, MaxPriority)
	}
	return nil
}

// ValidateExtent checks a length that must be finite and strictly positive,
// such as a container size or a fixed distribution size.
func ValidateExtent(field string, v float64) error {
	if err := ValidateFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be positive, got %g", field, v)
	}
	return nil
}
