package errors

import "math"

// ValidateFinite rejects NaN and infinite values. Neither is a usable
// physical quantity, so both are reported as ErrCodeInvalidType rather than
// as a constraint violation.
func ValidateFinite(field string, v float64) error {
	if math.IsNaN(v) {
		return Field(ErrCodeInvalidType, field, "value is not a number")
	}
	if math.IsInf(v, 0) {
		return Field(ErrCodeInvalidType, field, "value is infinite")
	}
	return nil
}

// ValidatePositive validates that v is finite and strictly greater than zero.
func ValidatePositive(field string, v float64) error {
	if err := ValidateFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return Field(ErrCodeInvalidParameter, field, "must be positive, got %g", v)
	}
	return nil
}

// ValidateNonNegative validates that v is finite and not below zero.
func ValidateNonNegative(field string, v float64) error {
	if err := ValidateFinite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return Field(ErrCodeInvalidParameter, field, "must be non-negative, got %g", v)
	}
	return nil
}

// ValidateRange validates that v is finite and lies in the closed interval
// [lo, hi].
func ValidateRange(field string, v, lo, hi float64) error {
	if err := ValidateFinite(field, v); err != nil {
		return err
	}
	if v < lo || v > hi {
		return Field(ErrCodeInvalidParameter, field, "must be between %g and %g, got %g", lo, hi, v)
	}
	return nil
}

// ValidateFraction validates a volumetric or mass fraction in [0, 1].
func ValidateFraction(field string, v float64) error {
	return ValidateRange(field, v, 0, 1)
}
