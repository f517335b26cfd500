package services

import (
	"math"
	"strconv"
	"strings"

	apperrors "budgetbook/internal/errors"
)

// ValidateMonthDuration checks that raw parses as a whole number equal to
// 1 or 12. Fractional strings such as "1.5" are rejected, not truncated.
func ValidateMonthDuration(raw string) error {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return apperrors.WithMessage(apperrors.ErrNotANumber, "Month duration must be a whole number (1 or 12).")
	}
	if v != 1 && v != 12 {
		return apperrors.WithMessage(apperrors.ErrInvalidEnumValue, "Month duration must be 1 (month) or 12 (year).")
	}
	return nil
}

// ValidateNonNegativeAmount checks that raw parses as a number >= 0.
// The field name is prefixed onto the user-facing message, e.g.
// "Gross income must be a valid number.".
func ValidateNonNegativeAmount(field, raw string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return apperrors.WithMessage(apperrors.ErrNotANumber, field+" must be a valid number.")
	}
	if v < 0 {
		return apperrors.WithMessage(apperrors.ErrNegativeValue, field+" must be a non negative number.")
	}
	return nil
}
