package validate

import (
	"strconv"
	"strings"
)

const (
	// DefaultValidityMinutes applies when no validity period is supplied.
	DefaultValidityMinutes = 30

	maxValidityMinutes  = 525600 // one year
	longValidityMinutes = 43200  // thirty days
	shortValidityFloor  = 5
)

// PeriodResult is the outcome of validating a validity period.
// At most one of Err and Warning is ever set; a warning never makes the
// result invalid.
type PeriodResult struct {
	Valid   bool
	Minutes int
	Err     string
	Warning string
}

// ValidatePeriod validates a raw validity-period input, as entered by the
// user. An empty input is valid and defaults to thirty minutes.
func ValidatePeriod(raw string) PeriodResult {
	raw = strings.TrimSpace(raw)

	if raw == "" {
		return PeriodResult{Valid: true, Minutes: DefaultValidityMinutes}
	}

	num, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return PeriodResult{Err: "Validity period must be a number"}
	}

	if num != float64(int64(num)) {
		return PeriodResult{Err: "Validity period must be a whole number"}
	}

	minutes := int(num)

	if minutes < 1 {
		return PeriodResult{Err: "Validity period must be at least 1 minute"}
	}

	if minutes > maxValidityMinutes {
		return PeriodResult{Err: "Validity period cannot exceed 1 year (525,600 minutes)"}
	}

	if minutes < shortValidityFloor {
		return PeriodResult{
			Valid:   true,
			Minutes: minutes,
			Warning: "Very short validity period - URL will expire quickly",
		}
	}

	if minutes > longValidityMinutes {
		return PeriodResult{
			Valid:   true,
			Minutes: minutes,
			Warning: "Very long validity period - consider shorter duration for security",
		}
	}

	return PeriodResult{Valid: true, Minutes: minutes}
}
