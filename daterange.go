package newssearch

import (
	"errors"
	"fmt"
	"time"
)

// dateLayout is the fixed-width calendar date format used throughout the
// engine. Because the format is fixed-width, lexicographic comparison of two
// date strings agrees with chronological order.
const dateLayout = "20060102"

var (
	// ErrInvalidDateFormat indicates a date string that is not exactly eight
	// digits or does not name a real calendar date.
	ErrInvalidDateFormat = errors.New("date must be a valid YYYYMMDD date")

	// ErrInvalidDateRange indicates a start date after the end date.
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

// validateDate checks that s is a real calendar date in YYYYMMDD form.
func validateDate(s string) error {
	if len(s) != 8 {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
		}
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return nil
}

// ResolveDateRange normalizes an optional start/end date pair. Both empty
// means a single-day window of today; a start without an end runs through
// today. Each supplied date is validated independently, then the pair is
// checked for ordering. Pure function: no I/O beyond reading the clock for
// defaults.
func ResolveDateRange(start, end string) (string, string, error) {
	today := time.Now().Format(dateLayout)

	switch {
	case start == "" && end == "":
		start, end = today, today
	case start != "" && end == "":
		if err := validateDate(start); err != nil {
			return "", "", err
		}
		end = today
	default:
		if err := validateDate(start); err != nil {
			return "", "", err
		}
		if err := validateDate(end); err != nil {
			return "", "", err
		}
	}

	if start > end {
		return "", "", fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, start, end)
	}
	return start, end, nil
}
