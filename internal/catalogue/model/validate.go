package model

import (
	"time"

	"github.com/google/uuid"
)

// ValidateUUID checks that s is a well-formed UUID.
func ValidateUUID(s string) error {
	if _, err := uuid.Parse(s); err != nil {
		return validationf("Invalid UUID %s: %v", s, err)
	}
	return nil
}

// ValidateDate checks that s is an ISO 8601 calendar date and returns it.
func ValidateDate(s string) (Date, error) {
	d, err := ParseDate(s)
	if err != nil {
		return Date{}, validationf("Invalid date format %s: %v", s, err)
	}
	return d, nil
}

// ValidateYear checks that year can form a calendar date.
func ValidateYear(year int) error {
	if year < 1 || year > 9999 {
		return validationf("Invalid year %d: year is out of range", year)
	}
	return nil
}

// ValidateStartAndEndDates checks that the optional start and end dates are
// well formed, not in the future and correctly ordered. Empty strings mean
// the bound is absent.
func ValidateStartAndEndDates(startDate, endDate string) error {
	return validateStartAndEndDatesAt(startDate, endDate, time.Now())
}

func validateStartAndEndDatesAt(startDate, endDate string, now time.Time) error {
	// Take the calendar date in now's location; parsed dates are UTC
	// midnight, so today must be too.
	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)

	var start, end Date
	if startDate != "" {
		d, err := ValidateDate(startDate)
		if err != nil {
			return validationf("Invalid dates: %v", err)
		}
		if d.After(today) {
			return validationf("Invalid dates: Start date can't be in the future")
		}
		start = d
	}
	if endDate != "" {
		d, err := ValidateDate(endDate)
		if err != nil {
			return validationf("Invalid dates: %v", err)
		}
		if d.After(today) {
			return validationf("Invalid dates: End date can't be in the future")
		}
		end = d
	}
	if startDate != "" && endDate != "" && start.After(end.Time) {
		return validationf("Invalid dates: Start date should be before or equal to end date.")
	}
	return nil
}

// ValidateStartAndEndYears checks that the optional start and end years are
// valid, not in the future and correctly ordered. Zero means the bound is
// absent.
func ValidateStartAndEndYears(startYear, endYear int) error {
	return validateStartAndEndYearsAt(startYear, endYear, time.Now())
}

func validateStartAndEndYearsAt(startYear, endYear int, now time.Time) error {
	currentYear := now.Year()

	if startYear != 0 {
		if err := ValidateYear(startYear); err != nil {
			return validationf("Invalid years: %v", err)
		}
		if startYear > currentYear {
			return validationf("Invalid years: Start year can't be in the future")
		}
	}
	if endYear != 0 {
		if err := ValidateYear(endYear); err != nil {
			return validationf("Invalid years: %v", err)
		}
		if endYear > currentYear {
			return validationf("Invalid years: End year can't be in the future")
		}
	}
	if startYear != 0 && endYear != 0 && startYear > endYear {
		return validationf("Invalid years: Start year should be before or equal to end year.")
	}
	return nil
}
