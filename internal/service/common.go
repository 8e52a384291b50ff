package service

import (
	"strings"
	"time"
)

const dayFormat = "2006-01-02"

func dayString(t time.Time) string {
	return t.Format(dayFormat)
}

func parseDay(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dayFormat, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, validationErr("date", "expected YYYY-MM-DD")
	}
	return t, nil
}

func beginningOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func validatePositiveFloat(name string, value float64) error {
	if value <= 0 {
		return validationErr(name, "must be > 0")
	}
	return nil
}

func validateNonNegativeFloat(name string, value float64) error {
	if value < 0 {
		return validationErr(name, "must be >= 0")
	}
	return nil
}

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return validationErr(name, "must be >= 0")
	}
	return nil
}
