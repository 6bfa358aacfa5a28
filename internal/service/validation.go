package service

import (
	"strings"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"

	"eonet/internal/apperr"
	"eonet/internal/models"
)

const (
	titleMinLen = 5
	titleMaxLen = 255
)

// clock is the time source for the future-date rule. Tests freeze it via
// SetClock; production code uses the real clock.
var clock clockwork.Clock = clockwork.NewRealClock()

// SetClock swaps the validation time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// validateEventData runs the business-rule pipeline in fixed order
// (title, date, category, longitude, latitude, status) and stops at the
// first violation. The aggregate required-field check lives on the DTOs
// and runs before this; the two paths are never merged.
func validateEventData(title string, date *models.Date, category *models.Category, longitude, latitude *float64, status *models.Status) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if err := validateDate(date); err != nil {
		return err
	}
	if err := validateCategory(category); err != nil {
		return err
	}
	if err := validateLongitude(longitude); err != nil {
		return err
	}
	if err := validateLatitude(latitude); err != nil {
		return err
	}
	return validateStatus(status)
}

func validateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return apperr.MissingField("title")
	}
	length := utf8.RuneCountInString(trimmed)
	if length < titleMinLen {
		return apperr.FieldTooShort("title", titleMinLen)
	}
	if length > titleMaxLen {
		return apperr.FieldTooLong("title", titleMaxLen)
	}
	return nil
}

// validateDate allows today; only strictly future dates are rejected.
func validateDate(date *models.Date) error {
	if date == nil || date.IsZero() {
		return apperr.MissingField("date")
	}
	today := models.DateOf(clock.Now())
	if date.After(today) {
		return apperr.FutureDate(date.String())
	}
	return nil
}

func validateCategory(category *models.Category) error {
	if category == nil || *category == "" {
		return apperr.MissingField("category")
	}
	if !category.Valid() {
		return apperr.InvalidCategory(category.String(), models.CategoryNames())
	}
	return nil
}

func validateLongitude(longitude *float64) error {
	if longitude == nil {
		return apperr.MissingField("longitude")
	}
	if *longitude < -180 || *longitude > 180 {
		return apperr.CoordinateOutOfRange("longitude", *longitude)
	}
	return nil
}

func validateLatitude(latitude *float64) error {
	if latitude == nil {
		return apperr.MissingField("latitude")
	}
	if *latitude < -90 || *latitude > 90 {
		return apperr.CoordinateOutOfRange("latitude", *latitude)
	}
	return nil
}

func validateStatus(status *models.Status) error {
	if status == nil || *status == "" {
		return apperr.MissingField("status")
	}
	if !status.Valid() {
		return apperr.InvalidStatus(status.String())
	}
	return nil
}
