package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"eonet/internal/apperr"
	"eonet/internal/models"
)

func freezeClock(t *testing.T, at time.Time) {
	t.Helper()
	SetClock(clockwork.NewFakeClockAt(at))
	t.Cleanup(func() { SetClock(nil) })
}

func validInput() (string, *models.Date, *models.Category, *float64, *float64, *models.Status) {
	date := models.NewDate(2025, 7, 1)
	category := models.CategoryFloods
	longitude := 106.85
	latitude := -6.21
	status := models.StatusOpen
	return "Flood in Jakarta", &date, &category, &longitude, &latitude, &status
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected *apperr.Error, got %T: %v", err, err)
	}
	if ae.Code != code {
		t.Fatalf("code=%q want %q (message %q)", ae.Code, code, ae.Message)
	}
}

func TestValidateEventData_Valid(t *testing.T) {
	freezeClock(t, time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC))
	title, date, category, lon, lat, status := validInput()
	if err := validateEventData(title, date, category, lon, lat, status); err != nil {
		t.Fatalf("err=%v", err)
	}
}

func TestValidateTitle_Bounds(t *testing.T) {
	freezeClock(t, time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC))
	_, date, category, lon, lat, status := validInput()

	err := validateEventData("Ash", date, category, lon, lat, status)
	assertCode(t, err, apperr.CodeInvalidEventData)

	// Exactly five runes passes, multi-byte runes counted as one.
	if err := validateEventData("Überg", date, category, lon, lat, status); err != nil {
		t.Fatalf("five-rune title rejected: %v", err)
	}

	err = validateEventData(strings.Repeat("x", 256), date, category, lon, lat, status)
	assertCode(t, err, apperr.CodeInvalidEventData)

	if err := validateEventData(strings.Repeat("x", 255), date, category, lon, lat, status); err != nil {
		t.Fatalf("255-char title rejected: %v", err)
	}

	err = validateEventData("   ", date, category, lon, lat, status)
	assertCode(t, err, apperr.CodeInvalidEventData)
}

func TestValidateDate_FutureRejectedTodayAllowed(t *testing.T) {
	freezeClock(t, time.Date(2025, 7, 15, 23, 30, 0, 0, time.UTC))
	title, _, category, lon, lat, status := validInput()

	today := models.NewDate(2025, 7, 15)
	if err := validateEventData(title, &today, category, lon, lat, status); err != nil {
		t.Fatalf("today rejected: %v", err)
	}

	tomorrow := models.NewDate(2025, 7, 16)
	err := validateEventData(title, &tomorrow, category, lon, lat, status)
	assertCode(t, err, apperr.CodeInvalidDate)
}

func TestValidateCoordinates_Bounds(t *testing.T) {
	freezeClock(t, time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC))
	title, date, category, _, _, status := validInput()

	set := func(v float64) *float64 { return &v }

	for _, lon := range []float64{-180, 0, 180} {
		if err := validateEventData(title, date, category, set(lon), set(0), status); err != nil {
			t.Fatalf("longitude %v rejected: %v", lon, err)
		}
	}
	for _, lon := range []float64{-180.0001, 180.0001} {
		err := validateEventData(title, date, category, set(lon), set(0), status)
		assertCode(t, err, apperr.CodeInvalidCoordinate)
	}
	for _, lat := range []float64{-90, 0, 90} {
		if err := validateEventData(title, date, category, set(0), set(lat), status); err != nil {
			t.Fatalf("latitude %v rejected: %v", lat, err)
		}
	}
	for _, lat := range []float64{-90.0001, 90.0001} {
		err := validateEventData(title, date, category, set(0), set(lat), status)
		assertCode(t, err, apperr.CodeInvalidCoordinate)
	}
}

// The pipeline stops at the first violation in declaration order, so a
// payload that breaks every rule reports only the title.
func TestValidateEventData_ShortCircuitOrder(t *testing.T) {
	freezeClock(t, time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC))

	future := models.NewDate(2031, 1, 1)
	badCategory := models.Category("tsunami")
	badLon := 500.0
	badLat := 200.0
	badStatus := models.Status("pending")

	err := validateEventData("x", &future, &badCategory, &badLon, &badLat, &badStatus)
	assertCode(t, err, apperr.CodeInvalidEventData)

	// With the title fixed, the date violation surfaces next.
	err = validateEventData("Valid title", &future, &badCategory, &badLon, &badLat, &badStatus)
	assertCode(t, err, apperr.CodeInvalidDate)

	past := models.NewDate(2025, 1, 1)
	err = validateEventData("Valid title", &past, &badCategory, &badLon, &badLat, &badStatus)
	assertCode(t, err, apperr.CodeInvalidCategory)

	goodCategory := models.CategoryFloods
	err = validateEventData("Valid title", &past, &goodCategory, &badLon, &badLat, &badStatus)
	assertCode(t, err, apperr.CodeInvalidCoordinate)

	goodLon := 10.0
	err = validateEventData("Valid title", &past, &goodCategory, &goodLon, &badLat, &badStatus)
	assertCode(t, err, apperr.CodeInvalidCoordinate)

	goodLat := 20.0
	err = validateEventData("Valid title", &past, &goodCategory, &goodLon, &goodLat, &badStatus)
	assertCode(t, err, apperr.CodeInvalidStatus)
}

func TestValidateEventData_MissingFields(t *testing.T) {
	freezeClock(t, time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC))
	title, date, category, lon, lat, status := validInput()

	assertCode(t, validateEventData(title, nil, category, lon, lat, status), apperr.CodeInvalidEventData)
	assertCode(t, validateEventData(title, date, nil, lon, lat, status), apperr.CodeInvalidEventData)
	assertCode(t, validateEventData(title, date, category, nil, lat, status), apperr.CodeInvalidEventData)
	assertCode(t, validateEventData(title, date, category, lon, nil, status), apperr.CodeInvalidEventData)
	assertCode(t, validateEventData(title, date, category, lon, lat, nil), apperr.CodeInvalidEventData)
}
