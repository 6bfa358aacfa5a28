package dto

import (
	"strings"
	"time"

	"eonet/internal/apperr"
	"eonet/internal/models"
)

// EventDTO is the detail view of an event: the full outward
// representation used for read responses. The identifier is always set
// on responses; on create requests it is ignored.
type EventDTO struct {
	ID        uint64           `json:"id" example:"1"`
	Title     string           `json:"title" example:"Flood in Jakarta"`
	Date      *models.Date     `json:"date" swaggertype:"string" example:"2025-07-01"`
	Category  *models.Category `json:"category" swaggertype:"string" example:"floods"`
	Longitude *float64         `json:"longitude" example:"106.85"`
	Latitude  *float64         `json:"latitude" example:"-6.21"`
	Status    *models.Status   `json:"status" swaggertype:"string" example:"open"`
}

// EventFormDTO is the form view used by create/edit workflows. The
// identifier is optional: absent for a not-yet-created record, present
// when pre-populating an edit form.
type EventFormDTO struct {
	ID        *uint64          `json:"id,omitempty" example:"1"`
	Title     string           `json:"title" example:"Flood in Jakarta"`
	Date      *models.Date     `json:"date" swaggertype:"string" example:"2025-07-01"`
	Category  *models.Category `json:"category" swaggertype:"string" example:"floods"`
	Longitude *float64         `json:"longitude" example:"106.85"`
	Latitude  *float64         `json:"latitude" example:"-6.21"`
	Status    *models.Status   `json:"status" swaggertype:"string" example:"open"`
}

// ErrorResponse is the uniform error envelope. Every failure, wherever
// it originated, is rendered into this shape.
type ErrorResponse struct {
	Error     string    `json:"error" example:"EVENT_NOT_FOUND"`
	Message   string    `json:"message" example:"event with id 1 was not found"`
	Code      int       `json:"code" example:"404"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path" example:"/api/events/1"`
}

// ValidateRequired collects every missing required field into a single
// VALIDATION_ERROR. It is the declarative schema-level check run before
// the business rules; the two are deliberately separate code paths.
func (d *EventDTO) ValidateRequired() error {
	return requiredFields(d.Title, d.Date, d.Category, d.Longitude, d.Latitude, d.Status)
}

func (d *EventFormDTO) ValidateRequired() error {
	return requiredFields(d.Title, d.Date, d.Category, d.Longitude, d.Latitude, d.Status)
}

func requiredFields(title string, date *models.Date, category *models.Category, longitude, latitude *float64, status *models.Status) error {
	missing := map[string]string{}
	if strings.TrimSpace(title) == "" {
		missing["title"] = "title is required"
	}
	if date == nil || date.IsZero() {
		missing["date"] = "date is required"
	}
	if category == nil {
		missing["category"] = "category is required"
	}
	if longitude == nil {
		missing["longitude"] = "longitude is required"
	}
	if latitude == nil {
		missing["latitude"] = "latitude is required"
	}
	if status == nil {
		missing["status"] = "status is required"
	}
	if len(missing) > 0 {
		return apperr.ValidationError(missing)
	}
	return nil
}
