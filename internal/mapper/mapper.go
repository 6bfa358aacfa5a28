// Package mapper converts between the canonical Event record and its two
// outward projections. All functions are null-transparent: nil in, nil out.
package mapper

import (
	"eonet/internal/dto"
	"eonet/internal/models"
)

func ToDTO(e *models.Event) *dto.EventDTO {
	if e == nil {
		return nil
	}
	date := e.Date
	category := e.Category
	longitude := e.Longitude
	latitude := e.Latitude
	status := e.Status
	return &dto.EventDTO{
		ID:        e.ID,
		Title:     e.Title,
		Date:      &date,
		Category:  &category,
		Longitude: &longitude,
		Latitude:  &latitude,
		Status:    &status,
	}
}

func ToDTOList(events []models.Event) []dto.EventDTO {
	out := make([]dto.EventDTO, 0, len(events))
	for i := range events {
		out = append(out, *ToDTO(&events[i]))
	}
	return out
}

func ToFormDTO(e *models.Event) *dto.EventFormDTO {
	if e == nil {
		return nil
	}
	var id *uint64
	if e.ID != 0 {
		v := e.ID
		id = &v
	}
	date := e.Date
	category := e.Category
	longitude := e.Longitude
	latitude := e.Latitude
	status := e.Status
	return &dto.EventFormDTO{
		ID:        id,
		Title:     e.Title,
		Date:      &date,
		Category:  &category,
		Longitude: &longitude,
		Latitude:  &latitude,
		Status:    &status,
	}
}

func ToFormDTOList(events []models.Event) []dto.EventFormDTO {
	out := make([]dto.EventFormDTO, 0, len(events))
	for i := range events {
		out = append(out, *ToFormDTO(&events[i]))
	}
	return out
}

// ToEntity copies a detail DTO into a record. The identifier is carried
// over as-is; create-vs-update is decided by the caller, not here.
func ToEntity(d *dto.EventDTO) *models.Event {
	if d == nil {
		return nil
	}
	e := &models.Event{
		ID:    d.ID,
		Title: d.Title,
	}
	if d.Date != nil {
		e.Date = *d.Date
	}
	if d.Category != nil {
		e.Category = *d.Category
	}
	if d.Longitude != nil {
		e.Longitude = *d.Longitude
	}
	if d.Latitude != nil {
		e.Latitude = *d.Latitude
	}
	if d.Status != nil {
		e.Status = *d.Status
	}
	return e
}

// FromFormDTO copies a form DTO into a record, preserving the identifier
// when present so updates keep their target.
func FromFormDTO(d *dto.EventFormDTO) *models.Event {
	if d == nil {
		return nil
	}
	e := &models.Event{
		Title: d.Title,
	}
	if d.ID != nil {
		e.ID = *d.ID
	}
	if d.Date != nil {
		e.Date = *d.Date
	}
	if d.Category != nil {
		e.Category = *d.Category
	}
	if d.Longitude != nil {
		e.Longitude = *d.Longitude
	}
	if d.Latitude != nil {
		e.Latitude = *d.Latitude
	}
	if d.Status != nil {
		e.Status = *d.Status
	}
	return e
}
