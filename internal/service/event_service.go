package service

import (
	"context"

	"eonet/internal/apperr"
	"eonet/internal/dto"
	"eonet/internal/mapper"
	"eonet/internal/models"
	"eonet/internal/repository"
)

// EventService orchestrates validation, dispatch, and projection around
// the record store. It holds no mutable state across requests.
type EventService struct {
	Repo repository.EventRepository
}

// EventFilter carries the optional filter values of a read request.
// Start and end only count as a range when both are present.
type EventFilter struct {
	Category *models.Category
	Status   *models.Status
	Start    *models.Date
	End      *models.Date
}

// --- detail views ------------------------------------------------------

func (s *EventService) GetAllEvents(ctx context.Context) ([]dto.EventDTO, error) {
	items, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToDTOList(items), nil
}

func (s *EventService) GetEventByID(ctx context.Context, id uint64) (*dto.EventDTO, error) {
	item, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.EventNotFound(id)
	}
	return mapper.ToDTO(item), nil
}

func (s *EventService) GetEventsByCategory(ctx context.Context, category models.Category) ([]dto.EventDTO, error) {
	items, err := s.Repo.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return mapper.ToDTOList(items), nil
}

func (s *EventService) GetEventsByStatus(ctx context.Context, status models.Status) ([]dto.EventDTO, error) {
	items, err := s.Repo.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return mapper.ToDTOList(items), nil
}

func (s *EventService) GetEventsByDate(ctx context.Context, date models.Date) ([]dto.EventDTO, error) {
	items, err := s.Repo.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return mapper.ToDTOList(items), nil
}

// FilterEvents resolves the optional filters to exactly one store lookup.
// Precedence, most specific first: category+status+range, category+range,
// category+status, status+range, range, no filter. A lone start or end
// bound does not form a range and is dropped, so e.g. category alone
// falls through to the unfiltered lookup, matching the precedence table.
func (s *EventService) FilterEvents(ctx context.Context, f EventFilter) ([]dto.EventDTO, error) {
	hasRange := f.Start != nil && f.End != nil

	var (
		items []models.Event
		err   error
	)
	switch {
	case f.Category != nil && f.Status != nil && hasRange:
		items, err = s.Repo.FindByCategoryAndStatusAndDateBetween(ctx, *f.Category, *f.Status, *f.Start, *f.End)
	case f.Category != nil && hasRange:
		items, err = s.Repo.FindByCategoryAndDateBetween(ctx, *f.Category, *f.Start, *f.End)
	case f.Category != nil && f.Status != nil:
		items, err = s.Repo.FindByCategoryAndStatus(ctx, *f.Category, *f.Status)
	case f.Status != nil && hasRange:
		items, err = s.Repo.FindByStatusAndDateBetween(ctx, *f.Status, *f.Start, *f.End)
	case hasRange:
		items, err = s.Repo.FindByDateBetween(ctx, *f.Start, *f.End)
	default:
		items, err = s.Repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return mapper.ToDTOList(items), nil
}

// --- counts ------------------------------------------------------------

func (s *EventService) CountEvents(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx)
}

func (s *EventService) CountEventsByCategory(ctx context.Context, category models.Category) (int64, error) {
	return s.Repo.CountByCategory(ctx, category)
}

func (s *EventService) CountEventsByStatus(ctx context.Context, status models.Status) (int64, error) {
	return s.Repo.CountByStatus(ctx, status)
}

func (s *EventService) CountEventsByDateBetween(ctx context.Context, start, end models.Date) (int64, error) {
	return s.Repo.CountByDateBetween(ctx, start, end)
}

// --- writes (detail shape) ----------------------------------------------

func (s *EventService) CreateEvent(ctx context.Context, d *dto.EventDTO) (*dto.EventDTO, error) {
	if err := validateEventData(d.Title, d.Date, d.Category, d.Longitude, d.Latitude, d.Status); err != nil {
		return nil, err
	}
	event := mapper.ToEntity(d)
	event.ID = 0
	if err := s.Repo.Save(ctx, event); err != nil {
		return nil, err
	}
	return mapper.ToDTO(event), nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id uint64, d *dto.EventDTO) (*dto.EventDTO, error) {
	exists, err := s.Repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.EventNotFound(id)
	}
	if err := validateEventData(d.Title, d.Date, d.Category, d.Longitude, d.Latitude, d.Status); err != nil {
		return nil, err
	}
	event := mapper.ToEntity(d)
	event.ID = id
	if err := s.Repo.Save(ctx, event); err != nil {
		return nil, err
	}
	return mapper.ToDTO(event), nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint64) error {
	exists, err := s.Repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.EventNotFound(id)
	}
	return s.Repo.DeleteByID(ctx, id)
}

// --- form views ----------------------------------------------------------

func (s *EventService) GetAllEventsAsForm(ctx context.Context) ([]dto.EventFormDTO, error) {
	items, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToFormDTOList(items), nil
}

func (s *EventService) GetEventForEdit(ctx context.Context, id uint64) (*dto.EventFormDTO, error) {
	item, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.EventNotFound(id)
	}
	return mapper.ToFormDTO(item), nil
}

func (s *EventService) CreateEventFromForm(ctx context.Context, d *dto.EventFormDTO) (*dto.EventFormDTO, error) {
	if err := validateEventData(d.Title, d.Date, d.Category, d.Longitude, d.Latitude, d.Status); err != nil {
		return nil, err
	}
	event := mapper.FromFormDTO(d)
	event.ID = 0
	if err := s.Repo.Save(ctx, event); err != nil {
		return nil, err
	}
	return mapper.ToFormDTO(event), nil
}

func (s *EventService) UpdateEventFromForm(ctx context.Context, id uint64, d *dto.EventFormDTO) (*dto.EventFormDTO, error) {
	exists, err := s.Repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.EventNotFound(id)
	}
	if err := validateEventData(d.Title, d.Date, d.Category, d.Longitude, d.Latitude, d.Status); err != nil {
		return nil, err
	}
	event := mapper.FromFormDTO(d)
	event.ID = id
	if err := s.Repo.Save(ctx, event); err != nil {
		return nil, err
	}
	return mapper.ToFormDTO(event), nil
}
