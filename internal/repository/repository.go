package repository

import (
	"context"
	"errors"

	"eonet/internal/models"
)

// ErrNotFound is returned by Save (update of a missing identifier) and
// DeleteByID when the targeted record does not exist.
var ErrNotFound = errors.New("event not found")

// EventRepository is the record-store contract the core depends on.
// The six Find* combinations mirror the dispatcher's precedence table;
// date-range bounds are inclusive on both sides.
type EventRepository interface {
	FindAll(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, id uint64) (*models.Event, error)

	FindByCategory(ctx context.Context, category models.Category) ([]models.Event, error)
	FindByStatus(ctx context.Context, status models.Status) ([]models.Event, error)
	FindByDate(ctx context.Context, date models.Date) ([]models.Event, error)
	FindByCategoryAndStatus(ctx context.Context, category models.Category, status models.Status) ([]models.Event, error)
	FindByDateBetween(ctx context.Context, start, end models.Date) ([]models.Event, error)
	FindByCategoryAndDateBetween(ctx context.Context, category models.Category, start, end models.Date) ([]models.Event, error)
	FindByStatusAndDateBetween(ctx context.Context, status models.Status, start, end models.Date) ([]models.Event, error)
	FindByCategoryAndStatusAndDateBetween(ctx context.Context, category models.Category, status models.Status, start, end models.Date) ([]models.Event, error)

	Count(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context, category models.Category) (int64, error)
	CountByStatus(ctx context.Context, status models.Status) (int64, error)
	CountByDateBetween(ctx context.Context, start, end models.Date) (int64, error)

	ExistsByID(ctx context.Context, id uint64) (bool, error)

	// Save creates when ID is zero (assigning a fresh identifier) and
	// updates otherwise; updating a missing ID fails with ErrNotFound.
	Save(ctx context.Context, event *models.Event) error
	DeleteByID(ctx context.Context, id uint64) error
}
