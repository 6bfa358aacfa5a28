package gormrepository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"eonet/internal/models"
	"eonet/internal/repository"
)

// Store is the Postgres-backed event store.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindAll(ctx context.Context) ([]models.Event, error) {
	var items []models.Event
	if err := s.db.WithContext(ctx).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) FindByID(ctx context.Context, id uint64) (*models.Event, error) {
	var item models.Event
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) FindByCategory(ctx context.Context, category models.Category) ([]models.Event, error) {
	return s.find(ctx, "category = ?", category)
}

func (s *Store) FindByStatus(ctx context.Context, status models.Status) ([]models.Event, error) {
	return s.find(ctx, "status = ?", status)
}

func (s *Store) FindByDate(ctx context.Context, date models.Date) ([]models.Event, error) {
	return s.find(ctx, "date = ?", date)
}

func (s *Store) FindByCategoryAndStatus(ctx context.Context, category models.Category, status models.Status) ([]models.Event, error) {
	return s.find(ctx, "category = ? AND status = ?", category, status)
}

func (s *Store) FindByDateBetween(ctx context.Context, start, end models.Date) ([]models.Event, error) {
	return s.find(ctx, "date BETWEEN ? AND ?", start, end)
}

func (s *Store) FindByCategoryAndDateBetween(ctx context.Context, category models.Category, start, end models.Date) ([]models.Event, error) {
	return s.find(ctx, "category = ? AND date BETWEEN ? AND ?", category, start, end)
}

func (s *Store) FindByStatusAndDateBetween(ctx context.Context, status models.Status, start, end models.Date) ([]models.Event, error) {
	return s.find(ctx, "status = ? AND date BETWEEN ? AND ?", status, start, end)
}

func (s *Store) FindByCategoryAndStatusAndDateBetween(ctx context.Context, category models.Category, status models.Status, start, end models.Date) ([]models.Event, error) {
	return s.find(ctx, "category = ? AND status = ? AND date BETWEEN ? AND ?", category, status, start, end)
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.count(ctx, "")
}

func (s *Store) CountByCategory(ctx context.Context, category models.Category) (int64, error) {
	return s.count(ctx, "category = ?", category)
}

func (s *Store) CountByStatus(ctx context.Context, status models.Status) (int64, error) {
	return s.count(ctx, "status = ?", status)
}

func (s *Store) CountByDateBetween(ctx context.Context, start, end models.Date) (int64, error) {
	return s.count(ctx, "date BETWEEN ? AND ?", start, end)
}

func (s *Store) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", id).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) Save(ctx context.Context, event *models.Event) error {
	if event == nil {
		return nil
	}
	if event.ID == 0 {
		return s.db.WithContext(ctx).Create(event).Error
	}
	res := s.db.WithContext(ctx).Save(event)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteByID(ctx context.Context, id uint64) error {
	res := s.db.WithContext(ctx).Delete(&models.Event{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (s *Store) find(ctx context.Context, cond string, args ...any) ([]models.Event, error) {
	var items []models.Event
	if err := s.db.WithContext(ctx).
		Where(cond, args...).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) count(ctx context.Context, cond string, args ...any) (int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Event{})
	if cond != "" {
		query = query.Where(cond, args...)
	}
	var n int64
	if err := query.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
