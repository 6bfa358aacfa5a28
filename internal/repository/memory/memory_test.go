package memory

import (
	"context"
	"errors"
	"testing"

	"eonet/internal/models"
	"eonet/internal/repository"
)

func seed(t *testing.T, s *Store, events ...models.Event) {
	t.Helper()
	ctx := context.Background()
	for i := range events {
		e := events[i]
		e.ID = 0
		if err := s.Save(ctx, &e); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestSave_AssignsSequentialIDs(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	a := models.Event{Title: "first", Date: models.NewDate(2025, 1, 1), Category: models.CategoryFloods, Status: models.StatusOpen}
	b := models.Event{Title: "second", Date: models.NewDate(2025, 1, 2), Category: models.CategorySnow, Status: models.StatusClosed}
	if err := s.Save(ctx, &a); err != nil {
		t.Fatalf("err=%v", err)
	}
	if err := s.Save(ctx, &b); err != nil {
		t.Fatalf("err=%v", err)
	}
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("ids=%d,%d", a.ID, b.ID)
	}
}

func TestSave_IDsNeverReused(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	a := models.Event{Title: "first"}
	_ = s.Save(ctx, &a)
	if err := s.DeleteByID(ctx, a.ID); err != nil {
		t.Fatalf("err=%v", err)
	}
	b := models.Event{Title: "second"}
	_ = s.Save(ctx, &b)
	if b.ID != 2 {
		t.Fatalf("deleted id reused: got %d", b.ID)
	}
}

func TestSave_UpdateMissing(t *testing.T) {
	s := NewStore()
	e := models.Event{ID: 9999, Title: "ghost"}
	err := s.Save(context.Background(), &e)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
	n, _ := s.Count(context.Background())
	if n != 0 {
		t.Fatalf("count=%d, failed update must not insert", n)
	}
}

func TestFindByID_AbsentIsNilNil(t *testing.T) {
	s := NewStore()
	e, err := s.FindByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if e != nil {
		t.Fatalf("expected nil event")
	}
}

func TestDeleteByID_Missing(t *testing.T) {
	s := NewStore()
	err := s.DeleteByID(context.Background(), 1)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
}

func TestFilter_SortedByID(t *testing.T) {
	s := NewStore()
	seed(t, s,
		models.Event{Title: "a", Category: models.CategoryFloods, Status: models.StatusOpen, Date: models.NewDate(2025, 1, 1)},
		models.Event{Title: "b", Category: models.CategoryFloods, Status: models.StatusOpen, Date: models.NewDate(2025, 1, 2)},
		models.Event{Title: "c", Category: models.CategoryFloods, Status: models.StatusOpen, Date: models.NewDate(2025, 1, 3)},
	)
	out, err := s.FindAll(context.Background())
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	for i := 1; i < len(out); i++ {
		if out[i-1].ID >= out[i].ID {
			t.Fatalf("not sorted by id: %v", out)
		}
	}
}

func TestDateBetween_InclusiveBounds(t *testing.T) {
	s := NewStore()
	seed(t, s,
		models.Event{Title: "before", Date: models.NewDate(2025, 6, 30)},
		models.Event{Title: "start", Date: models.NewDate(2025, 7, 1)},
		models.Event{Title: "end", Date: models.NewDate(2025, 7, 31)},
		models.Event{Title: "after", Date: models.NewDate(2025, 8, 1)},
	)
	out, err := s.FindByDateBetween(context.Background(), models.NewDate(2025, 7, 1), models.NewDate(2025, 7, 31))
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len=%d want 2: %v", len(out), out)
	}
	if out[0].Title != "start" || out[1].Title != "end" {
		t.Fatalf("wrong rows: %v", out)
	}
}

func TestDateBetween_InvertedRangeEmpty(t *testing.T) {
	s := NewStore()
	seed(t, s, models.Event{Title: "x", Date: models.NewDate(2025, 7, 15)})
	out, err := s.FindByDateBetween(context.Background(), models.NewDate(2025, 7, 31), models.NewDate(2025, 7, 1))
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(out) != 0 {
		t.Fatalf("inverted range must match nothing, got %v", out)
	}
}

func TestCombinedPredicates(t *testing.T) {
	s := NewStore()
	seed(t, s,
		models.Event{Title: "match", Category: models.CategoryWildfires, Status: models.StatusOpen, Date: models.NewDate(2025, 7, 10)},
		models.Event{Title: "wrong category", Category: models.CategoryFloods, Status: models.StatusOpen, Date: models.NewDate(2025, 7, 10)},
		models.Event{Title: "wrong status", Category: models.CategoryWildfires, Status: models.StatusClosed, Date: models.NewDate(2025, 7, 10)},
		models.Event{Title: "wrong date", Category: models.CategoryWildfires, Status: models.StatusOpen, Date: models.NewDate(2025, 9, 10)},
	)
	out, err := s.FindByCategoryAndStatusAndDateBetween(
		context.Background(),
		models.CategoryWildfires, models.StatusOpen,
		models.NewDate(2025, 7, 1), models.NewDate(2025, 7, 31),
	)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(out) != 1 || out[0].Title != "match" {
		t.Fatalf("got %v", out)
	}
}

func TestCounts(t *testing.T) {
	s := NewStore()
	seed(t, s,
		models.Event{Title: "a", Category: models.CategoryFloods, Status: models.StatusOpen, Date: models.NewDate(2025, 7, 1)},
		models.Event{Title: "b", Category: models.CategoryFloods, Status: models.StatusClosed, Date: models.NewDate(2025, 7, 2)},
		models.Event{Title: "c", Category: models.CategorySnow, Status: models.StatusOpen, Date: models.NewDate(2025, 8, 1)},
	)
	ctx := context.Background()
	if n, _ := s.Count(ctx); n != 3 {
		t.Fatalf("count=%d", n)
	}
	if n, _ := s.CountByCategory(ctx, models.CategoryFloods); n != 2 {
		t.Fatalf("count=%d", n)
	}
	if n, _ := s.CountByStatus(ctx, models.StatusOpen); n != 2 {
		t.Fatalf("count=%d", n)
	}
	if n, _ := s.CountByDateBetween(ctx, models.NewDate(2025, 7, 1), models.NewDate(2025, 7, 31)); n != 2 {
		t.Fatalf("count=%d", n)
	}
}
