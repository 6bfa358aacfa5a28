package mapper

import (
	"testing"

	"eonet/internal/models"
)

func sampleEvent() *models.Event {
	return &models.Event{
		ID:        7,
		Title:     "Flood in Jakarta",
		Date:      models.NewDate(2025, 7, 1),
		Category:  models.CategoryFloods,
		Longitude: 106.85,
		Latitude:  -6.21,
		Status:    models.StatusOpen,
	}
}

func TestToDTO_RoundTrip(t *testing.T) {
	e := sampleEvent()
	d := ToDTO(e)
	if d.ID != e.ID || d.Title != e.Title {
		t.Fatalf("dto mismatch: %+v", d)
	}
	if d.Date == nil || !d.Date.Equal(e.Date) {
		t.Fatalf("date mismatch")
	}
	back := ToEntity(d)
	if *back != *e {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, e)
	}
}

func TestToDTO_Nil(t *testing.T) {
	if ToDTO(nil) != nil {
		t.Fatalf("nil event should map to nil dto")
	}
	if ToEntity(nil) != nil {
		t.Fatalf("nil dto should map to nil event")
	}
	if ToFormDTO(nil) != nil {
		t.Fatalf("nil event should map to nil form dto")
	}
	if FromFormDTO(nil) != nil {
		t.Fatalf("nil form dto should map to nil event")
	}
}

func TestToFormDTO_IDPresence(t *testing.T) {
	e := sampleEvent()
	f := ToFormDTO(e)
	if f.ID == nil || *f.ID != 7 {
		t.Fatalf("saved record must carry its id: %+v", f.ID)
	}

	e.ID = 0
	f = ToFormDTO(e)
	if f.ID != nil {
		t.Fatalf("unsaved record must omit the id")
	}
}

func TestFromFormDTO_KeepsID(t *testing.T) {
	e := sampleEvent()
	f := ToFormDTO(e)
	back := FromFormDTO(f)
	if *back != *e {
		t.Fatalf("form round trip mismatch: %+v vs %+v", back, e)
	}
}

func TestToDTOList_Empty(t *testing.T) {
	out := ToDTOList(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("empty input must yield empty non-nil slice, got %v", out)
	}
}
