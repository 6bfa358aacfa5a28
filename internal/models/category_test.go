package models

import (
	"encoding/json"
	"errors"
	"testing"

	"eonet/internal/apperr"
)

func TestParseCategory_CaseSensitive(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"wildfires", true},
		{"severeStorms", true},
		{"waterColor", true},
		{"Wildfires", false},
		{"SEVERESTORMS", false},
		{"severestorms", false},
		{"tsunami", false},
		{"", false},
	}
	for _, tt := range tests {
		_, err := ParseCategory(tt.in)
		if tt.ok && err != nil {
			t.Fatalf("ParseCategory(%q) err=%v", tt.in, err)
		}
		if !tt.ok && err == nil {
			t.Fatalf("ParseCategory(%q) expected error", tt.in)
		}
	}
}

func TestParseCategory_ErrorListsAllowed(t *testing.T) {
	_, err := ParseCategory("tornado")
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected *apperr.Error, got %T", err)
	}
	if ae.Code != apperr.CodeInvalidCategory {
		t.Fatalf("code=%q want %q", ae.Code, apperr.CodeInvalidCategory)
	}
}

func TestCategory_UnmarshalJSON(t *testing.T) {
	var c Category
	if err := json.Unmarshal([]byte(`"floods"`), &c); err != nil {
		t.Fatalf("err=%v", err)
	}
	if c != CategoryFloods {
		t.Fatalf("got %q", c)
	}

	err := json.Unmarshal([]byte(`"Floods"`), &c)
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected typed error through json, got %T: %v", err, err)
	}
	if ae.Code != apperr.CodeInvalidCategory {
		t.Fatalf("code=%q", ae.Code)
	}
}

func TestCategoryNames_SortedComplete(t *testing.T) {
	names := CategoryNames()
	if len(names) != 12 {
		t.Fatalf("len=%d want 12", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}
