package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-07-01")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if d.String() != "2025-07-01" {
		t.Fatalf("got %q", d.String())
	}

	for _, in := range []string{"2025-13-01", "01-07-2025", "2025-07-01T00:00:00Z", "yesterday"} {
		if _, err := ParseDate(in); err == nil {
			t.Fatalf("ParseDate(%q) expected error", in)
		}
	}
}

func TestDateOf_TruncatesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	// 01:30 on Jul 2 in UTC+9 is still Jul 1 in UTC.
	d := DateOf(time.Date(2025, 7, 2, 1, 30, 0, 0, loc))
	if d.String() != "2025-07-01" {
		t.Fatalf("got %q", d.String())
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2025, 7, 1)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if string(b) != `"2025-07-01"` {
		t.Fatalf("marshal=%s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("err=%v", err)
	}
	if !back.Equal(d) {
		t.Fatalf("round trip mismatch: %v vs %v", back, d)
	}

	var zero Date
	if err := json.Unmarshal([]byte("null"), &zero); err != nil {
		t.Fatalf("err=%v", err)
	}
	if !zero.IsZero() {
		t.Fatalf("null should decode to zero date")
	}

	if err := json.Unmarshal([]byte("20250701"), &back); err == nil {
		t.Fatalf("expected error for unquoted date")
	}
}

func TestDate_Scan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2025, 7, 1, 15, 4, 5, 0, time.UTC)); err != nil {
		t.Fatalf("err=%v", err)
	}
	if d.String() != "2025-07-01" {
		t.Fatalf("got %q", d.String())
	}
	if err := d.Scan("2025-07-02"); err != nil {
		t.Fatalf("err=%v", err)
	}
	if d.String() != "2025-07-02" {
		t.Fatalf("got %q", d.String())
	}
	if err := d.Scan(42); err == nil {
		t.Fatalf("expected error for int scan")
	}
}
