package models

import (
	"encoding/json"
	"strings"

	"eonet/internal/apperr"
)

// Status marks an event as ongoing or concluded.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// ParseStatus normalizes case before matching ("Open" is accepted) and
// always returns the canonical lower-case value for storage.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusOpen:
		return StatusOpen, nil
	case StatusClosed:
		return StatusClosed, nil
	}
	return "", apperr.InvalidStatus(s)
}

func (s Status) Valid() bool {
	return s == StatusOpen || s == StatusClosed
}

func (s Status) String() string {
	return string(s)
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
