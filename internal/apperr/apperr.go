package apperr

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Stable error codes of the API. Clients match on these, never on messages.
const (
	CodeEventNotFound     = "EVENT_NOT_FOUND"
	CodeInvalidEventData  = "INVALID_EVENT_DATA"
	CodeInvalidDate       = "INVALID_DATE"
	CodeInvalidCoordinate = "INVALID_COORDINATE"
	CodeInvalidCategory   = "INVALID_CATEGORY"
	CodeInvalidStatus     = "INVALID_STATUS"
	CodeTypeMismatch      = "TYPE_MISMATCH"
	CodeValidationError   = "VALIDATION_ERROR"
	CodeMalformedJSON     = "MALFORMED_JSON"
	CodeInternal          = "INTERNAL_SERVER_ERROR"
)

// Error is a domain failure with a stable code and an HTTP status
// equivalent. Services return it, the transport layer renders it.
type Error struct {
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

func EventNotFound(id uint64) *Error {
	return &Error{
		Code:    CodeEventNotFound,
		Message: fmt.Sprintf("event with id %d was not found", id),
		Status:  http.StatusNotFound,
	}
}

func MissingField(field string) *Error {
	return &Error{
		Code:    CodeInvalidEventData,
		Message: fmt.Sprintf("%s must not be empty", field),
		Status:  http.StatusBadRequest,
	}
}

func FieldTooShort(field string, min int) *Error {
	return &Error{
		Code:    CodeInvalidEventData,
		Message: fmt.Sprintf("%s must be at least %d characters long", field, min),
		Status:  http.StatusBadRequest,
	}
}

func FieldTooLong(field string, max int) *Error {
	return &Error{
		Code:    CodeInvalidEventData,
		Message: fmt.Sprintf("%s must be at most %d characters long", field, max),
		Status:  http.StatusBadRequest,
	}
}

func FutureDate(date string) *Error {
	return &Error{
		Code:    CodeInvalidDate,
		Message: fmt.Sprintf("date %s lies in the future", date),
		Status:  http.StatusBadRequest,
	}
}

func CoordinateOutOfRange(field string, value float64) *Error {
	return &Error{
		Code:    CodeInvalidCoordinate,
		Message: fmt.Sprintf("%s %v is outside the valid range", field, value),
		Status:  http.StatusBadRequest,
	}
}

// InvalidCategory lists the allowed labels so callers can self-correct.
func InvalidCategory(value string, allowed []string) *Error {
	return &Error{
		Code:    CodeInvalidCategory,
		Message: fmt.Sprintf("category '%s' is not valid. Valid categories: %s", value, strings.Join(allowed, ", ")),
		Status:  http.StatusBadRequest,
	}
}

func InvalidStatus(value string) *Error {
	return &Error{
		Code:    CodeInvalidStatus,
		Message: fmt.Sprintf("status '%s' is not valid. Allowed values: open, closed", value),
		Status:  http.StatusBadRequest,
	}
}

func TypeMismatch(param, value string) *Error {
	return &Error{
		Code:    CodeTypeMismatch,
		Message: fmt.Sprintf("parameter '%s' has an invalid value '%s'", param, value),
		Status:  http.StatusBadRequest,
	}
}

// ValidationError aggregates required-field violations into a single
// message. Field order is deterministic so the message is testable.
func ValidationError(fields map[string]string) *Error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, name := range names {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteString(" - ")
		b.WriteString(fields[name])
	}
	return &Error{
		Code:    CodeValidationError,
		Message: b.String(),
		Status:  http.StatusBadRequest,
	}
}

func MalformedJSON(cause error) *Error {
	msg := "request body could not be read"
	if cause != nil {
		msg = fmt.Sprintf("request body could not be read: %v", cause)
	}
	return &Error{
		Code:    CodeMalformedJSON,
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// Internal carries the same generic message regardless of the cause;
// the cause is logged server-side and never reaches the client.
func Internal() *Error {
	return &Error{
		Code:    CodeInternal,
		Message: "an unexpected error occurred, please try again later",
		Status:  http.StatusInternalServerError,
	}
}
