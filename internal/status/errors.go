package status

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode wraps every failure to decode the response body.
	ErrDecode = errors.New("decode metro status")
	// ErrInvalidDate indicates the report date is missing or unparsable.
	ErrInvalidDate = errors.New("invalid report date")
)

// StatusError is returned when the endpoint answers with a non-200 code.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed: status code %d", e.Code)
}

// ContentTypeError is returned when the endpoint does not answer with JSON.
type ContentTypeError struct {
	ContentType string
}

func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("invalid content-type: expected application/json but received %q", e.ContentType)
}
