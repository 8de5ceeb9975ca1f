package translate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingKey is returned by New when no API key is given.
	ErrMissingKey = errors.New("translate: api key is required")

	// ErrSizeLimitExceeded matches every *SizeLimitError.
	ErrSizeLimitExceeded = errors.New("translate: text size limit exceeded")

	// ErrNoText is returned when translate or detect is called without text.
	ErrNoText = errors.New("translate: at least one text is required")
)

// SizeLimitError reports a text payload over the applicable ceiling.
type SizeLimitError struct {
	Length     int
	Limit      int
	LargeQuery bool
}

func (e *SizeLimitError) Error() string {
	if e.LargeQuery {
		return fmt.Sprintf("translate: text content is %d characters, the service allows at most %d", e.Length, e.Limit)
	}
	return fmt.Sprintf("translate: text content is %d characters, must be under %d; enable LargeQuery to allow up to %d",
		e.Length, e.Limit, MaxLargeQueryLength)
}

// Is makes errors.Is(err, ErrSizeLimitExceeded) hold.
func (e *SizeLimitError) Is(target error) bool {
	return target == ErrSizeLimitExceeded
}

// ErrorDetail is one entry of the service's error detail list.
type ErrorDetail struct {
	Domain       string `json:"domain"`
	Reason       string `json:"reason"`
	Message      string `json:"message"`
	LocationType string `json:"locationType"`
	Location     string `json:"location"`
}

// ServiceError is a populated error object returned by the service.
type ServiceError struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Errors  []ErrorDetail `json:"errors"`
}

func (e *ServiceError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if len(e.Errors) > 0 {
		sb.WriteString(" Reason: ")
		sb.WriteString(e.Errors[0].Reason)
	}
	if sb.Len() == 0 {
		return "translate: the service returned an error without a message"
	}
	return sb.String()
}

// Reason returns the reason of the first detail record, if any.
func (e *ServiceError) Reason() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Reason
}

// UnexpectedResponseError is returned for bodies that are neither a success
// payload nor an error object.
type UnexpectedResponseError struct {
	StatusCode int
	Body       string
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("translate: unexpected response (status %d): %s", e.StatusCode, e.Body)
}
