package provider

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a provider-reported call failure. It carries the HTTP-like
// status of the response and the provider's own error code string.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider error %s (status %d): %s", e.Code, e.StatusCode, e.Message)
}

// notFoundCode is the provider's error code for a missing entity.
const notFoundCode = "NoSuchEntity"

// IsNotFound reports whether err is a provider error meaning the requested
// entity does not exist.
func IsNotFound(err error) bool {
	var perr *Error
	if !errors.As(err, &perr) {
		return false
	}
	return perr.StatusCode == http.StatusNotFound || perr.Code == notFoundCode
}
