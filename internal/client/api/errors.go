package api

import (
	"encoding/json"
	"fmt"

	"github.com/pablomagana/recomenzar/internal/common"
)

// serverError is the backend's error body shape.
type serverError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// StatusError carries a non-2xx response that has no dedicated sentinel.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.Status)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Message)
}

// mapStatus translates an HTTP status plus response body into the error
// taxonomy. 2xx maps to nil.
func mapStatus(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	var se serverError
	_ = json.Unmarshal(body, &se)

	switch {
	case status == 401 || status == 403:
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, nonEmpty(se.Message, "authentication required"))
	case status == 404:
		return common.ErrNotFound
	default:
		return &StatusError{Status: status, Message: se.Message}
	}
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
