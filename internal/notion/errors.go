package notion

import (
	"errors"
	"fmt"
)

// APIError is a Notion error object, decoded from a non-2xx response body.
type APIError struct {
	StatusCode int    `json:"status"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion api error: %s (code=%s, status=%d)", e.Message, e.Code, e.StatusCode)
}

// IsUnauthorized reports whether err is a credential rejection by Notion.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == "unauthorized" || apiErr.Code == "restricted_resource"
}

// IsNotFound reports whether err means the id did not resolve to an object
// the integration can see.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == "object_not_found"
}
