package analytics

import (
	"errors"
	"fmt"
)

// Transient error reasons the Management API uses for conditions that
// resolve themselves. The retry wrapper consults the first sub-error only,
// matching the vendor's documented error layout.
const (
	ReasonRateLimitExceeded     = "rateLimitExceeded"
	ReasonQuotaExceeded         = "quotaExceeded"
	ReasonUserRateLimitExceeded = "userRateLimitExceeded"
	ReasonBackendError          = "backendError"

	ReasonNotFound = "notFound"
)

// ErrorItem is one entry of the vendor's structured sub-error list.
type ErrorItem struct {
	Domain  string `json:"domain,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// Error is a rejected Management API call: response status code, status
// message, and the vendor's sub-error list in one shape.
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Errors  []ErrorItem `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	if r := e.Reason(); r != "" {
		return fmt.Sprintf("analytics API error %d (%s): %s", e.Code, r, e.Message)
	}
	return fmt.Sprintf("analytics API error %d: %s", e.Code, e.Message)
}

// Reason returns the vendor error-type code of the first sub-error, or ""
// when the sub-error list is absent.
func (e *Error) Reason() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Reason
}

// errorEnvelope is the JSON body the API wraps rejections in.
type errorEnvelope struct {
	Error *Error `json:"error"`
}

// IsTransient reports whether err is a Management API error whose first
// sub-error reason indicates the caller should retry. Errors without the
// structured sub-error list are never transient.
func IsTransient(err error) bool {
	switch Reason(err) {
	case ReasonRateLimitExceeded, ReasonQuotaExceeded, ReasonUserRateLimitExceeded, ReasonBackendError:
		return true
	}
	return false
}

// Reason extracts the vendor error-type code from err, or "" when err is
// not a Management API error or carries no sub-errors.
func Reason(err error) string {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return ""
	}
	return apiErr.Reason()
}

// IsNotFound reports whether err indicates a missing resource.
func IsNotFound(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == 404 || apiErr.Reason() == ReasonNotFound
}

// IsRateLimited reports whether err indicates rate limiting.
func IsRateLimited(err error) bool {
	switch Reason(err) {
	case ReasonRateLimitExceeded, ReasonUserRateLimitExceeded:
		return true
	}
	return false
}
