// Package errs defines the error taxonomy shared by the reconciler, the
// Management API client, and the CLI boundary.
//
// Three kinds of failure exist:
//
//   - ValidationError: a local precondition violation detected before any
//     remote call. Never retried.
//   - the remote vendor error (analytics.Error): a rejected Management API
//     call, classified for retry by the retry wrapper.
//   - ServiceError: a generic wrapper applied at the reconciler and CLI
//     boundaries, accumulating a chain of call-site markers for diagnostics.
package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/analyticsops/uaconf/internal/platform/analytics"
)

// ValidationError reports a local precondition violation.
type ValidationError struct {
	// Status is the HTTP-style status the violation maps to.
	Status int

	// Code is the internal error code derived from Status. The two
	// trailing decimal digits are reserved for sub-codes.
	Code int

	Message string
}

// NewValidation creates a ValidationError for the given status.
func NewValidation(status int, message string) *ValidationError {
	return &ValidationError{
		Status:  status,
		Code:    status * 100,
		Message: message,
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (status %d, code %d): %s", e.Status, e.Code, e.Message)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsRemote reports whether err is (or wraps) a Management API error.
func IsRemote(err error) bool {
	var r *analytics.Error
	return errors.As(err, &r)
}

// IsTransientRemote reports whether err is a Management API error the
// retry wrapper would classify as transient.
func IsTransientRemote(err error) bool {
	return analytics.IsTransient(err)
}

// ServiceError wraps an arbitrary error with a call-site marker. Wrapping a
// prior ServiceError extends its marker chain, so the outermost error
// carries the full causal path from the innermost call site outward.
type ServiceError struct {
	op    string
	err   error
	chain []string
}

// Wrap annotates err with the call-site marker op. Returns nil when err is
// nil so call sites can wrap unconditionally.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	se := &ServiceError{op: op, err: err}
	var prior *ServiceError
	if errors.As(err, &prior) {
		se.chain = append(append([]string(nil), prior.chain...), op)
	} else {
		se.chain = []string{op}
	}
	return se
}

// Error renders the compact single-line form.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.op, e.err)
}

func (e *ServiceError) Unwrap() error {
	return e.err
}

// Chain returns the call-site markers from the innermost wrap outward.
func (e *ServiceError) Chain() []string {
	return append([]string(nil), e.chain...)
}

// Record returns the structured key/value form, suitable for passing to a
// logr.Logger or serializing into a log record.
func (e *ServiceError) Record() []any {
	return []any{
		"op", e.op,
		"chain", strings.Join(e.chain, ","),
		"cause", rootCause(e).Error(),
	}
}

// Verbose renders the multi-line form including the full causal chain.
func (e *ServiceError) Verbose() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", e.Error())
	fmt.Fprintf(&b, "call chain (innermost first):\n")
	for _, op := range e.chain {
		fmt.Fprintf(&b, "  %s\n", op)
	}
	fmt.Fprintf(&b, "cause: %v", rootCause(e))
	return b.String()
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
