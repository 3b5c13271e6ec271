// Package analytics provides a client for the Universal Analytics
// Management API.
//
// The package exposes one get/list/insert/patch primitive per resource kind
// behind the Client interface. RealClient implements it over REST with an
// oauth2-backed HTTP client; MockClient provides per-operation function
// fields for tests; NewDryRun decorates any Client so that writes are
// suppressed and answered locally.
//
// Rejected calls surface as *Error, preserving the vendor's structured
// sub-error list so callers can classify transient failures with
// IsTransient.
package analytics
