// Package v1 holds the business logic for API version 1.
//
// Error handling: the package defines sentinel errors wrapped with
// fmt.Errorf("…: %w") on the way out and matched with errors.Is in the web
// layer, which owns the mapping to HTTP statuses.
package v1

import "errors"

// Sentinel errors for the logic layer.
var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. The two cases are intentionally a single category so the
	// caller cannot enumerate usernames.
	// HTTP Status: 401 Unauthorized
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound indicates a referenced record (client, boat, reservation,
	// invoice, maintenance) does not exist.
	// HTTP Status: 404 Not Found
	ErrNotFound = errors.New("not found")

	// ErrInvalidPeriod indicates an unparseable or inverted reservation period.
	// HTTP Status: 400 Bad Request
	ErrInvalidPeriod = errors.New("invalid reservation period")

	// ErrInvalidStatus indicates an unknown reservation status value.
	// HTTP Status: 400 Bad Request
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidMethod indicates an unknown payment method.
	// HTTP Status: 400 Bad Request
	ErrInvalidMethod = errors.New("invalid payment method")
)
