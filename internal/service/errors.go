package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check these with errors.Is(); the API layer maps them to HTTP
// status codes.
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrNotOwned indicates a resource is owned by a different user than the
	// one making the request. The API layer maps this to HTTP 404 rather
	// than 403 so resource existence is not leaked across accounts.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrInvalidCredentials indicates a login attempt with an unknown email
	// or wrong password. The API layer maps this to HTTP 401 without
	// distinguishing the two cases.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSettingsNotConfigured indicates stats were requested for a program
	// that has no stats settings yet, so column labels cannot be resolved.
	// The API layer maps this to HTTP 409 Conflict.
	ErrSettingsNotConfigured = errors.New("stats settings not configured for program")
)
