// Package service provides application-level services for managing users,
// training programs, stats settings, analytics, and competition results.
// Services enforce ownership and orchestrate stores; they never touch HTTP.
package service
