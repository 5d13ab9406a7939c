// Package store defines the persistence interfaces and shared store errors
// for the training log: users, the program hierarchy, stats settings, and
// competitions. Implementations live under internal/platform.
package store
