// Package analytics implements the training-load analytics engine: the pure
// computation that turns a program's nested grid of free-text cells into a
// weekly exercise volume series and a per-day fatigue series with an
// exponentially decaying residual-fatigue model.
//
// The engine is a deterministic, synchronous transform with no I/O and no
// shared state; it is safe to invoke concurrently from independent callers.
// Malformed user input never produces errors here: every parse or lookup
// failure degrades to a zero contribution instead.
package analytics
