package models

import "errors"

// Error kinds reported by the composition engine. Callers match them with
// errors.Is; the wrapped message carries the offending name or value.
var (
	// ErrNotFound is returned when a requested component or template name has
	// no catalog match.
	ErrNotFound = errors.New("not found")

	// ErrInvalidComposition is returned when a builder is finalized without a
	// base or without at least one piece.
	ErrInvalidComposition = errors.New("invalid composition")

	// ErrInvariantViolation is returned when a piece's side does not list the
	// owning pizza's name among its allowed pizzas.
	ErrInvariantViolation = errors.New("side not allowed for pizza")

	// ErrInvalidArgument is returned for non-positive counts, mismatched
	// parallel arrays and non-divisible piece counts.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidBaseConsistency is returned when combined-pizza sources do
	// not share an identical base.
	ErrInvalidBaseConsistency = errors.New("sources do not share a base")

	// ErrCatalogLoad is returned when the menu data is unreadable, a record
	// is malformed or the base price validation fails. A catalog that failed
	// to load is never returned partially populated.
	ErrCatalogLoad = errors.New("catalog load failed")
)
