package model

import "errors"

// Sentinel errors shared by the planning stores and the sync engine.
// Callers match them with errors.Is.
var (
	// ErrNotFound is returned when a referenced plan, task, or bucket
	// does not exist at operation time.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when an operation would violate an
	// ownership invariant, such as deleting a task that was synced
	// from a weekly plan through the generic removal path.
	ErrForbidden = errors.New("operation forbidden")

	// ErrIndexOutOfRange is returned when a drag or reorder index lies
	// outside the current bounds of an ordered list. Interactive
	// callers treat it as a no-op since the list may have changed
	// between gesture start and drop.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidDate is returned by the week resolver for zero time
	// values instead of silently substituting the current date.
	ErrInvalidDate = errors.New("invalid date")
)
