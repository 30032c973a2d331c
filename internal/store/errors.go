package store

import "errors"

// Sentinel errors returned by [Store] mutations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrTaskNotFound is returned when no task has the requested id.
	ErrTaskNotFound = errors.New("task not found")

	// ErrCapacityReached is returned by [Store.Add] when the store already
	// holds the configured maximum number of tasks.
	ErrCapacityReached = errors.New("maximum number of tasks reached")

	// ErrAlreadyCompleted is returned by [Store.Complete] for a task that is
	// already done.
	ErrAlreadyCompleted = errors.New("task already completed")

	// ErrInvalidPriority is returned when a mutation receives a priority
	// outside the declared enumeration.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrIDSpaceExhausted is returned by [Store.Add] once the largest
	// representable id has been handed out.
	ErrIDSpaceExhausted = errors.New("no task ids left")
)

// ErrInvalidUTF8 is reported, wrapped with models.ErrEncoding, when the
// (decrypted) file content is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")
