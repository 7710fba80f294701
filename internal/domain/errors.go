package domain

import "errors"

// Error taxonomy shared across the pipeline and the serving layer.
// Callers branch with errors.Is; adapters wrap these with context.
var (
	// ErrNetwork signals a fetch that exhausted its retry budget.
	// Terminal for the current refresh cycle.
	ErrNetwork = errors.New("network error")

	// ErrNotModified signals that the remote source content is unchanged
	// after the change detector exhausted its polling budget. The cycle
	// ends without producing a new snapshot.
	ErrNotModified = errors.New("source not modified")

	// ErrParse signals a malformed CSV or feed payload. Terminal for the
	// current refresh cycle.
	ErrParse = errors.New("parse error")

	// ErrNotFound signals a missing persisted file. Non-fatal: the serving
	// layer answers 404, the vaccine merger skips the entity.
	ErrNotFound = errors.New("file not found")
)
