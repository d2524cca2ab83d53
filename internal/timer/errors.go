package timer

import "errors"

var (
	// ErrInvalidTag is returned by Start when a Work phase would begin
	// with no tag selected (empty registry).
	ErrInvalidTag = errors.New("no tag selected: add a tag before starting a work session")

	// ErrUnknownTag is returned when a named tag is not in the registry.
	ErrUnknownTag = errors.New("unknown tag")

	// ErrDuplicateTag is returned by Add when the name already exists.
	// Matching is case-sensitive.
	ErrDuplicateTag = errors.New("tag already exists")

	// ErrProtectedTag is returned when removing the last remaining tag
	// while a work interval is in progress with that tag selected.
	ErrProtectedTag = errors.New("tag is in use by the current work session")
)
