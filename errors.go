package gfx

import "errors"

// Backend errors. Container decoding errors (malformed or unsupported DDS
// data) are defined in the dds package and pass through LoadTexture
// unchanged.
var (
	// ErrPoolExhausted is returned when a handle pool has no free slot.
	// Pools never grow; the caller decides what to give up.
	ErrPoolExhausted = errors.New("gfx: handle pool exhausted")

	// ErrInvalidHandle is returned when an operation dereferences the zero
	// handle.
	ErrInvalidHandle = errors.New("gfx: invalid handle")

	// ErrStaleHandle is returned when a handle outlives its resource: the
	// slot was destroyed, and possibly reused, since the handle was issued.
	ErrStaleHandle = errors.New("gfx: stale handle")

	// ErrDriverFailure is returned when the graphics driver rejects an
	// operation. Partially created driver objects are torn down first.
	ErrDriverFailure = errors.New("gfx: driver failure")

	// ErrThreadViolation is returned when a graphics-thread operation is
	// called from another goroutine.
	ErrThreadViolation = errors.New("gfx: call off the graphics goroutine")

	// ErrTypeMismatch is returned when a uniform write does not match the
	// declared type of the uniform.
	ErrTypeMismatch = errors.New("gfx: uniform type mismatch")
)
