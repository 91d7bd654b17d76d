// Package storage defines the error taxonomy shared by every repository
// backend. Backends translate vendor-specific failures (Postgres error codes,
// REST status codes) into these errors in exactly one place each, so call
// sites never pattern-match on driver details.
package storage

import "errors"

var (
	// ErrNotFound reports that a targeted update or delete matched no row.
	// Plain lookups never return it; Get operations report absence with a
	// false second return value instead.
	ErrNotFound = errors.New("storage row not found")

	// ErrConflict reports a uniqueness violation or an illegal state
	// transition detected by the backing store.
	ErrConflict = errors.New("storage conflict")

	// ErrUnavailable reports that the backing store could not serve the
	// request (connection failure, missing relation, hosted API outage).
	ErrUnavailable = errors.New("storage unavailable")
)
