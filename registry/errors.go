package registry

import "errors"

var (
	// ErrLocked indicates a mutation attempted while the registry is locked.
	ErrLocked = errors.New("registry: locked")
	// ErrInvalidCode indicates a code rejected by the validity check.
	ErrInvalidCode = errors.New("registry: invalid code")
	// ErrDuplicateActiveCode indicates a code already registered as active.
	ErrDuplicateActiveCode = errors.New("registry: duplicate active code")
	// ErrDuplicateLegacyCode indicates a code already registered as legacy.
	ErrDuplicateLegacyCode = errors.New("registry: duplicate legacy code")
	// ErrNotFound indicates a lookup miss on a failing lookup variant.
	ErrNotFound = errors.New("registry: not found")
)
