package registry

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Options control registry behavior.
type Options struct {
	// Validator is an optional format rule applied to every code on
	// registration, on top of the built-in non-empty check. The code format
	// is intentionally unconstrained for now; this is the hook for future
	// rules.
	Validator func(code string) error
}

// Option modifies Options.
type Option func(*Options)

// WithValidator installs a custom code format rule.
func WithValidator(fn func(code string) error) Option {
	return func(o *Options) { o.Validator = fn }
}

// Registry is a code↔type table with an active/legacy code distinction.
// T is the type descriptor, compared by identity (==). It is safe for
// concurrent use; every operation runs under a single mutex.
type Registry[T comparable] struct {
	mu sync.Mutex

	active map[string]T
	legacy map[string]T

	// Insertion order of the maps above. Group and alias listings promise
	// registration order, which Go maps do not keep.
	activeOrder []string
	legacyOrder []string

	// Codes registered through the direct path, in call order.
	direct []string

	locked atomic.Bool
	opt    Options
}

// New creates an empty registry with the provided options.
func New[T comparable](opts ...Option) *Registry[T] {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	return &Registry[T]{
		active: make(map[string]T),
		legacy: make(map[string]T),
		opt:    o,
	}
}

// Register adds code as the active code for v, plus any legacy aliases.
// Codes registered this way are tracked and removed by ClearDirect; use Def
// for definition-time registration that should survive teardown.
func (r *Registry[T]) Register(code string, v T, legacyCodes ...string) error {
	return r.define(code, v, legacyCodes, true)
}

// Def adds code as the active code for v, plus any legacy aliases, through
// the definition-time path. It is meant to run at package initialization,
// before the registry is first consulted.
func (r *Registry[T]) Def(code string, v T, legacyCodes ...string) error {
	return r.define(code, v, legacyCodes, false)
}

func (r *Registry[T]) define(code string, v T, legacyCodes []string, direct bool) error {
	if r.Locked() {
		return fmt.Errorf("%w: cannot register %q", ErrLocked, code)
	}
	if err := r.checkCode(code); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.active[code]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateActiveCode, code)
	}
	if _, exists := r.legacy[code]; exists {
		return fmt.Errorf("%w: %q already registered as a legacy code", ErrDuplicateLegacyCode, code)
	}

	// Validate every legacy code before touching any state, so a single bad
	// alias aborts the whole call with no partial registration.
	seen := make(map[string]struct{}, len(legacyCodes))
	for _, lc := range legacyCodes {
		if err := r.checkCode(lc); err != nil {
			return err
		}
		if _, exists := r.legacy[lc]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateLegacyCode, lc)
		}
		if _, exists := r.active[lc]; exists {
			return fmt.Errorf("%w: %q already registered as an active code", ErrDuplicateActiveCode, lc)
		}
		if lc == code {
			return fmt.Errorf("%w: %q also listed as its own legacy code", ErrDuplicateActiveCode, lc)
		}
		if _, dup := seen[lc]; dup {
			return fmt.Errorf("%w: %q listed twice", ErrDuplicateLegacyCode, lc)
		}
		seen[lc] = struct{}{}
	}

	for _, lc := range legacyCodes {
		r.legacy[lc] = v
		r.legacyOrder = append(r.legacyOrder, lc)
	}
	r.active[code] = v
	r.activeOrder = append(r.activeOrder, code)

	if direct {
		r.direct = append(r.direct, code)
	}
	return nil
}

// checkCode applies the built-in non-empty rule and the optional validator.
func (r *Registry[T]) checkCode(code string) error {
	if code == "" {
		return fmt.Errorf("%w: empty code", ErrInvalidCode)
	}
	if r.opt.Validator != nil {
		if err := r.opt.Validator(code); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidCode, code, err)
		}
	}
	return nil
}

// Remove deletes code from whichever of the active or legacy tables contains
// it. It reports false, without mutating anything, when the registry is
// locked or the code is unknown.
func (r *Registry[T]) Remove(code string) bool {
	if r.Locked() {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.active[code]; ok {
		delete(r.active, code)
		r.activeOrder = removeCode(r.activeOrder, code)
		return true
	}
	if _, ok := r.legacy[code]; ok {
		delete(r.legacy, code)
		r.legacyOrder = removeCode(r.legacyOrder, code)
		return true
	}
	return false
}

// ClearDirect removes every code registered through Register, in
// registration order. It returns false as soon as one removal fails (locked
// registry, or a code already gone), keeping the tracked list so the caller
// can inspect and retry. On full success the list is cleared and subsequent
// calls succeed trivially.
func (r *Registry[T]) ClearDirect() bool {
	r.mu.Lock()
	pending := make([]string, len(r.direct))
	copy(pending, r.direct)
	r.mu.Unlock()

	for _, code := range pending {
		if !r.Remove(code) {
			return false
		}
	}

	r.mu.Lock()
	r.direct = nil
	r.mu.Unlock()
	return true
}

// Lookup resolves code to its descriptor, consulting the active table first
// and the legacy table second.
func (r *Registry[T]) Lookup(code string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.active[code]; ok {
		return v, true
	}
	if v, ok := r.legacy[code]; ok {
		return v, true
	}
	var zero T
	return zero, false
}

// Resolve is the failing variant of Lookup.
func (r *Registry[T]) Resolve(code string) (T, error) {
	if v, ok := r.Lookup(code); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: no type for code %q", ErrNotFound, code)
}

// LookupActiveCode returns the active code of v. Descriptor lookups scan the
// table linearly; code lookups are the constant-time direction.
func (r *Registry[T]) LookupActiveCode(v T) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeCodeLocked(v)
}

// ActiveCode is the failing variant of LookupActiveCode.
func (r *Registry[T]) ActiveCode(v T) (string, error) {
	if code, ok := r.LookupActiveCode(v); ok {
		return code, nil
	}
	return "", fmt.Errorf("%w: no active code for %v", ErrNotFound, v)
}

// AllCodes returns every code of v: the active code first, then the legacy
// codes in registration order. Legacy codes alone do not satisfy the call;
// a type without an active code is reported as not found.
func (r *Registry[T]) AllCodes(v T) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	codes, ok := r.allCodesLocked(v)
	if !ok {
		return nil, fmt.Errorf("%w: no active code for %v", ErrNotFound, v)
	}
	return codes, nil
}

func (r *Registry[T]) activeCodeLocked(v T) (string, bool) {
	for _, code := range r.activeOrder {
		if r.active[code] == v {
			return code, true
		}
	}
	return "", false
}

func (r *Registry[T]) allCodesLocked(v T) ([]string, bool) {
	code, ok := r.activeCodeLocked(v)
	if !ok {
		return nil, false
	}
	codes := []string{code}
	for _, lc := range r.legacyOrder {
		if r.legacy[lc] == v {
			codes = append(codes, lc)
		}
	}
	return codes, true
}

// SetLocked sets the freeze gate. While locked, no codes may be registered
// or removed; lookups keep working. Unlike a one-way seal, the gate is
// reversible so tests can thaw a registry they inherited locked.
func (r *Registry[T]) SetLocked(locked bool) { r.locked.Store(locked) }

// Locked reports whether the registry is frozen.
func (r *Registry[T]) Locked() bool { return r.locked.Load() }

// Reset empties the registry and unlocks it. Meant for test isolation.
func (r *Registry[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.active = make(map[string]T)
	r.legacy = make(map[string]T)
	r.activeOrder = nil
	r.legacyOrder = nil
	r.direct = nil
	r.locked.Store(false)
}

// Len returns the total number of registered codes, active and legacy.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active) + len(r.legacy)
}

func removeCode(codes []string, code string) []string {
	for i, c := range codes {
		if c == code {
			return append(codes[:i], codes[i+1:]...)
		}
	}
	return codes
}
