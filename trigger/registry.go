// Package trigger lets a caller attach actions to named target functions so
// that each invocation of a wrapped target runs the matching actions before
// the call, after a successful call, or when the call returns an error.
package trigger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/xid"
)

// Errors returned by registration and wrapping calls.
var (
	ErrInvalidPlacement = errors.New("invalid placement")
	ErrNilAction        = errors.New("action must not be nil")
	ErrNilTarget        = errors.New("target function must not be nil")
	ErrEmptyTargetName  = errors.New("target name must not be empty")
	ErrAlreadyWrapped   = errors.New("target is already wrapped")
)

// A Registry maps target names to the ordered list of actions registered
// against them. A Registry is shared mutable state. The lock only makes
// concurrent access safe; the intended use is a single thread of control.
type Registry struct {
	mu        sync.RWMutex
	entries   map[string][]*ActionEntry
	wrapped   map[string]*Wrapped
	suspended int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string][]*ActionEntry),
		wrapped: make(map[string]*Wrapped),
	}
}

// Register appends an action to the target's list and returns the ID of the
// new entry. Registering the same action twice creates two entries that both
// fire; no deduplication is performed.
func (r *Registry) Register(
	target string,
	action Action,
	pos *Placement,
) (string, error) {
	return r.register(target, action, pos, nil)
}

// RegisterConditional is like Register, but the entry only fires for calls
// where every predicate evaluates true.
func (r *Registry) RegisterConditional(
	target string,
	action Action,
	pos *Placement,
	predicates ...Predicate,
) (string, error) {
	return r.register(target, action, pos, allOf(predicates))
}

// Attach registers one action against multiple targets. The returned IDs
// follow the order of the targets. All targets are validated up front, so
// either every registration happens or none does.
func (r *Registry) Attach(
	action Action,
	pos *Placement,
	targets ...string,
) ([]string, error) {
	for _, target := range targets {
		if target == "" {
			return nil, ErrEmptyTargetName
		}
	}

	if action == nil {
		return nil, ErrNilAction
	}

	if !isKnownPlacement(pos) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlacement, pos)
	}

	ids := make([]string, 0, len(targets))
	for _, target := range targets {
		id, err := r.register(target, action, pos, nil)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func (r *Registry) register(
	target string,
	action Action,
	pos *Placement,
	predicate Predicate,
) (string, error) {
	if target == "" {
		return "", ErrEmptyTargetName
	}

	if action == nil {
		return "", ErrNilAction
	}

	if !isKnownPlacement(pos) {
		return "", fmt.Errorf("%w: %v", ErrInvalidPlacement, pos)
	}

	entry := &ActionEntry{
		ID:        xid.New().String(),
		Action:    action,
		Pos:       pos,
		Predicate: predicate,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[target] = append(r.entries[target], entry)

	return entry.ID, nil
}

// Lookup returns the target's entries for one placement, in registration
// order. A target with no entries returns an empty slice. While the registry
// is suspended, Lookup returns nothing.
func (r *Registry) Lookup(target string, pos *Placement) []*ActionEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.suspended > 0 {
		return nil
	}

	var matched []*ActionEntry
	for _, entry := range r.entries[target] {
		if entry.Pos == pos {
			matched = append(matched, entry)
		}
	}

	return matched
}

// Unregister removes the entry with the given ID from the target's list. It
// reports whether an entry was removed.
func (r *Registry) Unregister(target, entryID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.entries[target]
	for i, entry := range entries {
		if entry.ID == entryID {
			r.entries[target] = append(entries[:i:i], entries[i+1:]...)
			return true
		}
	}

	return false
}

// UnregisterAll removes every entry for the target and returns the number of
// entries removed.
func (r *Registry) UnregisterAll(target string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.entries[target])
	delete(r.entries, target)

	return n
}

// Suspend empties the registry's dispatch view so that wrapped targets run
// bare. It returns the function that restores dispatch. An action uses this
// to re-invoke a target without re-triggering itself. Suspends nest;
// dispatch resumes once every resume function has run.
func (r *Registry) Suspend() (resume func()) {
	r.mu.Lock()
	r.suspended++
	r.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			r.mu.Lock()
			r.suspended--
			r.mu.Unlock()
		})
	}
}

// Target returns the wrapped target registered under the name, if any.
func (r *Registry) Target(name string) (*Wrapped, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wrapped[name]

	return w, ok
}
