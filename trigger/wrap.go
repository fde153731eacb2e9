package trigger

import (
	"fmt"
)

// TargetFunc is the shape of a callable that can be wrapped. Positional
// arguments arrive as a slice; keyword arguments, when supplied through
// CallKw, arrive as a map. A target reports failure through the error return.
type TargetFunc func(args []any, kwargs map[string]any) (any, error)

// A Wrapped is a target callable subject to dispatch. Calling it behaves like
// calling the underlying function, except that the actions registered against
// its name fire around the call.
type Wrapped struct {
	registry *Registry
	name     string
	fn       TargetFunc
}

// Wrap binds a stable name to a target function and returns the interceptor
// for it. The name is the identity the actions are registered against.
// Wrapping a name that is already wrapped in this registry fails with
// ErrAlreadyWrapped.
func (r *Registry) Wrap(name string, fn TargetFunc) (*Wrapped, error) {
	if name == "" {
		return nil, ErrEmptyTargetName
	}

	if fn == nil {
		return nil, ErrNilTarget
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.wrapped[name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyWrapped, name)
	}

	w := &Wrapped{
		registry: r,
		name:     name,
		fn:       fn,
	}
	r.wrapped[name] = w

	return w, nil
}

// MustWrap calls Wrap and panics on failure.
func (r *Registry) MustWrap(name string, fn TargetFunc) *Wrapped {
	w, err := r.Wrap(name, fn)
	if err != nil {
		panic(err)
	}

	return w
}

// Unwrap releases a name so that it can be wrapped again. Registered entries
// for the name are kept; only the name-to-function binding is dropped.
func (r *Registry) Unwrap(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.wrapped, name)
}

// Name returns the name the target was wrapped under.
func (w *Wrapped) Name() string {
	return w.name
}

// Call invokes the target with positional arguments only.
func (w *Wrapped) Call(args ...any) (any, error) {
	return w.CallKw(nil, args...)
}

// CallKw invokes the target with keyword and positional arguments. Each call
// runs the dispatch sequence:
//
//  1. Every matching before entry fires in registration order. An error from
//     a before action propagates immediately and the target is not called.
//  2. The target runs with the original arguments.
//  3. On success, every matching after entry fires with the completed record.
//     An error from an after action propagates and the target's result is
//     lost to the caller.
//  4. On failure, every matching on-error entry fires with the completed
//     record instead of the after entries. If one of them suppressed the
//     error, the fallback value is returned; otherwise the target's error is
//     returned unchanged. An error returned by an on-error action propagates
//     in place of the target's error.
//
// The registry is consulted fresh on every call, so an action that invokes a
// wrapped target recurses through the full sequence.
func (w *Wrapped) CallKw(kwargs map[string]any, args ...any) (any, error) {
	rec := newCallRecord(w.name, args, kwargs)

	err := w.runActions(PlacementBefore, rec, nil)
	if err != nil {
		return nil, err
	}

	result, callErr := w.fn(args, kwargs)

	if callErr == nil {
		err = w.runActions(PlacementAfter, rec.completedWith(result, nil), nil)
		if err != nil {
			return nil, err
		}

		return result, nil
	}

	control := &suppressControl{}
	err = w.runActions(PlacementOnError, rec.completedWith(nil, callErr), control)
	if err != nil {
		return nil, err
	}

	if control.suppressed {
		return control.fallback, nil
	}

	return nil, callErr
}

// runActions fires the matching entries for one placement. The entries are
// snapshotted by Lookup, so the registry lock is not held while actions run
// and re-entrant calls cannot deadlock.
func (w *Wrapped) runActions(
	pos *Placement,
	rec *CallRecord,
	control *suppressControl,
) error {
	for _, entry := range w.registry.Lookup(w.name, pos) {
		if !entry.matches(rec) {
			continue
		}

		ctx := ActionCtx{
			Registry: w.registry,
			Pos:      pos,
			Record:   rec,
			control:  control,
		}

		err := entry.Action.Func(ctx)
		if err != nil {
			return err
		}
	}

	return nil
}
