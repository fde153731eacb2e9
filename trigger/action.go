package trigger

// A Predicate restricts when a registered action fires. A nil predicate
// matches every call.
type Predicate func(rec *CallRecord) bool

// ActionCtx is the context that holds all the information about the call site
// an action is fired for.
type ActionCtx struct {
	Registry *Registry
	Pos      *Placement
	Record   *CallRecord

	control *suppressControl
}

// Suppress marks the target's error as handled. The wrapped call then returns
// the fallback value instead of the error. Suppress is only meaningful during
// on-error dispatch and panics everywhere else.
func (c ActionCtx) Suppress(fallback any) {
	if c.control == nil {
		panic("suppress is only valid during on-error dispatch")
	}

	c.control.suppressed = true
	c.control.fallback = fallback
}

type suppressControl struct {
	suppressed bool
	fallback   any
}

// Action is a short piece of program that can be invoked around a wrapped
// call.
type Action interface {
	// Func determines what to do when the action fires. A non-nil error stops
	// the dispatch sequence and propagates to the caller of the wrapped
	// target.
	Func(ctx ActionCtx) error
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func(ctx ActionCtx) error

// Func calls f.
func (f ActionFunc) Func(ctx ActionCtx) error {
	return f(ctx)
}

// An ActionEntry is one registered action. Entries are immutable after
// registration. The ID is the handle for unregistering the entry.
type ActionEntry struct {
	ID        string
	Action    Action
	Pos       *Placement
	Predicate Predicate
}

func (e *ActionEntry) matches(rec *CallRecord) bool {
	if e.Predicate == nil {
		return true
	}

	return e.Predicate(rec)
}

func allOf(predicates []Predicate) Predicate {
	if len(predicates) == 0 {
		return nil
	}

	return func(rec *CallRecord) bool {
		for _, p := range predicates {
			if !p(rec) {
				return false
			}
		}

		return true
	}
}
