// Package inspect provides the inspect-on-error capability: an on-error
// action that hands the failing call to an Inspector and suppresses the error
// when the inspector decides the program should continue.
package inspect

import (
	"github.com/sarchlab/trigger/trigger"
)

// A Decision is an inspector's verdict on a failing call.
type Decision int

// Possible decisions.
const (
	// Propagate lets the target's error surface to the caller unchanged.
	Propagate Decision = iota

	// Continue suppresses the error; the wrapped call returns the fallback
	// value.
	Continue
)

// An Inspector examines the record of a failing call and decides whether the
// error propagates.
type Inspector interface {
	Inspect(rec trigger.CallRecord) Decision
}

// OnError builds the on-error action that consults the inspector. Register it
// at trigger.PlacementOnError.
func OnError(inspector Inspector, fallback any) trigger.Action {
	return trigger.ActionFunc(func(ctx trigger.ActionCtx) error {
		if inspector.Inspect(*ctx.Record) == Continue {
			ctx.Suppress(fallback)
		}

		return nil
	})
}
