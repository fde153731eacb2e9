package actionlib

import (
	"github.com/sarchlab/trigger/trigger"
)

// FirstArgInt builds a predicate over the first positional argument. The
// predicate is false for calls without arguments or with a non-int first
// argument.
func FirstArgInt(pred func(n int) bool) trigger.Predicate {
	return func(rec *trigger.CallRecord) bool {
		if len(rec.Args) == 0 {
			return false
		}

		n, ok := rec.Args[0].(int)
		if !ok {
			return false
		}

		return pred(n)
	}
}

// Succeeded matches completed records whose call returned without an error.
func Succeeded() trigger.Predicate {
	return func(rec *trigger.CallRecord) bool {
		return rec.Completed && rec.Err == nil
	}
}

// Failed matches completed records whose call returned an error.
func Failed() trigger.Predicate {
	return func(rec *trigger.CallRecord) bool {
		return rec.Completed && rec.Err != nil
	}
}
