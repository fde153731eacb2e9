// Package actionlib provides ready-made actions and predicates for the
// trigger package. They are ordinary actions with no privileged access to the
// dispatch mechanism.
package actionlib

import (
	"log"

	"github.com/sarchlab/trigger/trigger"
)

// ArgLogger is an action that logs the first positional argument of each
// call.
type ArgLogger struct {
	*log.Logger
}

// NewArgLogger returns a new ArgLogger which will write into the logger.
func NewArgLogger(logger *log.Logger) *ArgLogger {
	l := new(ArgLogger)
	l.Logger = logger
	return l
}

// Func writes the first argument into the logger.
func (l *ArgLogger) Func(ctx trigger.ActionCtx) error {
	rec := ctx.Record

	if len(rec.Args) == 0 {
		l.Printf("%s()", rec.Target)
		return nil
	}

	l.Printf("%s(%v)", rec.Target, rec.Args[0])

	return nil
}
