package actionlib

import (
	"log"

	"github.com/sarchlab/trigger/trigger"
)

// CallLogger is an action that logs the full call information. It can be
// registered at any placement; completed records additionally log the
// outcome.
type CallLogger struct {
	*log.Logger
}

// NewCallLogger returns a new CallLogger which will write into the logger.
func NewCallLogger(logger *log.Logger) *CallLogger {
	l := new(CallLogger)
	l.Logger = logger
	return l
}

// Func writes the call information into the logger.
func (l *CallLogger) Func(ctx trigger.ActionCtx) error {
	rec := ctx.Record

	if !rec.Completed {
		l.Printf("%s,%s,args=%v,kwargs=%v",
			ctx.Pos.Name, rec.Target, rec.Args, rec.Kwargs)
		return nil
	}

	if rec.Err != nil {
		l.Printf("%s,%s,args=%v,kwargs=%v,err=%v",
			ctx.Pos.Name, rec.Target, rec.Args, rec.Kwargs, rec.Err)
		return nil
	}

	l.Printf("%s,%s,args=%v,kwargs=%v,result=%v",
		ctx.Pos.Name, rec.Target, rec.Args, rec.Kwargs, rec.Result)

	return nil
}
