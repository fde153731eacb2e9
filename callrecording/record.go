// Package callrecording stores completed call records outside the process.
// The core discards every record after dispatch; retention is entirely the
// business of the writers in this package.
package callrecording

import (
	"fmt"

	"github.com/sarchlab/trigger/trigger"
)

// A Record is the flattened row written for one completed call. All fields
// are scalars so that any backend can store them.
type Record struct {
	ID        string
	Target    string
	Placement string
	Args      string
	Kwargs    string
	Result    string
	Error     string
}

func makeRecord(ctx trigger.ActionCtx) Record {
	rec := ctx.Record

	r := Record{
		ID:        rec.ID,
		Target:    rec.Target,
		Placement: ctx.Pos.Name,
		Args:      fmt.Sprintf("%v", rec.Args),
		Kwargs:    fmt.Sprintf("%v", rec.Kwargs),
	}

	if rec.Err != nil {
		r.Error = rec.Err.Error()
	} else {
		r.Result = fmt.Sprintf("%v", rec.Result)
	}

	return r
}
