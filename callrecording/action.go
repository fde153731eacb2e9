package callrecording

import (
	"github.com/sarchlab/trigger/trigger"
)

// Writer is a backend that can store call records.
type Writer interface {
	// Write stores one record.
	Write(r Record)

	// Flush flushes the records to the storage, in case the backend buffers
	// them.
	Flush()
}

// RecordingAction builds an action that writes every completed call into the
// writer. Register it at trigger.PlacementAfter, trigger.PlacementOnError, or
// both; before dispatch has no outcome to record and is skipped.
func RecordingAction(w Writer) trigger.Action {
	return trigger.ActionFunc(func(ctx trigger.ActionCtx) error {
		if !ctx.Record.Completed {
			return nil
		}

		w.Write(makeRecord(ctx))

		return nil
	})
}
