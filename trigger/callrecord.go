package trigger

import (
	"github.com/rs/xid"
)

// CallRecord is a snapshot of one invocation of a wrapped target. Before
// actions see a record without an outcome. After and on-error actions see a
// completed record that additionally carries the result or the error. A
// record is built fresh for every call and is never mutated once handed to an
// action.
type CallRecord struct {
	ID     string
	Target string
	Args   []any
	Kwargs map[string]any

	// Completed is true once the target has returned. Exactly one of Result
	// and Err is meaningful on a completed record.
	Completed bool
	Result    any
	Err       error
}

func newCallRecord(target string, args []any, kwargs map[string]any) *CallRecord {
	return &CallRecord{
		ID:     xid.New().String(),
		Target: target,
		Args:   args,
		Kwargs: kwargs,
	}
}

// completedWith builds the completed view of the record. The original record
// stays untouched so that a before action holding it cannot observe the
// outcome retroactively.
func (r *CallRecord) completedWith(result any, err error) *CallRecord {
	return &CallRecord{
		ID:        r.ID,
		Target:    r.Target,
		Args:      r.Args,
		Kwargs:    r.Kwargs,
		Completed: true,
		Result:    result,
		Err:       err,
	}
}
