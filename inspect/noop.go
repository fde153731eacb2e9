package inspect

import (
	"github.com/sarchlab/trigger/trigger"
)

// Noop is an inspector that always propagates. It keeps automated tests from
// blocking on interactive input.
type Noop struct{}

// Inspect returns Propagate.
func (Noop) Inspect(rec trigger.CallRecord) Decision {
	return Propagate
}
