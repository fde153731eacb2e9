package inspect

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sarchlab/trigger/trigger"
)

// Interactive is an inspector that pauses the failing call and asks a human
// what to do. The whole call chain blocks while it waits for input; that is
// the point of using it.
type Interactive struct {
	registry *trigger.Registry
	in       *bufio.Reader
	out      io.Writer
}

// NewInteractive creates an Interactive inspector reading commands from in
// and writing prompts to out. A nil in defaults to stdin and a nil out to
// stderr.
func NewInteractive(
	registry *trigger.Registry,
	in io.Reader,
	out io.Writer,
) *Interactive {
	if in == nil {
		in = os.Stdin
	}

	if out == nil {
		out = os.Stderr
	}

	return &Interactive{
		registry: registry,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Inspect prints the failing record and prompts for a command: c continues
// (suppressing the error), p propagates it, and r replays the target once
// with dispatch suspended so the failure can be observed without
// re-triggering. Running out of input propagates.
func (i *Interactive) Inspect(rec trigger.CallRecord) Decision {
	fmt.Fprintf(i.out, "error in %s: %v\n", rec.Target, rec.Err)
	fmt.Fprintf(i.out, "  args:   %v\n", rec.Args)
	fmt.Fprintf(i.out, "  kwargs: %v\n", rec.Kwargs)

	for {
		fmt.Fprintf(i.out, "(c)ontinue, (p)ropagate, (r)eplay? ")

		line, err := i.in.ReadString('\n')
		cmd := strings.TrimSpace(line)

		switch cmd {
		case "c":
			return Continue
		case "p":
			return Propagate
		case "r":
			i.replay(rec)
		default:
			if err != nil {
				return Propagate
			}

			fmt.Fprintf(i.out, "unknown command %q\n", cmd)
		}
	}
}

// replay re-invokes the target bare, so the inspector's own on-error action
// does not fire again.
func (i *Interactive) replay(rec trigger.CallRecord) {
	target, ok := i.registry.Target(rec.Target)
	if !ok {
		fmt.Fprintf(i.out, "target %s is no longer wrapped\n", rec.Target)
		return
	}

	resume := i.registry.Suspend()
	defer resume()

	result, err := target.CallKw(rec.Kwargs, rec.Args...)
	if err != nil {
		fmt.Fprintf(i.out, "replay failed again: %v\n", err)
		return
	}

	fmt.Fprintf(i.out, "replay returned: %v\n", result)
}
