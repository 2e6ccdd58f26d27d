package cipher

import "fmt"

// Recorder is the step-trace sink. Every algorithm narrates each atomic
// substitution or grid operation to it, terminated by a final result line.
//
// A nil Recorder disables tracing; the transform result is identical
// either way. The trace is purely observational - no algorithm ever
// reads it back.
//
// Recorders are not synchronized. A caller sharing one Recorder across
// concurrent transform calls must provide its own locking.
type Recorder interface {
	Record(line string)
}

// Trace is the standard Recorder: an append-only ordered list of lines.
type Trace []string

// Record appends a line to the trace.
func (t *Trace) Record(line string) {
	*t = append(*t, line)
}

// record formats a narration line and appends it to rec, if rec is non-nil.
// All trace output in the package goes through this helper so a nil sink
// is handled in exactly one place.
func record(rec Recorder, format string, args ...any) {
	if rec == nil {
		return
	}
	rec.Record(fmt.Sprintf(format, args...))
}
