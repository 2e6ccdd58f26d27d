package harness

import (
	"fmt"
	"strings"
)

// AssertionError is returned when a scenario assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string   // Assertion type for categorization
	Expected string   // Human-readable expected outcome
	Actual   string   // Human-readable actual outcome
	Trace    []string // Trace lines for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Trace) > 0 {
		fmt.Fprintf(&buf, "\nTrace:\n")
		for _, line := range e.Trace {
			fmt.Fprintf(&buf, "  %s\n", line)
		}
	}

	return buf.String()
}

// check evaluates one assertion against a completed result.
func check(assertion Assertion, result *Result) error {
	switch assertion.Type {
	case "result_equals":
		return checkResultEquals(assertion, result)
	case "round_trip":
		return checkRoundTrip(result)
	case "trace_contains":
		return checkTraceContains(assertion, result)
	case "trace_count":
		return checkTraceCount(assertion, result)
	default:
		return fmt.Errorf("unknown assertion type %q", assertion.Type)
	}
}

func checkResultEquals(assertion Assertion, result *Result) error {
	idx := assertion.Step
	if idx == 0 {
		idx = len(result.Steps)
	}
	output := result.Steps[idx-1].Output
	if output != assertion.Value {
		return &AssertionError{
			Type:     "result_equals",
			Expected: fmt.Sprintf("step %d output %q", idx, assertion.Value),
			Actual:   fmt.Sprintf("%q", output),
			Trace:    result.Steps[idx-1].Trace,
		}
	}
	return nil
}

func checkRoundTrip(result *Result) error {
	first := result.Steps[0].Input
	last := result.Steps[len(result.Steps)-1].Output
	if first != last {
		return &AssertionError{
			Type:     "round_trip",
			Expected: fmt.Sprintf("final output equals original input %q", first),
			Actual:   fmt.Sprintf("%q", last),
			Trace:    result.CombinedTrace(),
		}
	}
	return nil
}

func checkTraceContains(assertion Assertion, result *Result) error {
	for _, line := range result.CombinedTrace() {
		if strings.Contains(line, assertion.Line) {
			return nil
		}
	}
	return &AssertionError{
		Type:     "trace_contains",
		Expected: fmt.Sprintf("a trace line containing %q", assertion.Line),
		Actual:   "not found in trace",
		Trace:    result.CombinedTrace(),
	}
}

func checkTraceCount(assertion Assertion, result *Result) error {
	count := 0
	for _, line := range result.CombinedTrace() {
		if strings.Contains(line, assertion.Line) {
			count++
		}
	}
	if count != assertion.Count {
		return &AssertionError{
			Type:     "trace_count",
			Expected: fmt.Sprintf("%d trace lines containing %q", assertion.Count, assertion.Line),
			Actual:   fmt.Sprintf("%d", count),
			Trace:    result.CombinedTrace(),
		}
	}
	return nil
}
