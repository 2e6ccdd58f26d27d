package harness

import (
	"fmt"

	"github.com/cipherworks/cipherlab/internal/cipher"
)

// StepResult holds one executed step's output and trace.
type StepResult struct {
	Step   Step
	Input  string
	Output string
	Trace  []string
}

// Result holds the outcome of running a scenario.
type Result struct {
	Scenario *Scenario
	Steps    []StepResult
}

// CombinedTrace flattens the step traces in execution order, each line
// prefixed with its 1-based step index.
func (r *Result) CombinedTrace() []string {
	var lines []string
	for i, step := range r.Steps {
		for _, line := range step.Trace {
			lines = append(lines, fmt.Sprintf("[%d] %s", i+1, line))
		}
	}
	return lines
}

// Run executes the scenario's steps in order through the cipher
// registry. Execution stops at the first failing step; assertion
// failures are reported as *AssertionError so callers can show
// expected versus actual with the full trace.
func Run(scenario *Scenario) (*Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	result := &Result{Scenario: scenario}
	prev := ""
	for i, step := range scenario.Steps {
		stepResult, err := runStep(step, prev)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Cipher, err)
		}
		if step.Expect != "" && stepResult.Output != step.Expect {
			return nil, &AssertionError{
				Type:     "step_expect",
				Expected: fmt.Sprintf("step %d output %q", i+1, step.Expect),
				Actual:   fmt.Sprintf("%q", stepResult.Output),
				Trace:    stepResult.Trace,
			}
		}
		result.Steps = append(result.Steps, stepResult)
		prev = stepResult.Output
	}

	for _, assertion := range scenario.Assertions {
		if err := check(assertion, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func runStep(step Step, prev string) (StepResult, error) {
	alg, ok := cipher.Lookup(step.Cipher)
	if !ok {
		return StepResult{}, fmt.Errorf("unknown cipher %q", step.Cipher)
	}

	mode := cipher.Encrypt
	if step.Mode != "" {
		var err error
		mode, err = cipher.ParseMode(step.Mode)
		if err != nil {
			return StepResult{}, err
		}
	}

	key, err := alg.ParseKey(step.Key)
	if err != nil {
		return StepResult{}, err
	}

	input := step.Text
	if input == "" {
		input = prev
	}

	var trace cipher.Trace
	output, err := alg.Run(input, key, mode, &trace)
	if err != nil {
		return StepResult{}, err
	}

	return StepResult{Step: step, Input: input, Output: output, Trace: trace}, nil
}
