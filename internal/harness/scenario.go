package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: a sequence of cipher
// transforms with expected results and trace assertions.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names the golden
	// file when the scenario is run under golden comparison.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Steps are executed in order. A step with an empty text receives
	// the previous step's output.
	Steps []Step `yaml:"steps"`

	// Assertions validate the results and the combined trace.
	// Supported types: result_equals, round_trip, trace_contains,
	// trace_count.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is a single transform invocation.
type Step struct {
	// Cipher is the registry name of the algorithm (e.g. "caesar").
	Cipher string `yaml:"cipher"`

	// Key is the key spec string, parsed per the algorithm's key kind.
	// Empty for keyless ciphers.
	Key string `yaml:"key,omitempty"`

	// Mode is "encrypt" or "decrypt"; defaults to "encrypt".
	Mode string `yaml:"mode,omitempty"`

	// Text is the input. Empty means: use the previous step's output.
	Text string `yaml:"text,omitempty"`

	// Expect, when set, is compared against the step's output.
	Expect string `yaml:"expect,omitempty"`
}

// Assertion validates the scenario outcome.
type Assertion struct {
	// Type selects the check:
	//   - "result_equals": output of step Step equals Value
	//   - "round_trip": output of the last step equals the first
	//     step's input
	//   - "trace_contains": some trace line contains Line
	//   - "trace_count": exactly Count trace lines contain Line
	Type string `yaml:"type"`

	// Step is the 1-based step index for result_equals; 0 means the
	// last step.
	Step int `yaml:"step,omitempty"`

	// Value is the expected output for result_equals.
	Value string `yaml:"value,omitempty"`

	// Line is the substring matched by trace_contains / trace_count.
	Line string `yaml:"line,omitempty"`

	// Count is the expected match count for trace_count.
	Count int `yaml:"count,omitempty"`
}

// LoadScenario reads and validates a single scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &scenario, nil
}

// LoadScenarioDir loads every *.yaml scenario in a directory, sorted
// by filename for deterministic run order.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	scenarios := make([]*Scenario, 0, len(matches))
	for _, path := range matches {
		scenario, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, scenario)
	}
	return scenarios, nil
}

// Validate checks structural requirements before any step runs.
func (s *Scenario) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario needs at least one step")
	}
	for i, step := range s.Steps {
		if strings.TrimSpace(step.Cipher) == "" {
			return fmt.Errorf("step %d: cipher is required", i+1)
		}
		if i == 0 && step.Text == "" {
			return fmt.Errorf("step 1: text is required for the first step")
		}
	}
	for i, a := range s.Assertions {
		switch a.Type {
		case "result_equals":
			if a.Step < 0 || a.Step > len(s.Steps) {
				return fmt.Errorf("assertion %d: step %d out of range", i+1, a.Step)
			}
		case "round_trip":
		case "trace_contains", "trace_count":
			if a.Line == "" {
				return fmt.Errorf("assertion %d: %s requires a line", i+1, a.Type)
			}
		default:
			return fmt.Errorf("assertion %d: unknown type %q", i+1, a.Type)
		}
	}
	return nil
}
