package worksheet

import (
	"fmt"

	"github.com/cipherworks/cipherlab/internal/cipher"
)

// ExerciseResult is the outcome of running one exercise.
type ExerciseResult struct {
	Exercise Exercise
	Output   string
	Trace    []string
	Graded   bool // true when the exercise carried an expect answer
	Passed   bool // meaningful only when Graded
	Err      error
}

// Report aggregates a full worksheet run.
type Report struct {
	Worksheet *Worksheet
	Results   []ExerciseResult
	Graded    int
	Passed    int
}

// AllPassed reports whether every graded exercise matched its answer
// and no exercise errored.
func (r *Report) AllPassed() bool {
	for _, res := range r.Results {
		if res.Err != nil {
			return false
		}
		if res.Graded && !res.Passed {
			return false
		}
	}
	return true
}

// Run executes every exercise through the cipher registry. Exercises
// are independent; a failing one does not stop the rest.
func Run(ws *Worksheet) *Report {
	report := &Report{Worksheet: ws}
	for _, ex := range ws.Exercises {
		report.Results = append(report.Results, runExercise(ex))
	}
	for _, res := range report.Results {
		if res.Graded {
			report.Graded++
			if res.Passed {
				report.Passed++
			}
		}
	}
	return report
}

func runExercise(ex Exercise) ExerciseResult {
	result := ExerciseResult{Exercise: ex}

	alg, ok := cipher.Lookup(ex.Cipher)
	if !ok {
		result.Err = fmt.Errorf("unknown cipher %q", ex.Cipher)
		return result
	}

	key, err := alg.ParseKey(ex.Key)
	if err != nil {
		result.Err = err
		return result
	}

	var trace cipher.Trace
	output, err := alg.Run(ex.Text, key, ex.Mode, &trace)
	result.Trace = trace
	if err != nil {
		result.Err = err
		return result
	}
	result.Output = output

	if ex.Expect != "" {
		result.Graded = true
		result.Passed = output == ex.Expect
	}
	return result
}
