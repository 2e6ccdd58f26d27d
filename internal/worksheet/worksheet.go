// Package worksheet compiles CUE worksheet definitions into typed
// exercise lists and runs them through the cipher registry.
//
// A worksheet is a CUE struct:
//
//	worksheet: {
//		title: "Shift ciphers"
//		exercises: [
//			{cipher: "caesar", key: "3", text: "HELLO", expect: "KHOOR"},
//		]
//	}
//
// Compilation uses the CUE SDK's Go API directly (not CLI subprocess).
package worksheet

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/cipherworks/cipherlab/internal/cipher"
)

// Worksheet is a compiled set of cipher exercises.
type Worksheet struct {
	Title       string
	Description string
	Exercises   []Exercise
}

// Exercise is one transform task. Expect, when non-empty, is the
// graded answer.
type Exercise struct {
	Name   string
	Cipher string
	Key    string
	Mode   cipher.Mode
	Text   string
	Expect string
}

// CompileError represents a compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Load reads a CUE file and compiles the `worksheet` struct inside it.
func Load(path string) (*Worksheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	wsVal := v.LookupPath(cue.ParsePath("worksheet"))
	if !wsVal.Exists() {
		return nil, &CompileError{
			Field:   "worksheet",
			Message: "top-level worksheet struct is required",
			Pos:     v.Pos(),
		}
	}

	return Compile(wsVal)
}

// Compile parses a CUE value into a Worksheet.
//
// The CUE value should be the worksheet struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`worksheet: { ... }`)
//	ws, err := worksheet.Compile(v.LookupPath(cue.ParsePath("worksheet")))
func Compile(v cue.Value) (*Worksheet, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	ws := &Worksheet{}

	titleVal := v.LookupPath(cue.ParsePath("title"))
	if !titleVal.Exists() {
		return nil, &CompileError{
			Field:   "title",
			Message: "title is required",
			Pos:     v.Pos(),
		}
	}
	title, err := titleVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	ws.Title = title

	descVal := v.LookupPath(cue.ParsePath("description"))
	if descVal.Exists() {
		desc, err := descVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		ws.Description = desc
	}

	ws.Exercises, err = parseExercises(v)
	if err != nil {
		return nil, err
	}
	if len(ws.Exercises) == 0 {
		return nil, &CompileError{
			Field:   "exercises",
			Message: "at least one exercise is required",
			Pos:     v.Pos(),
		}
	}

	return ws, nil
}

func parseExercises(v cue.Value) ([]Exercise, error) {
	exVal := v.LookupPath(cue.ParsePath("exercises"))
	if !exVal.Exists() {
		return nil, nil
	}

	iter, err := exVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var exercises []Exercise
	for i := 0; iter.Next(); i++ {
		ex, err := parseExercise(iter.Value(), i)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, ex)
	}
	return exercises, nil
}

func parseExercise(v cue.Value, index int) (Exercise, error) {
	field := func(name string) string {
		return fmt.Sprintf("exercises[%d].%s", index, name)
	}

	ex := Exercise{}

	// Optional fields first so validation errors point at the
	// exercise the author named.
	nameVal := v.LookupPath(cue.ParsePath("name"))
	if nameVal.Exists() {
		name, err := nameVal.String()
		if err != nil {
			return ex, formatCUEError(err)
		}
		ex.Name = name
	}

	cipherVal := v.LookupPath(cue.ParsePath("cipher"))
	if !cipherVal.Exists() {
		return ex, &CompileError{
			Field:   field("cipher"),
			Message: "cipher is required",
			Pos:     v.Pos(),
		}
	}
	name, err := cipherVal.String()
	if err != nil {
		return ex, formatCUEError(err)
	}
	alg, ok := cipher.Lookup(name)
	if !ok {
		return ex, &CompileError{
			Field:   field("cipher"),
			Message: fmt.Sprintf("unknown cipher %q", name),
			Pos:     cipherVal.Pos(),
		}
	}
	ex.Cipher = alg.Name

	textVal := v.LookupPath(cue.ParsePath("text"))
	if !textVal.Exists() {
		return ex, &CompileError{
			Field:   field("text"),
			Message: "text is required",
			Pos:     v.Pos(),
		}
	}
	text, err := textVal.String()
	if err != nil {
		return ex, formatCUEError(err)
	}
	ex.Text = text

	keyVal := v.LookupPath(cue.ParsePath("key"))
	if keyVal.Exists() {
		key, err := keyVal.String()
		if err != nil {
			return ex, formatCUEError(err)
		}
		ex.Key = key
	}
	if ex.Key == "" && alg.KeyKind != cipher.KeyNone {
		return ex, &CompileError{
			Field:   field("key"),
			Message: fmt.Sprintf("cipher %q requires a key", alg.Name),
			Pos:     v.Pos(),
		}
	}

	ex.Mode = cipher.Encrypt
	modeVal := v.LookupPath(cue.ParsePath("mode"))
	if modeVal.Exists() {
		modeStr, err := modeVal.String()
		if err != nil {
			return ex, formatCUEError(err)
		}
		mode, err := cipher.ParseMode(modeStr)
		if err != nil {
			return ex, &CompileError{
				Field:   field("mode"),
				Message: err.Error(),
				Pos:     modeVal.Pos(),
			}
		}
		ex.Mode = mode
	}

	expectVal := v.LookupPath(cue.ParsePath("expect"))
	if expectVal.Exists() {
		expect, err := expectVal.String()
		if err != nil {
			return ex, formatCUEError(err)
		}
		ex.Expect = expect
	}

	return ex, nil
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
