// Package harness runs YAML-defined cipher scenarios.
//
// A scenario is an ordered list of transform steps - cipher, key,
// mode, text - with optional expected outputs, followed by assertions
// over the combined step trace. Scenarios serve two purposes: they are
// the conformance suite for the engine (run via the CLI test command),
// and their traces are compared against golden files so any change to
// the narration a cipher produces is a visible diff.
//
// Steps may chain: a step with no text of its own receives the
// previous step's output, which is how round-trip scenarios are
// written (encrypt, then decrypt with the same key, then assert
// round_trip).
package harness
