// Package cipher implements the classical cipher transform engine.
//
// Fifteen pre-modern ciphers are provided across four families:
// substitution (Atbash, Caesar, Affine), polyalphabetic (Vigenere,
// Gronsfeld, Beaufort, Auto-Key, Running-Key), polygraphic (Hill), and
// transposition (Rail Fence, Route, Columnar, Double Transposition,
// Myszkowski, Grille). These are historical, cryptographically weak
// ciphers: the engine is for teaching, not for protecting anything.
//
// ARCHITECTURE:
//
// Pure Transforms:
// Every transform is a pure, synchronous function over in-memory
// strings. No I/O, no shared mutable state, no global reads or writes.
// Calls are independently re-entrant and safe to run concurrently; the
// only external interaction is appending to a caller-supplied Recorder,
// which a caller sharing across goroutines must synchronize itself.
//
// Eager Validation:
// Every key is validated before the first character is transformed. A
// failed transform returns a typed *Error and produces no partial
// output. Non-alphabetic passthrough is a normal code path, never an
// error.
//
// Step Trace:
// Each transform narrates its atomic operations to an optional Recorder
// for pedagogical display, terminated by a final result line. The trace
// is purely observational: no algorithm reads it back, and a nil
// Recorder changes nothing about the result.
//
// CRITICAL PATTERNS:
//
// Shared Mapper Policy:
// All substitution-family ciphers classify runes as upper/lower/other
// and advance their key stream only on letters. Deviating in any one
// cipher desynchronizes encryption from decryption.
//
// True Modulus:
// All shift arithmetic uses Mod, never Go's truncating %, because
// decryption and Beaufort subtraction go negative.
//
// Explicit Grid Cells:
// Transposition grids track a filled flag per cell, so a space in the
// input can never collide with an "empty slot" sentinel.
package cipher
