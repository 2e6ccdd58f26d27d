package store

import (
	"context"
	"fmt"

	"github.com/cipherworks/cipherlab/internal/cipher"
)

// ReplayResult compares one stored run against its re-execution.
type ReplayResult struct {
	Run Run

	// Output is the freshly computed result.
	Output string

	// Match is false when the fresh output differs from the stored
	// one. Transforms are deterministic, so a mismatch means the
	// engine changed behavior or the row was altered.
	Match bool

	// Err is set when the run could not be re-executed at all
	// (unknown algorithm, key no longer parses).
	Err error
}

// ReplaySession re-executes every run of a session in seq order
// through the cipher registry and reports divergences. The store is
// not modified.
func (s *Store) ReplaySession(ctx context.Context, sessionID string) ([]ReplayResult, error) {
	runs, err := s.ReadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("session %s has no runs", sessionID)
	}

	results := make([]ReplayResult, 0, len(runs))
	for _, run := range runs {
		results = append(results, replayRun(run))
	}
	return results, nil
}

func replayRun(run Run) ReplayResult {
	result := ReplayResult{Run: run}

	alg, ok := cipher.Lookup(run.Algorithm)
	if !ok {
		result.Err = fmt.Errorf("unknown algorithm %q", run.Algorithm)
		return result
	}
	mode, err := cipher.ParseMode(run.Mode)
	if err != nil {
		result.Err = err
		return result
	}
	key, err := alg.ParseKey(run.KeySpec)
	if err != nil {
		result.Err = err
		return result
	}

	out, err := alg.Run(run.Input, key, mode, nil)
	if err != nil {
		result.Err = err
		return result
	}
	result.Output = out
	result.Match = out == run.Output
	return result
}
