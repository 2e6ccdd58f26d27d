package store

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ListSessions returns all sessions, oldest first. UUIDv7 IDs sort by
// creation time, so ordering by ID is chronological.
func (s *Store) ListSessions(ctx context.Context) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, created_at FROM sessions ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var created string
		if err := rows.Scan(&sess.ID, &created); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sess.CreatedAt, err = time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("failed to parse session timestamp: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// ReadSession returns the runs of a session ordered by seq.
func (s *Store) ReadSession(ctx context.Context, sessionID string) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, seq, algorithm, mode, key_spec, input, output, trace
		 FROM runs WHERE session_id = ? ORDER BY seq`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// rowScanner matches both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	var trace string
	err := row.Scan(&run.ID, &run.SessionID, &run.Seq, &run.Algorithm,
		&run.Mode, &run.KeySpec, &run.Input, &run.Output, &trace)
	if err != nil {
		return Run{}, fmt.Errorf("failed to scan run: %w", err)
	}
	if trace != "" {
		run.Trace = strings.Split(trace, traceSeparator)
	}
	return run, nil
}
