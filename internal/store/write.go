package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session groups a series of cipher runs recorded together.
type Session struct {
	ID        string
	CreatedAt time.Time
}

// Run is one recorded transform: inputs, output, and step trace.
type Run struct {
	ID        string
	SessionID string
	Seq       int64
	Algorithm string
	Mode      string
	KeySpec   string
	Input     string
	Output    string
	Trace     []string
}

// traceSeparator joins trace lines for storage. Trace lines are
// human-readable narration and never contain newlines themselves.
const traceSeparator = "\n"

// IDGenerator produces session and run IDs.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator is the default generator. UUIDv7 IDs are
// time-sortable, which keeps session listings in creation order.
type UUIDv7Generator struct{}

func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// BeginSession creates and persists a new session.
func (s *Store) BeginSession(ctx context.Context) (Session, error) {
	sess := Session{
		ID:        s.idGen.Generate(),
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO sessions (id, created_at) VALUES (?, ?)",
		sess.ID, sess.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return Session{}, fmt.Errorf("failed to insert session: %w", err)
	}
	return sess, nil
}

// WriteRun appends a run to the log. The caller must have stamped Seq
// from the store's clock; an unset ID is generated.
func (s *Store) WriteRun(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = s.idGen.Generate()
	}
	if run.Seq == 0 {
		return fmt.Errorf("run must be stamped with a seq from the store clock")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, session_id, seq, algorithm, mode, key_spec, input, output, trace)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.SessionID, run.Seq, run.Algorithm, run.Mode,
		run.KeySpec, run.Input, run.Output, strings.Join(run.Trace, traceSeparator),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}
