package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/rmehra/retain/ent"
)

// eventRepo is the ent-backed EventRepo. The per-event-type append and
// query methods live in the *_event.go files alongside their schemas.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// sequenceCounter hands out the global write order shared by every
// event type. Each type has its own ent table, so per-table
// auto-increment cannot say whether a checkpoint result landed before
// or after the tutor exchange it triggered. A single counter row,
// bumped once per append, gives the journal one total order across all
// tables.
//
// The increment runs as raw SQL: ent has no atomic counter primitive.
// RETURNING makes it atomic at the database level, and the mutex keeps
// concurrent appends from this process serialized on top of that.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS global_sequence (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			next_val INTEGER NOT NULL DEFAULT 1
		)`,
		`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("init sequence counter: %w", err)
		}
	}
	return &sequenceCounter{db: db}, nil
}

// Next returns the current sequence value and advances the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
