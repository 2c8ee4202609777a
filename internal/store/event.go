package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// eventSequence hands out the monotonic sequence number shared by analysis
// and practice events. The two event types live in separate ent-managed
// tables, so their auto-increment IDs say nothing about cross-type order;
// this counter gives the history listing a single append order to sort by.
//
// The counter is a one-row table updated with raw SQL (ent has no notion of
// a database-level atomic counter). RETURNING makes the increment atomic in
// the database; the mutex serializes callers within the process.
type eventSequence struct {
	mu sync.Mutex
	db *sql.DB
}

func newEventSequence(db *sql.DB) (*eventSequence, error) {
	const ddl = `
		CREATE TABLE IF NOT EXISTS event_sequence (
			id  INTEGER PRIMARY KEY CHECK (id = 1),
			seq INTEGER NOT NULL DEFAULT 0
		)`
	if _, err := db.Exec(ddl); err != nil {
		return nil, fmt.Errorf("create event_sequence table: %w", err)
	}
	if _, err := db.Exec(`INSERT OR IGNORE INTO event_sequence (id, seq) VALUES (1, 0)`); err != nil {
		return nil, fmt.Errorf("init event_sequence row: %w", err)
	}
	return &eventSequence{db: db}, nil
}

// next returns the next sequence number, starting from 1.
func (es *eventSequence) next(ctx context.Context) (int64, error) {
	es.mu.Lock()
	defer es.mu.Unlock()

	var seq int64
	row := es.db.QueryRowContext(ctx,
		`UPDATE event_sequence SET seq = seq + 1 WHERE id = 1 RETURNING seq`)
	if err := row.Scan(&seq); err != nil {
		return 0, fmt.Errorf("advance event sequence: %w", err)
	}
	return seq, nil
}
