package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter manages the global monotonic sequence number shared across
// all event types. Each event type lives in its own table, so per-table
// auto-increment IDs can't establish cross-type ordering. This shared counter
// assigns a single increasing sequence to every event regardless of type,
// which is what History relies on to interleave stage, award and quiz events.
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
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

// eventRepo implements EventRepo with ent's SQL builder and the global
// sequence counter.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// insert appends one row stamped with the next sequence number and the
// current time, returning the row id.
func (r *eventRepo) insert(ctx context.Context, table string, columns []string, values []any) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	cols := append([]string{colSequence, colTimestamp}, columns...)
	vals := append([]any{seqNum, time.Now().UTC().UnixNano()}, values...)
	query, args := builder().Insert(table).Columns(cols...).Values(vals...).Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// selectEvents builds a newest-first query over table filtered by opts.
func selectEvents(table string, opts QueryOpts, columns ...string) *entsql.Selector {
	b := builder()
	sel := b.Select(columns...).
		From(b.Table(table)).
		OrderBy(entsql.Desc(colSequence))

	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	if opts.After > 0 {
		sel.Where(entsql.GT(colSequence, opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT(colSequence, opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE(colTimestamp, opts.From.UTC().UnixNano()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE(colTimestamp, opts.To.UTC().UnixNano()))
	}
	if opts.Username != "" {
		sel.Where(entsql.EQ(colUsername, opts.Username))
	}
	return sel
}

// query runs sel. The caller must close the returned rows before issuing
// another statement; the pool holds a single connection.
func (r *eventRepo) query(ctx context.Context, sel *entsql.Selector) (*entsql.Rows, error) {
	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func fromUnixNano(ns int64) time.Time {
	return time.Unix(0, ns).UTC()
}

func (r *eventRepo) DeleteUserEvents(ctx context.Context, username string) (int64, error) {
	var total int64
	for _, table := range []string{tableStageEvents, tableAwardEvents, tableQuizEvents} {
		query, args := builder().Delete(table).Where(entsql.EQ(colUsername, username)).Query()
		var res sql.Result
		if err := r.drv.Exec(ctx, query, args, &res); err != nil {
			return total, fmt.Errorf("delete %s: %w", table, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return total, fmt.Errorf("delete %s: %w", table, err)
		}
		total += n
	}
	return total, nil
}
