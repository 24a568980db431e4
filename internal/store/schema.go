package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Every event table carries the same base columns: a row id, the global
// sequence number, and the UTC timestamp in unix nanoseconds.
const (
	colID        = "id"
	colSequence  = "sequence"
	colTimestamp = "timestamp"
	colUsername  = "username"
)

const (
	tableStageEvents = "stage_events"
	tableAwardEvents = "award_events"
	tableQuizEvents  = "quiz_events"
	tableLLMEvents   = "llm_request_events"
)

const eventBaseColumns = `
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	sequence INTEGER NOT NULL UNIQUE,
	timestamp INTEGER NOT NULL`

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS stage_events (` + eventBaseColumns + `,
		run_id TEXT NOT NULL DEFAULT '',
		username TEXT NOT NULL,
		guardian_id INTEGER NOT NULL,
		stage INTEGER NOT NULL,
		points INTEGER NOT NULL DEFAULT 0,
		applied INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS stage_events_username ON stage_events (username)`,
	`CREATE INDEX IF NOT EXISTS stage_events_guardian ON stage_events (guardian_id)`,

	`CREATE TABLE IF NOT EXISTS award_events (` + eventBaseColumns + `,
		username TEXT NOT NULL,
		source TEXT NOT NULL,
		amount INTEGER NOT NULL,
		balance INTEGER NOT NULL,
		reason TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS award_events_username ON award_events (username)`,

	`CREATE TABLE IF NOT EXISTS quiz_events (` + eventBaseColumns + `,
		session_id TEXT NOT NULL,
		username TEXT NOT NULL,
		topic TEXT NOT NULL,
		language TEXT NOT NULL,
		questions INTEGER NOT NULL DEFAULT 0,
		correct INTEGER NOT NULL DEFAULT 0,
		points INTEGER NOT NULL DEFAULT 0,
		fallback INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS quiz_events_username ON quiz_events (username)`,

	`CREATE TABLE IF NOT EXISTS llm_request_events (` + eventBaseColumns + `,
		provider TEXT NOT NULL,
		model TEXT NOT NULL,
		purpose TEXT NOT NULL,
		input_tokens INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms INTEGER NOT NULL DEFAULT 0,
		success INTEGER NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		request_body TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS llm_request_events_purpose ON llm_request_events (purpose)`,
	`CREATE INDEX IF NOT EXISTS llm_request_events_provider ON llm_request_events (provider)`,
}

// migrate creates any missing tables and indexes. Existing tables are left
// untouched.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
