package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	_, err := r.insert(ctx, tableQuizEvents,
		[]string{"session_id", colUsername, "topic", "language", "questions", "correct", "points", "fallback"},
		[]any{data.SessionID, data.Username, data.Topic, data.Language,
			data.Questions, data.Correct, data.Points, data.Fallback},
	)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error) {
	sel := selectEvents(tableQuizEvents, opts,
		colSequence, colTimestamp, "session_id", colUsername, "topic", "language",
		"questions", "correct", "points", "fallback")

	rows, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}
	defer rows.Close()

	var records []QuizEventRecord
	for rows.Next() {
		var (
			rec QuizEventRecord
			ts  int64
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.Username, &rec.Topic,
			&rec.Language, &rec.Questions, &rec.Correct, &rec.Points, &rec.Fallback); err != nil {
			return nil, fmt.Errorf("scan quiz event: %w", err)
		}
		rec.Timestamp = fromUnixNano(ts)
		records = append(records, rec)
	}
	return records, rows.Err()
}
