package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendStageEvent(ctx context.Context, data StageEventData) error {
	_, err := r.insert(ctx, tableStageEvents,
		[]string{"run_id", colUsername, "guardian_id", "stage", "points", "applied"},
		[]any{data.RunID, data.Username, data.GuardianID, data.Stage, data.Points, data.Applied},
	)
	if err != nil {
		return fmt.Errorf("save stage event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryStageEvents(ctx context.Context, opts QueryOpts) ([]StageEventRecord, error) {
	sel := selectEvents(tableStageEvents, opts,
		colSequence, colTimestamp, "run_id", colUsername, "guardian_id", "stage", "points", "applied")

	rows, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query stage events: %w", err)
	}
	defer rows.Close()

	var records []StageEventRecord
	for rows.Next() {
		var (
			rec StageEventRecord
			ts  int64
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.RunID, &rec.Username,
			&rec.GuardianID, &rec.Stage, &rec.Points, &rec.Applied); err != nil {
			return nil, fmt.Errorf("scan stage event: %w", err)
		}
		rec.Timestamp = fromUnixNano(ts)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *eventRepo) AppendAwardEvent(ctx context.Context, data AwardEventData) error {
	_, err := r.insert(ctx, tableAwardEvents,
		[]string{colUsername, "source", "amount", "balance", "reason"},
		[]any{data.Username, data.Source, data.Amount, data.Balance, data.Reason},
	)
	if err != nil {
		return fmt.Errorf("save award event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAwardEvents(ctx context.Context, opts QueryOpts) ([]AwardEventRecord, error) {
	sel := selectEvents(tableAwardEvents, opts,
		colSequence, colTimestamp, colUsername, "source", "amount", "balance", "reason")

	rows, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query award events: %w", err)
	}
	defer rows.Close()

	var records []AwardEventRecord
	for rows.Next() {
		var (
			rec AwardEventRecord
			ts  int64
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.Username,
			&rec.Source, &rec.Amount, &rec.Balance, &rec.Reason); err != nil {
			return nil, fmt.Errorf("scan award event: %w", err)
		}
		rec.Timestamp = fromUnixNano(ts)
		records = append(records, rec)
	}
	return records, rows.Err()
}
