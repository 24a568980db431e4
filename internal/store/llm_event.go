package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var llmEventColumns = []string{
	colID, colSequence, colTimestamp, "provider", "model", "purpose",
	"input_tokens", "output_tokens", "latency_ms", "success",
	"error_message", "request_body", "response_body",
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.insert(ctx, tableLLMEvents,
		[]string{"provider", "model", "purpose", "input_tokens", "output_tokens",
			"latency_ms", "success", "error_message", "request_body", "response_body"},
		[]any{data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens,
			data.LatencyMs, data.Success, data.ErrorMessage, data.RequestBody, data.ResponseBody},
	)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	opts.Username = ""
	records, err := r.scanLLMEvents(ctx, selectEvents(tableLLMEvents, opts, llmEventColumns...))
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error) {
	sel := selectEvents(tableLLMEvents, QueryOpts{Limit: 1}, llmEventColumns...).
		Where(entsql.EQ(colID, id))

	records, err := r.scanLLMEvents(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func (r *eventRepo) scanLLMEvents(ctx context.Context, sel *entsql.Selector) ([]LLMEventRecord, error) {
	rows, err := r.query(ctx, sel)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []LLMEventRecord
	for rows.Next() {
		var (
			rec LLMEventRecord
			ts  int64
		)
		if err := rows.Scan(&rec.ID, &rec.Sequence, &ts, &rec.Provider, &rec.Model, &rec.Purpose,
			&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs, &rec.Success,
			&rec.ErrorMessage, &rec.RequestBody, &rec.ResponseBody); err != nil {
			return nil, err
		}
		rec.Timestamp = fromUnixNano(ts)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error) {
	b := builder()
	sel := b.Select(
		"purpose",
		entsql.As(entsql.Count("*"), "calls"),
		entsql.As(entsql.Sum("input_tokens"), "input_total"),
		entsql.As(entsql.Sum("output_tokens"), "output_total"),
		entsql.As(entsql.Avg("latency_ms"), "avg_latency"),
	).From(b.Table(tableLLMEvents)).
		GroupBy("purpose").
		OrderBy(entsql.Desc("calls"))

	rows, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage by purpose: %w", err)
	}
	defer rows.Close()

	var out []LLMPurposeUsage
	for rows.Next() {
		var (
			u   LLMPurposeUsage
			avg float64
		)
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan LLM usage: %w", err)
		}
		u.AvgLatencyMs = int64(avg)
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	b := builder()
	sel := b.Select(
		"model",
		entsql.As(entsql.Count("*"), "calls"),
		entsql.As(entsql.Sum("input_tokens"), "input_total"),
		entsql.As(entsql.Sum("output_tokens"), "output_total"),
	).From(b.Table(tableLLMEvents)).
		Where(entsql.EQ("success", true)).
		GroupBy("model").
		OrderBy(entsql.Desc("calls"))

	rows, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage by model: %w", err)
	}
	defer rows.Close()

	var out []LLMModelUsage
	for rows.Next() {
		var u LLMModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan LLM usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
