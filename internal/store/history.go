package store

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// HistoryKind tags a HistoryEntry.
type HistoryKind string

const (
	HistoryStage HistoryKind = "stage"
	HistoryAward HistoryKind = "award"
	HistoryQuiz  HistoryKind = "quiz"
)

// HistoryEntry is one player-facing event. Exactly one of Stage, Award or
// Quiz is set, matching Kind.
type HistoryEntry struct {
	Kind      HistoryKind
	Sequence  int64
	Timestamp time.Time
	Username  string

	Stage *StageEventRecord
	Award *AwardEventRecord
	Quiz  *QuizEventRecord
}

func (r *eventRepo) History(ctx context.Context, opts QueryOpts) ([]HistoryEntry, error) {
	stages, err := r.QueryStageEvents(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	awards, err := r.QueryAwardEvents(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	quizzes, err := r.QueryQuizEvents(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	entries := make([]HistoryEntry, 0, len(stages)+len(awards)+len(quizzes))
	for i := range stages {
		e := &stages[i]
		entries = append(entries, HistoryEntry{Kind: HistoryStage, Sequence: e.Sequence, Timestamp: e.Timestamp, Username: e.Username, Stage: e})
	}
	for i := range awards {
		e := &awards[i]
		entries = append(entries, HistoryEntry{Kind: HistoryAward, Sequence: e.Sequence, Timestamp: e.Timestamp, Username: e.Username, Award: e})
	}
	for i := range quizzes {
		e := &quizzes[i]
		entries = append(entries, HistoryEntry{Kind: HistoryQuiz, Sequence: e.Sequence, Timestamp: e.Timestamp, Username: e.Username, Quiz: e})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Sequence > entries[j].Sequence
	})
	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[:opts.Limit]
	}
	return entries, nil
}
