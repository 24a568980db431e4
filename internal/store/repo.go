package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit    int       // max results (0 = unlimited)
	After    int64     // sequence > After
	Before   int64     // sequence < Before
	From     time.Time // timestamp >= From
	To       time.Time // timestamp <= To
	Username string    // only events for this player ("" = all)
}

// StageEventData records one report of a guardian stage completion.
// Applied is false when the report landed on an already-completed stage.
type StageEventData struct {
	RunID      string
	Username   string
	GuardianID int
	Stage      int
	Points     int
	Applied    bool
}

// StageEventRecord is a stored stage event.
type StageEventRecord struct {
	StageEventData
	Sequence  int64
	Timestamp time.Time
}

// Award sources.
const (
	AwardSourceStage  = "stage"
	AwardSourceQuiz   = "quiz"
	AwardSourceUnlock = "unlock"
)

// AwardEventData records a change to a player's PN balance. Amount is
// negative for spending.
type AwardEventData struct {
	Username string
	Source   string
	Amount   int
	Balance  int
	Reason   string
}

// AwardEventRecord is a stored award event.
type AwardEventRecord struct {
	AwardEventData
	Sequence  int64
	Timestamp time.Time
}

// QuizEventData summarizes one finished quiz session.
type QuizEventData struct {
	SessionID string
	Username  string
	Topic     string
	Language  string
	Questions int
	Correct   int
	Points    int
	Fallback  bool
}

// QuizEventRecord is a stored quiz event.
type QuizEventRecord struct {
	QuizEventData
	Sequence  int64
	Timestamp time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	LLMRequestEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// LLMPurposeUsage aggregates LLM calls by purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM calls by model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendStageEvent(ctx context.Context, data StageEventData) error
	AppendAwardEvent(ctx context.Context, data AwardEventData) error
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	QueryStageEvents(ctx context.Context, opts QueryOpts) ([]StageEventRecord, error)
	QueryAwardEvents(ctx context.Context, opts QueryOpts) ([]AwardEventRecord, error)
	QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error)
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns nil when no event has the id.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// History merges stage, award and quiz events, newest first.
	History(ctx context.Context, opts QueryOpts) ([]HistoryEntry, error)

	// DeleteUserEvents removes every event recorded for username and
	// returns how many rows were deleted.
	DeleteUserEvents(ctx context.Context, username string) (int64, error)
}
