package llm

import "context"

// Purpose labels recorded with each LLM request event.
const (
	PurposeQuiz          = "quiz"
	PurposeRiverQuestion = "river-question"

	// PurposeUnknown marks calls made without WithPurpose.
	PurposeUnknown = "unknown"
)

type purposeKey struct{}

// WithPurpose tags ctx so the event log can tell which feature made a call.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the tag set by WithPurpose, or PurposeUnknown.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return PurposeUnknown
}
