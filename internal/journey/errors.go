package journey

import (
	"errors"
	"fmt"
)

var (
	// ErrJourneyClosed is returned for any signal that arrives after Close.
	ErrJourneyClosed = errors.New("journey closed")

	// ErrAttemptRetired is returned when an attempt that already completed,
	// or was replaced by a new variant, signals again.
	ErrAttemptRetired = errors.New("attempt already retired")

	// ErrInvalidTransition is returned when a trigger does not apply to the
	// current view.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrBlocked is returned for any trigger once a content defect stopped
	// the journey.
	ErrBlocked = errors.New("journey blocked by a content defect")

	// ErrMissingStage means the catalog has no stage for the pointer.
	ErrMissingStage = errors.New("missing stage definition")
)

// ContentDefectError is a catalog authoring problem found while resolving
// the stage at the pointer. It cannot be recovered from inside the journey.
type ContentDefectError struct {
	GuardianID int
	Stage      int
	Err        error
}

func (e *ContentDefectError) Error() string {
	return fmt.Sprintf("content defect in guardian %d stage %d: %v", e.GuardianID, e.Stage, e.Err)
}

func (e *ContentDefectError) Unwrap() error { return e.Err }
