// Package journey sequences a guardian's stages for one signed-in player:
// which view is shown, which stage is active, and which points are reported
// when a mini-game completes.
package journey

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ecoamazonia/guardioes/internal/catalog"
	"github.com/ecoamazonia/guardioes/internal/variant"
)

// View is the screen a journey is currently showing.
type View string

const (
	ViewLoading       View = "loading"
	ViewStory         View = "story"
	ViewGame          View = "game"
	ViewStageComplete View = "stage_complete"
	ViewFinalComplete View = "final_complete"
)

// Reporter records a stage completion. Implementations must ignore reports
// for stages at or below the stored progress.
type Reporter interface {
	ReportStageCompletion(ctx context.Context, guardianID, stage, points int) error
}

// Picker resolves stage payloads.
type Picker interface {
	Pick(stage *catalog.Stage) (variant.Resolved, error)
	Reroll(stage *catalog.Stage) (variant.Resolved, error)
}

// Option configures a Journey.
type Option func(*Journey)

// WithPicker sets the variant picker. Defaults to a clock-seeded randomizer.
func WithPicker(p Picker) Option {
	return func(j *Journey) { j.picker = p }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(j *Journey) {
		if l != nil {
			j.logger = l
		}
	}
}

// Journey is the transient state of one open guardian detail view.
type Journey struct {
	mu sync.Mutex

	id       uuid.UUID
	guardian *catalog.Guardian
	progress int
	pointer  int
	view     View

	attempt *Attempt
	gen     uint64
	reward  int
	defect  error
	closed  bool
	done    chan struct{}

	reporter Reporter
	picker   Picker
	logger   *zap.Logger
}

// Open starts a journey for guardian g given the player's stored progress.
// The journey begins in ViewLoading; call Settle to leave it.
func Open(g *catalog.Guardian, progress int, reporter Reporter, opts ...Option) (*Journey, error) {
	if g == nil {
		return nil, fmt.Errorf("open journey: nil guardian")
	}
	if reporter == nil {
		return nil, fmt.Errorf("open journey: nil reporter")
	}
	if progress < 0 {
		return nil, fmt.Errorf("open journey: negative progress %d", progress)
	}
	if n := g.StageCount(); progress > n {
		progress = n
	}

	j := &Journey{
		id:       uuid.New(),
		guardian: g,
		progress: progress,
		pointer:  progress + 1,
		view:     ViewLoading,
		done:     make(chan struct{}),
		reporter: reporter,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(j)
	}
	if j.picker == nil {
		j.picker = variant.NewRandom()
	}
	j.logger = j.logger.With(
		zap.String("run_id", j.id.String()),
		zap.Int("guardian_id", g.ID),
	)
	j.logger.Debug("journey opened", zap.Int("progress", progress), zap.Int("pointer", j.pointer))
	return j, nil
}

// ID identifies this run of the journey.
func (j *Journey) ID() uuid.UUID { return j.id }

// Guardian returns the guardian being played.
func (j *Journey) Guardian() *catalog.Guardian { return j.guardian }

// View returns the current view.
func (j *Journey) View() View {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.view
}

// Pointer returns the 1-based index of the active stage.
func (j *Journey) Pointer() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.pointer
}

// Stage returns the definition at the pointer, if any.
func (j *Journey) Stage() (*catalog.Stage, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.guardian.Stage(j.pointer)
}

// Attempt returns the active attempt while the view is ViewGame, else nil.
func (j *Journey) Attempt() *Attempt {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.view != ViewGame {
		return nil
	}
	return j.attempt
}

// Blocked reports whether a content defect stopped the journey.
func (j *Journey) Blocked() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.defect != nil
}

// Err returns the content defect that blocked the journey, if any.
func (j *Journey) Err() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.defect
}

// Reward returns the PN credited by the completion that finished the
// journey in this run. It is zero when the journey opened already
// complete or when the final report landed on a recorded stage.
func (j *Journey) Reward() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.reward
}

// Closed reports whether Close was called.
func (j *Journey) Closed() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.closed
}

// SettleAfter waits for delay and then settles. It returns early with the
// context's error, or ErrJourneyClosed if the journey closes while waiting.
func (j *Journey) SettleAfter(ctx context.Context, delay time.Duration) error {
	if delay > 0 {
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-j.done:
			return ErrJourneyClosed
		case <-t.C:
		}
	}
	return j.Settle()
}

// Settle leaves ViewLoading for final_complete, story, or game.
func (j *Journey) Settle() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.checkLive(); err != nil {
		return err
	}
	if j.view != ViewLoading {
		return fmt.Errorf("settle from %s: %w", j.view, ErrInvalidTransition)
	}

	switch {
	case j.progress >= j.guardian.StageCount():
		j.setView(ViewFinalComplete)
	case j.progress == 0 && j.pointer == 1:
		j.setView(ViewStory)
	default:
		j.enterGame()
	}
	return nil
}

// Advance moves past the story or stage-complete screen into the next game.
func (j *Journey) Advance() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.checkLive(); err != nil {
		return err
	}
	switch j.view {
	case ViewStory:
		j.enterGame()
	case ViewStageComplete:
		j.pointer++
		j.enterGame()
	default:
		return fmt.Errorf("advance from %s: %w", j.view, ErrInvalidTransition)
	}
	return nil
}

// Close discards the journey. Any outstanding attempt is retired and later
// signals from it are ignored. Close is idempotent.
func (j *Journey) Close() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.closed {
		return
	}
	j.closed = true
	if j.attempt != nil {
		j.attempt.retire()
	}
	close(j.done)
	j.logger.Debug("journey closed", zap.String("view", string(j.view)), zap.Int("pointer", j.pointer))
}

func (j *Journey) checkLive() error {
	if j.closed {
		return ErrJourneyClosed
	}
	if j.defect != nil {
		return ErrBlocked
	}
	return nil
}

func (j *Journey) setView(v View) {
	j.logger.Debug("journey transition",
		zap.String("from", string(j.view)),
		zap.String("to", string(v)),
		zap.Int("pointer", j.pointer),
	)
	j.view = v
}

// enterGame resolves the stage at the pointer and issues a new attempt. On a
// content defect the journey blocks in ViewLoading.
func (j *Journey) enterGame() {
	stage, ok := j.guardian.Stage(j.pointer)
	if !ok {
		j.block(ErrMissingStage)
		return
	}
	resolved, err := j.picker.Pick(stage)
	if err != nil {
		j.block(err)
		return
	}
	j.issueAttempt(resolved)
	j.setView(ViewGame)
}

func (j *Journey) issueAttempt(resolved variant.Resolved) {
	if j.attempt != nil {
		j.attempt.retire()
	}
	j.gen++
	j.attempt = newAttempt(j, j.gen, resolved)
}

func (j *Journey) block(err error) {
	if j.attempt != nil {
		j.attempt.retire()
		j.attempt = nil
	}
	j.defect = &ContentDefectError{GuardianID: j.guardian.ID, Stage: j.pointer, Err: err}
	j.view = ViewLoading
	j.logger.Error("journey blocked", zap.Int("pointer", j.pointer), zap.Error(err))
}

// acceptAttempt reports whether a is the live attempt of a live journey.
func (j *Journey) acceptAttempt(a *Attempt) error {
	if j.closed {
		return ErrJourneyClosed
	}
	if j.view != ViewGame || j.attempt != a || a.gen != j.gen {
		return ErrAttemptRetired
	}
	return nil
}

func (j *Journey) complete(ctx context.Context, a *Attempt) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.acceptAttempt(a); err != nil {
		j.logger.Debug("completion rejected", zap.Uint64("attempt", a.gen), zap.Error(err))
		return err
	}
	a.retire()

	stage := a.resolved.Stage
	last := j.guardian.StageCount()
	k := j.pointer

	switch {
	case stage.Type == catalog.GameAdventure:
		j.reward = j.report(ctx, last, j.guardian.TotalPoints())
		j.setView(ViewFinalComplete)

	case stage.Type == catalog.GameWordScramble:
		credited := j.report(ctx, k, stage.Points)
		if k >= last {
			j.reward = credited + j.report(ctx, k, j.guardian.FinalReward)
			j.setView(ViewFinalComplete)
			return nil
		}
		j.pointer++
		j.enterGame()

	case k < last:
		j.report(ctx, k, stage.Points)
		j.setView(ViewStageComplete)

	default:
		j.reward = j.report(ctx, k, j.guardian.FinalReward)
		j.setView(ViewFinalComplete)
	}
	return nil
}

func (j *Journey) reroll(a *Attempt) (*Attempt, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.acceptAttempt(a); err != nil {
		return nil, err
	}
	resolved, err := j.picker.Reroll(a.resolved.Stage)
	if err != nil {
		return nil, err
	}
	j.issueAttempt(resolved)
	j.logger.Debug("variant rerolled", zap.Int("pointer", j.pointer), zap.Int("variant", resolved.Variant))
	return j.attempt, nil
}

// report forwards to the reporter and advances the journey's progress. It
// returns the points credited: zero when stage is at or below the progress
// already recorded, since the reporter absorbs those. Storage failures
// belong to the reporter and do not stop the journey.
func (j *Journey) report(ctx context.Context, stage, points int) int {
	fresh := stage > j.progress
	err := j.reporter.ReportStageCompletion(ctx, j.guardian.ID, stage, points)
	if err != nil {
		j.logger.Warn("stage completion report failed",
			zap.Int("stage", stage), zap.Int("points", points), zap.Error(err))
		return 0
	}
	if !fresh {
		j.logger.Debug("stage completion absorbed", zap.Int("stage", stage), zap.Int("progress", j.progress))
		return 0
	}
	j.progress = stage
	j.logger.Info("stage completion reported", zap.Int("stage", stage), zap.Int("points", points))
	return points
}
