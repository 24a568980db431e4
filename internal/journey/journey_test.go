package journey

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/ecoamazonia/guardioes/internal/catalog"
	"github.com/ecoamazonia/guardioes/internal/i18n"
	"github.com/ecoamazonia/guardioes/internal/variant"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type report struct {
	Guardian, Stage, Points int
}

// guardedReporter applies the at-most-once rule the profile store uses.
type guardedReporter struct {
	mu       sync.Mutex
	progress map[int]int
	balance  int
	calls    []report
}

func newReporter(guardianID, progress int) *guardedReporter {
	return &guardedReporter{progress: map[int]int{guardianID: progress}}
}

func (r *guardedReporter) ReportStageCompletion(_ context.Context, guardianID, stage, points int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, report{guardianID, stage, points})
	if stage <= r.progress[guardianID] {
		return nil
	}
	r.balance += points
	r.progress[guardianID] = stage
	return nil
}

func open(t *testing.T, g *catalog.Guardian, progress int, rep Reporter) *Journey {
	t.Helper()
	j, err := Open(g, progress, rep,
		WithPicker(variant.NewSeeded(1)),
		WithLogger(zaptest.NewLogger(t)),
	)
	require.NoError(t, err)
	t.Cleanup(j.Close)
	return j
}

func guardian(t *testing.T, id int) *catalog.Guardian {
	t.Helper()
	g, err := catalog.Get(id)
	require.NoError(t, err)
	return g
}

func completeActive(t *testing.T, j *Journey) {
	t.Helper()
	a := j.Attempt()
	require.NotNil(t, a, "no active attempt in view %s", j.View())
	require.NoError(t, a.Complete(context.Background()))
}

func TestOpenSettlesByProgress(t *testing.T) {
	for _, g := range catalog.All() {
		for p := 0; p <= g.StageCount(); p++ {
			j := open(t, &g, p, newReporter(g.ID, p))
			assert.Equal(t, ViewLoading, j.View())
			assert.Equal(t, p+1, j.Pointer())
			require.NoError(t, j.Settle())

			var want View
			switch {
			case p == g.StageCount():
				want = ViewFinalComplete
			case p == 0:
				want = ViewStory
			default:
				want = ViewGame
			}
			assert.Equal(t, want, j.View(), "guardian %d progress %d", g.ID, p)
			assert.Equal(t, p+1, j.Pointer())
		}
	}
}

func TestCurupiraFinalStage(t *testing.T) {
	g := guardian(t, 1)
	rep := newReporter(g.ID, 4)
	j := open(t, g, 4, rep)

	require.NoError(t, j.Settle())
	assert.Equal(t, ViewGame, j.View())
	assert.Equal(t, 5, j.Pointer())

	a := j.Attempt()
	require.NotNil(t, a)
	assert.Equal(t, catalog.GameTermo, a.Stage().Type)
	assert.NotNil(t, a.Resolved().Secret)

	require.NoError(t, a.Complete(context.Background()))
	assert.Equal(t, ViewFinalComplete, j.View())
	if diff := cmp.Diff([]report{{1, 5, 50}}, rep.calls); diff != "" {
		t.Errorf("reports mismatch (-want +got):\n%s", diff)
	}
}

func TestFinalStageReportsFinalRewardNotStagePoints(t *testing.T) {
	g := guardian(t, 4)
	last, _ := g.Stage(g.StageCount())
	require.NotEqual(t, last.Points, g.FinalReward)

	rep := newReporter(g.ID, 4)
	j := open(t, g, 4, rep)
	require.NoError(t, j.Settle())
	completeActive(t, j)

	assert.Equal(t, ViewFinalComplete, j.View())
	assert.Equal(t, []report{{g.ID, 5, g.FinalReward}}, rep.calls)
	assert.Equal(t, g.FinalReward, rep.balance)
	assert.Equal(t, g.FinalReward, j.Reward())
}

func TestIaraFreshPlayer(t *testing.T) {
	g := guardian(t, 2)
	rep := newReporter(g.ID, 0)
	j := open(t, g, 0, rep)

	require.NoError(t, j.Settle())
	assert.Equal(t, ViewStory, j.View())
	assert.Nil(t, j.Attempt())

	require.NoError(t, j.Advance())
	assert.Equal(t, ViewGame, j.View())
	assert.Equal(t, 1, j.Pointer())

	completeActive(t, j)
	assert.Equal(t, ViewStageComplete, j.View())
	assert.Equal(t, []report{{g.ID, 1, 15}}, rep.calls)
	assert.Equal(t, 1, rep.progress[g.ID])

	require.NoError(t, j.Advance())
	assert.Equal(t, ViewGame, j.View())
	assert.Equal(t, 2, j.Pointer())
}

func TestWordScrambleSkipsStageComplete(t *testing.T) {
	g := guardian(t, 2)
	rep := newReporter(g.ID, 2)
	j := open(t, g, 2, rep)

	require.NoError(t, j.Settle())
	first := j.Attempt()
	require.NotNil(t, first)
	require.Equal(t, catalog.GameWordScramble, first.Stage().Type)

	require.NoError(t, first.Complete(context.Background()))
	assert.Equal(t, ViewGame, j.View())
	assert.Equal(t, 4, j.Pointer())
	assert.Equal(t, []report{{g.ID, 3, 25}}, rep.calls)

	next := j.Attempt()
	require.NotNil(t, next)
	assert.NotSame(t, first, next)
	assert.Equal(t, 4, next.Stage().Number)
}

func TestWordScrambleFinalStageDoubleReport(t *testing.T) {
	g := &catalog.Guardian{
		ID:          77,
		Name:        i18n.LocalizedString{i18n.Portuguese: "Teste"},
		FinalReward: 90,
		Stages: []catalog.Stage{
			{Number: 1, Type: catalog.GameRiddle, Points: 10, Payload: catalog.RiddlePayload{}},
			{Number: 2, Type: catalog.GameWordScramble, Points: 20, Payload: catalog.WordScramblePayload{
				Sentence: i18n.LocalizedString{i18n.Portuguese: "O RIO AGRADECE"},
			}},
		},
	}
	rep := newReporter(g.ID, 1)
	j := open(t, g, 1, rep)
	require.NoError(t, j.Settle())
	completeActive(t, j)

	assert.Equal(t, ViewFinalComplete, j.View())
	assert.Equal(t, []report{{77, 2, 20}, {77, 2, 90}}, rep.calls)
	// The second report lands on an already-recorded stage.
	assert.Equal(t, 20, rep.balance)
	assert.Equal(t, 2, rep.progress[77])
	assert.Equal(t, rep.balance, j.Reward(), "reward shows only what was credited")
}

func TestAdventureAwardsEverythingAtOnce(t *testing.T) {
	g := guardian(t, 5)
	require.Equal(t, catalog.GameAdventure, g.Stages[0].Type)

	rep := newReporter(g.ID, 0)
	j := open(t, g, 0, rep)
	require.NoError(t, j.Settle())
	require.NoError(t, j.Advance())
	require.Equal(t, 1, j.Pointer())

	completeActive(t, j)
	assert.Equal(t, ViewFinalComplete, j.View())
	assert.Equal(t, []report{{g.ID, g.StageCount(), g.TotalPoints()}}, rep.calls)
	assert.Equal(t, g.StageCount(), rep.progress[g.ID])
	assert.Equal(t, g.TotalPoints(), j.Reward())
}

func TestDefaultStageAdvancesPointerByOne(t *testing.T) {
	g := guardian(t, 1)
	rep := newReporter(g.ID, 0)
	j := open(t, g, 0, rep)
	require.NoError(t, j.Settle())
	require.NoError(t, j.Advance())

	for k := 1; k < g.StageCount(); k++ {
		require.Equal(t, k, j.Pointer())
		completeActive(t, j)
		require.Equal(t, ViewStageComplete, j.View())
		assert.Equal(t, k, j.Pointer(), "pointer moves only on advance")
		assert.Equal(t, k, rep.progress[g.ID])
		require.NoError(t, j.Advance())
	}
	completeActive(t, j)
	assert.Equal(t, ViewFinalComplete, j.View())
	assert.Equal(t, 15+20+25+30+g.FinalReward, rep.balance)
}

func TestReopenFinishedJourney(t *testing.T) {
	g := guardian(t, 3)
	rep := newReporter(g.ID, g.StageCount())
	j := open(t, g, g.StageCount(), rep)
	require.NoError(t, j.Settle())

	assert.Equal(t, ViewFinalComplete, j.View())
	assert.Nil(t, j.Attempt())
	assert.ErrorIs(t, j.Advance(), ErrInvalidTransition)
	assert.Empty(t, rep.calls)
	assert.Zero(t, j.Reward())
}

func TestProgressAboveStageCountIsClamped(t *testing.T) {
	g := guardian(t, 1)
	j := open(t, g, 99, newReporter(g.ID, 99))
	require.NoError(t, j.Settle())
	assert.Equal(t, ViewFinalComplete, j.View())
}

func TestDuplicateCompletionIgnored(t *testing.T) {
	g := guardian(t, 1)
	rep := newReporter(g.ID, 1)
	j := open(t, g, 1, rep)
	require.NoError(t, j.Settle())

	a := j.Attempt()
	require.NotNil(t, a)
	require.NoError(t, a.Complete(context.Background()))
	select {
	case <-a.Done():
	default:
		t.Fatal("attempt not retired after completion")
	}

	err := a.Complete(context.Background())
	assert.ErrorIs(t, err, ErrAttemptRetired)

	// Still rejected once the next stage is active.
	require.NoError(t, j.Advance())
	assert.ErrorIs(t, a.Complete(context.Background()), ErrAttemptRetired)
	assert.Len(t, rep.calls, 1)
	assert.Equal(t, 3, j.Pointer())
}

func TestStaleCompletionAfterClose(t *testing.T) {
	g := guardian(t, 1)
	rep := newReporter(g.ID, 1)
	j, err := Open(g, 1, rep, WithPicker(variant.NewSeeded(1)))
	require.NoError(t, err)
	require.NoError(t, j.Settle())

	a := j.Attempt()
	require.NotNil(t, a)
	j.Close()
	j.Close()

	select {
	case <-a.Done():
	default:
		t.Fatal("attempt not retired on close")
	}
	assert.ErrorIs(t, a.Complete(context.Background()), ErrJourneyClosed)
	assert.ErrorIs(t, j.Advance(), ErrJourneyClosed)
	assert.True(t, j.Closed())
	assert.Empty(t, rep.calls)
	assert.Equal(t, 2, j.Pointer())
}

func TestTermoNeedNewVariant(t *testing.T) {
	g := guardian(t, 1)
	rep := newReporter(g.ID, 4)
	j := open(t, g, 4, rep)
	require.NoError(t, j.Settle())

	a := j.Attempt()
	require.NotNil(t, a)
	b, err := a.NeedNewVariant()
	require.NoError(t, err)
	require.NotNil(t, b.Resolved().Secret)

	assert.ErrorIs(t, a.Complete(context.Background()), ErrAttemptRetired)
	_, err = a.NeedNewVariant()
	assert.ErrorIs(t, err, ErrAttemptRetired)

	assert.Same(t, b, j.Attempt())
	assert.Equal(t, 5, j.Pointer())
	require.NoError(t, b.Complete(context.Background()))
	assert.Equal(t, []report{{g.ID, 5, 50}}, rep.calls)
}

func TestNeedNewVariantUnsupportedKeepsAttempt(t *testing.T) {
	g := guardian(t, 1)
	j := open(t, g, 1, newReporter(g.ID, 1))
	require.NoError(t, j.Settle())

	a := j.Attempt()
	require.Equal(t, catalog.GameWordSearch, a.Stage().Type)
	_, err := a.NeedNewVariant()
	assert.ErrorIs(t, err, variant.ErrRerollUnsupported)
	assert.Same(t, a, j.Attempt())
	require.NoError(t, a.Complete(context.Background()))
}

func TestEmptyVariantListBlocks(t *testing.T) {
	g := &catalog.Guardian{
		ID:   88,
		Name: i18n.LocalizedString{i18n.Portuguese: "Teste"},
		Stages: []catalog.Stage{
			{Number: 1, Type: catalog.GameRiddle, Points: 10, Payload: catalog.RiddlePayload{}},
			{Number: 2, Type: catalog.GameTermo, Points: 10, Payload: catalog.TermoPayload{}},
		},
	}
	rep := newReporter(g.ID, 0)
	j := open(t, g, 0, rep)
	require.NoError(t, j.Settle())
	require.NoError(t, j.Advance())
	completeActive(t, j)
	require.Equal(t, ViewStageComplete, j.View())

	require.NoError(t, j.Advance())
	assert.Equal(t, ViewLoading, j.View())
	assert.True(t, j.Blocked())
	assert.Nil(t, j.Attempt())

	var defect *ContentDefectError
	require.True(t, errors.As(j.Err(), &defect))
	assert.Equal(t, 88, defect.GuardianID)
	assert.Equal(t, 2, defect.Stage)
	assert.ErrorIs(t, j.Err(), variant.ErrNoVariantsAvailable)

	assert.ErrorIs(t, j.Advance(), ErrBlocked)
	assert.ErrorIs(t, j.Settle(), ErrBlocked)
	assert.Equal(t, []report{{88, 1, 10}}, rep.calls)
}

type failingReporter struct{}

func (failingReporter) ReportStageCompletion(context.Context, int, int, int) error {
	return errors.New("disk full")
}

func TestFailedReportCreditsNothing(t *testing.T) {
	g := guardian(t, 1)
	j := open(t, g, 4, failingReporter{})
	require.NoError(t, j.Settle())
	completeActive(t, j)

	assert.Equal(t, ViewFinalComplete, j.View(), "storage failures do not stop the journey")
	assert.Zero(t, j.Reward())
}

func TestSettleOnlyFromLoading(t *testing.T) {
	g := guardian(t, 2)
	j := open(t, g, 0, newReporter(g.ID, 0))
	require.NoError(t, j.Settle())
	assert.ErrorIs(t, j.Settle(), ErrInvalidTransition)
}

func TestAdvanceFromGameIsInvalid(t *testing.T) {
	g := guardian(t, 2)
	j := open(t, g, 1, newReporter(g.ID, 1))
	require.NoError(t, j.Settle())
	require.Equal(t, ViewGame, j.View())
	assert.ErrorIs(t, j.Advance(), ErrInvalidTransition)
}

func TestSettleAfter(t *testing.T) {
	g := guardian(t, 2)

	t.Run("waits then settles", func(t *testing.T) {
		j := open(t, g, 0, newReporter(g.ID, 0))
		require.NoError(t, j.SettleAfter(context.Background(), 5*time.Millisecond))
		assert.Equal(t, ViewStory, j.View())
	})

	t.Run("context cancelled", func(t *testing.T) {
		j := open(t, g, 0, newReporter(g.ID, 0))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, j.SettleAfter(ctx, time.Hour), context.Canceled)
		assert.Equal(t, ViewLoading, j.View())
	})

	t.Run("closed while waiting", func(t *testing.T) {
		j := open(t, g, 0, newReporter(g.ID, 0))
		errc := make(chan error, 1)
		go func() { errc <- j.SettleAfter(context.Background(), time.Hour) }()
		j.Close()
		assert.ErrorIs(t, <-errc, ErrJourneyClosed)
	})
}

func TestOpenRejectsBadInput(t *testing.T) {
	g := guardian(t, 1)
	_, err := Open(nil, 0, newReporter(1, 0))
	assert.Error(t, err)
	_, err = Open(g, 0, nil)
	assert.Error(t, err)
	_, err = Open(g, -1, newReporter(1, 0))
	assert.Error(t, err)
}

func TestRunIDsAreUnique(t *testing.T) {
	g := guardian(t, 1)
	a := open(t, g, 0, newReporter(g.ID, 0))
	b := open(t, g, 0, newReporter(g.ID, 0))
	assert.NotEqual(t, a.ID(), b.ID())
}
