package profile

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ecoamazonia/guardioes/internal/catalog"
	"github.com/ecoamazonia/guardioes/internal/i18n"
	"github.com/ecoamazonia/guardioes/internal/store"
)

// Session is a logged-in player. It lives from login to logout and is the
// single writer of that player's profile.
type Session struct {
	svc    *Service
	user   *User
	closed bool
}

// Username returns the player's username.
func (s *Session) Username() string {
	s.svc.mu.Lock()
	defer s.svc.mu.Unlock()
	return s.user.Username
}

// User returns a copy of the current profile.
func (s *Session) User() User {
	s.svc.mu.Lock()
	defer s.svc.mu.Unlock()
	return s.user.clone()
}

// Balance returns the PN balance.
func (s *Session) Balance() int {
	s.svc.mu.Lock()
	defer s.svc.mu.Unlock()
	return s.user.Balance
}

// Language returns the player's interface language.
func (s *Session) Language() i18n.Language {
	s.svc.mu.Lock()
	defer s.svc.mu.Unlock()
	return s.user.Language
}

// Progress returns the highest stage completed for the guardian.
func (s *Session) Progress(guardianID int) int {
	s.svc.mu.Lock()
	defer s.svc.mu.Unlock()
	return s.user.GuardianProgress(guardianID)
}

// IsUnlocked reports whether the player bought the guardian.
func (s *Session) IsUnlocked(guardianID int) bool {
	s.svc.mu.Lock()
	defer s.svc.mu.Unlock()
	return s.user.IsUnlocked(guardianID)
}

// Closed reports whether Logout was called.
func (s *Session) Closed() bool {
	s.svc.mu.Lock()
	defer s.svc.mu.Unlock()
	return s.closed
}

// mutate applies fn to a copy of the profile and persists it. The in-memory
// profile only changes when the save succeeds.
func (s *Session) mutate(fn func(u *User) error) error {
	if s.closed {
		return ErrLoggedOut
	}
	next := s.user.clone()
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.svc.saveUser(&next); err != nil {
		return err
	}
	*s.user = next
	return nil
}

// SetLanguage changes the interface language.
func (s *Session) SetLanguage(lang i18n.Language) error {
	s.svc.mu.Lock()
	defer s.svc.mu.Unlock()
	return s.mutate(func(u *User) error {
		u.Language = lang
		return nil
	})
}

// SetDetails updates the optional name and email. Empty values clear them.
func (s *Session) SetDetails(name, email string) error {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if email != "" {
		addr, err := mail.ParseAddress(email)
		if err != nil || addr.Address != email {
			return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
		}
	}
	s.svc.mu.Lock()
	defer s.svc.mu.Unlock()
	return s.mutate(func(u *User) error {
		u.Name = name
		u.Email = email
		return nil
	})
}

// AddPoints credits the balance.
func (s *Session) AddPoints(ctx context.Context, source string, amount int, reason string) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	s.svc.mu.Lock()
	defer s.svc.mu.Unlock()

	err := s.mutate(func(u *User) error {
		u.Balance += amount
		return nil
	})
	if err != nil {
		return err
	}
	s.recordAward(ctx, source, amount, reason)
	return nil
}

// UnlockGuardian buys access to a guardian, deducting its cost.
func (s *Session) UnlockGuardian(ctx context.Context, g *catalog.Guardian) error {
	s.svc.mu.Lock()
	defer s.svc.mu.Unlock()

	err := s.mutate(func(u *User) error {
		if u.IsUnlocked(g.ID) {
			return ErrAlreadyUnlocked
		}
		if u.Balance < g.Cost {
			return fmt.Errorf("%w: have %d, need %d", ErrInsufficientPoints, u.Balance, g.Cost)
		}
		u.Balance -= g.Cost
		u.Unlocked = append(u.Unlocked, g.ID)
		return nil
	})
	if err != nil {
		return err
	}
	s.svc.logger.Info("guardian unlocked",
		zap.String("username", s.user.Username), zap.Int("guardian_id", g.ID), zap.Int("cost", g.Cost))
	if g.Cost > 0 {
		s.recordAward(ctx, store.AwardSourceUnlock, -g.Cost, fmt.Sprintf("guardian %d", g.ID))
	}
	return nil
}

// ReportStageCompletion records a finished stage. Reports for a stage at or
// below the stored progress change nothing.
func (s *Session) ReportStageCompletion(ctx context.Context, guardianID, stage, points int) error {
	s.svc.mu.Lock()
	defer s.svc.mu.Unlock()

	if s.closed {
		return ErrLoggedOut
	}
	if stage <= 0 {
		return fmt.Errorf("stage %d: %w", stage, ErrProgressOutOfBounds)
	}

	username := s.user.Username
	if stage <= s.user.GuardianProgress(guardianID) {
		s.svc.logger.Debug("stage already recorded",
			zap.String("username", username), zap.Int("guardian_id", guardianID), zap.Int("stage", stage))
		s.svc.record(ctx, func(r store.EventRepo) error {
			return r.AppendStageEvent(ctx, store.StageEventData{
				Username: username, GuardianID: guardianID, Stage: stage, Points: points,
			})
		})
		return nil
	}

	err := s.mutate(func(u *User) error {
		u.Balance += points
		u.Progress[guardianID] = stage
		return nil
	})
	if err != nil {
		return err
	}

	s.svc.record(ctx, func(r store.EventRepo) error {
		return r.AppendStageEvent(ctx, store.StageEventData{
			Username: username, GuardianID: guardianID, Stage: stage, Points: points, Applied: true,
		})
	})
	if points > 0 {
		s.recordAward(ctx, store.AwardSourceStage, points, fmt.Sprintf("guardian %d stage %d", guardianID, stage))
	}
	return nil
}

// QuizResult summarizes one finished quiz round.
type QuizResult struct {
	SessionID uuid.UUID
	Topic     string
	Language  i18n.Language
	Questions int
	Correct   int
	Points    int
	Fallback  bool
}

// RecordQuiz credits a quiz round's points and logs the round.
func (s *Session) RecordQuiz(ctx context.Context, res QuizResult) error {
	s.svc.mu.Lock()
	defer s.svc.mu.Unlock()

	err := s.mutate(func(u *User) error {
		if res.Points > 0 {
			u.Balance += res.Points
		}
		u.QuizzesCompleted[res.Topic]++
		return nil
	})
	if err != nil {
		return err
	}

	username := s.user.Username
	s.svc.record(ctx, func(r store.EventRepo) error {
		return r.AppendQuizEvent(ctx, store.QuizEventData{
			SessionID: res.SessionID.String(),
			Username:  username,
			Topic:     res.Topic,
			Language:  string(res.Language),
			Questions: res.Questions,
			Correct:   res.Correct,
			Points:    res.Points,
			Fallback:  res.Fallback,
		})
	})
	if res.Points > 0 {
		s.recordAward(ctx, store.AwardSourceQuiz, res.Points, res.Topic)
	}
	return nil
}

// Reset clears balance, unlocks, progress and quiz history, keeping the
// account itself.
func (s *Session) Reset(ctx context.Context) error {
	s.svc.mu.Lock()
	defer s.svc.mu.Unlock()

	err := s.mutate(func(u *User) error {
		u.Balance = 0
		u.Unlocked = nil
		u.Progress = make(map[int]int)
		u.QuizzesCompleted = make(map[string]int)
		return nil
	})
	if err != nil {
		return err
	}
	username := s.user.Username
	s.svc.record(ctx, func(r store.EventRepo) error {
		_, err := r.DeleteUserEvents(ctx, username)
		return err
	})
	s.svc.logger.Info("profile reset", zap.String("username", username))
	return nil
}

// Logout ends the session. Later mutations return ErrLoggedOut.
func (s *Session) Logout() error {
	s.svc.mu.Lock()
	if s.closed {
		s.svc.mu.Unlock()
		return nil
	}
	s.closed = true
	username := s.user.Username
	s.svc.mu.Unlock()
	return s.svc.endSession(username)
}

// recordAward must be called with the service lock held.
func (s *Session) recordAward(ctx context.Context, source string, amount int, reason string) {
	username, balance := s.user.Username, s.user.Balance
	s.svc.record(ctx, func(r store.EventRepo) error {
		return r.AppendAwardEvent(ctx, store.AwardEventData{
			Username: username,
			Source:   source,
			Amount:   amount,
			Balance:  balance,
			Reason:   reason,
		})
	})
}
