package profile

import (
	"slices"
	"time"

	"github.com/ecoamazonia/guardioes/internal/i18n"
)

// User is the persisted profile of one player.
type User struct {
	Username     string        `yaml:"username"`
	PasswordHash string        `yaml:"passwordHash"`
	Name         string        `yaml:"name,omitempty"`
	Email        string        `yaml:"email,omitempty"`
	Language     i18n.Language `yaml:"language"`

	// Balance is the player's PN (nature points).
	Balance  int         `yaml:"balance"`
	Unlocked []int       `yaml:"unlocked"`
	Progress map[int]int `yaml:"progress"`

	// QuizzesCompleted maps topic to the number of finished quiz rounds.
	QuizzesCompleted map[string]int `yaml:"quizzesCompleted,omitempty"`

	CreatedAt time.Time `yaml:"createdAt"`
	UpdatedAt time.Time `yaml:"updatedAt"`
}

// IsUnlocked reports whether the guardian was bought.
func (u *User) IsUnlocked(guardianID int) bool {
	return slices.Contains(u.Unlocked, guardianID)
}

// GuardianProgress returns the highest completed stage, 0 if not started.
func (u *User) GuardianProgress(guardianID int) int {
	return u.Progress[guardianID]
}

func (u *User) clone() User {
	c := *u
	c.Unlocked = slices.Clone(u.Unlocked)
	c.Progress = make(map[int]int, len(u.Progress))
	for k, v := range u.Progress {
		c.Progress[k] = v
	}
	c.QuizzesCompleted = make(map[string]int, len(u.QuizzesCompleted))
	for k, v := range u.QuizzesCompleted {
		c.QuizzesCompleted[k] = v
	}
	return c
}

func (u *User) normalize() {
	if u.Progress == nil {
		u.Progress = make(map[int]int)
	}
	if u.QuizzesCompleted == nil {
		u.QuizzesCompleted = make(map[string]int)
	}
	if u.Language == "" {
		u.Language = i18n.Default
	}
}
