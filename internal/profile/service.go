// Package profile holds the player accounts: sign-up and login, the PN
// balance, unlocked guardians and per-guardian progress.
//
// A Session is created at login and is the only way to mutate a profile.
// Every mutation is written through to the BlobStore immediately and, when
// an event repo is configured, appended to the event history.
package profile

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/ecoamazonia/guardioes/internal/i18n"
	"github.com/ecoamazonia/guardioes/internal/store"
)

const (
	usersObject     = "users"
	sessionObject   = "session"
	sessionProperty = "current"

	MinPasswordLen = 4
	MaxPasswordLen = 8
)

var (
	ErrUserExists          = errors.New("username already taken")
	ErrInvalidUsername     = errors.New("username must be 1-32 letters, digits, '.', '-' or '_'")
	ErrInvalidPassword     = fmt.Errorf("password must have between %d and %d characters", MinPasswordLen, MaxPasswordLen)
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrNoSession           = errors.New("no active session")
	ErrLoggedOut           = errors.New("session logged out")
	ErrInsufficientPoints  = errors.New("not enough points")
	ErrAlreadyUnlocked     = errors.New("guardian already unlocked")
	ErrNotUnlocked         = errors.New("guardian not unlocked")
	ErrNonPositiveAmount   = errors.New("amount must be positive")
	ErrProgressOutOfBounds = errors.New("stage outside the guardian's journey")
	ErrInvalidEmail        = errors.New("invalid email address")
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,32}$`)

// Option configures a Service.
type Option func(*Service)

// WithEventRepo records balance and progress changes in the event history.
func WithEventRepo(r store.EventRepo) Option {
	return func(s *Service) { s.events = r }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBcryptCost sets the password hashing cost.
func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.bcryptCost = cost }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service manages accounts stored in a BlobStore.
type Service struct {
	mu         sync.Mutex
	blobs      BlobStore
	events     store.EventRepo
	logger     *zap.Logger
	bcryptCost int
	now        func() time.Time
}

// NewService creates a Service. A nil blobs falls back to memory.
func NewService(blobs BlobStore, opts ...Option) *Service {
	if blobs == nil {
		blobs = NewMemoryBlobs()
	}
	s := &Service{
		blobs:      blobs,
		logger:     zap.NewNop(),
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignUp creates an account and logs it in.
func (s *Service) SignUp(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	if n := utf8.RuneCountInString(password); n < MinPasswordLen || n > MaxPasswordLen {
		return nil, ErrInvalidPassword
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.blobs.ObjectPropExists(usersObject, username) {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	u := &User{
		Username:     username,
		PasswordHash: string(hash),
		Language:     i18n.Default,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	u.normalize()
	if err := s.saveUser(u); err != nil {
		return nil, err
	}
	s.logger.Info("user signed up", zap.String("username", username))
	return s.startSession(u)
}

// Login checks the password and starts a session.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !usernamePattern.MatchString(username) || !s.blobs.ObjectPropExists(usersObject, username) {
		return nil, ErrInvalidCredentials
	}
	u, err := s.loadUser(username)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("login rejected", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	return s.startSession(u)
}

// Resume restores the session of the last player who did not log out.
func (s *Service) Resume(ctx context.Context) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.blobs.ObjectPropExists(sessionObject, sessionProperty) {
		return nil, ErrNoSession
	}
	data, err := s.blobs.LoadObjectProp(sessionObject, sessionProperty)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	username := strings.TrimSpace(string(data))
	if username == "" || !s.blobs.ObjectPropExists(usersObject, username) {
		return nil, ErrNoSession
	}
	u, err := s.loadUser(username)
	if err != nil {
		return nil, err
	}
	return s.startSession(u)
}

// Lookup returns a copy of a stored profile without starting a session.
func (s *Service) Lookup(username string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !usernamePattern.MatchString(username) || !s.blobs.ObjectPropExists(usersObject, username) {
		return User{}, fmt.Errorf("user %q: %w", username, ErrInvalidCredentials)
	}
	u, err := s.loadUser(username)
	if err != nil {
		return User{}, err
	}
	return u.clone(), nil
}

func (s *Service) startSession(u *User) (*Session, error) {
	if err := s.blobs.SaveObjectProp(sessionObject, sessionProperty, []byte(u.Username)); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.logger.Debug("session started", zap.String("username", u.Username))
	return &Session{svc: s, user: u}, nil
}

func (s *Service) endSession(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.blobs.SaveObjectProp(sessionObject, sessionProperty, nil); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.logger.Debug("session ended", zap.String("username", username))
	return nil
}

func (s *Service) loadUser(username string) (*User, error) {
	data, err := s.blobs.LoadObjectProp(usersObject, username)
	if err != nil {
		return nil, fmt.Errorf("load user %q: %w", username, err)
	}
	var u User
	if err := yaml.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("unmarshal user %q: %w", username, err)
	}
	u.normalize()
	return &u, nil
}

func (s *Service) saveUser(u *User) error {
	u.UpdatedAt = s.now().UTC()
	data, err := yaml.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal user %q: %w", u.Username, err)
	}
	if err := s.blobs.SaveObjectProp(usersObject, u.Username, data); err != nil {
		return fmt.Errorf("save user %q: %w", u.Username, err)
	}
	return nil
}

// record appends to the event history. History is best effort; a failure
// never undoes a profile change.
func (s *Service) record(ctx context.Context, fn func(store.EventRepo) error) {
	if s.events == nil {
		return
	}
	if err := fn(s.events); err != nil {
		s.logger.Warn("event append failed", zap.Error(err))
	}
}
