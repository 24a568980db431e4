// Package login is the sign-in and sign-up screen.
package login

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/ecoamazonia/guardioes/internal/profile"
	"github.com/ecoamazonia/guardioes/internal/router"
	"github.com/ecoamazonia/guardioes/internal/screen"
	"github.com/ecoamazonia/guardioes/internal/ui/components"
	"github.com/ecoamazonia/guardioes/internal/ui/layout"
	"github.com/ecoamazonia/guardioes/internal/ui/theme"
)

const usernameLimit = 32

type authDoneMsg struct {
	Session *profile.Session
	Err     error
}

type field int

const (
	fieldUsername field = iota
	fieldPassword
)

// LoginScreen collects a username and password. Tab switches between
// signing in and creating an account.
type LoginScreen struct {
	env  *screen.Env
	next func() screen.Screen

	signup   bool
	focus    field
	username components.TextInput
	password components.TextInput
	busy     bool
	errMsg   string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen. next builds the screen shown once signed in.
func New(env *screen.Env, next func() screen.Screen) *LoginScreen {
	username := components.NewTextInput(env.T("auth_username"), usernameLimit)
	username.Accept = validUsernameRune
	password := components.NewPasswordInput(env.T("auth_password"), profile.MaxPasswordLen)
	password.Blur()
	return &LoginScreen{
		env:      env,
		next:     next,
		username: username,
		password: password,
	}
}

func validUsernameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.', r == '_', r == '-':
		return true
	}
	return false
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.username.Focus()
}

func (s *LoginScreen) Title() string {
	if s.signup {
		return s.env.T("auth_signup_title")
	}
	return s.env.T("auth_title")
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "OK"},
		{Key: "Tab", Description: s.toggleLabel()},
		{Key: "↑↓", Description: "Field"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LoginScreen) toggleLabel() string {
	if s.signup {
		return s.env.T("auth_toggle_login")
	}
	return s.env.T("auth_toggle_signup")
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = s.errorText(msg.Err)
			s.password.Reset()
			return s, s.setFocus(fieldPassword)
		}
		s.env.Session = msg.Session
		s.env.Log().Info("signed in", zap.String("username", msg.Session.Username()), zap.Bool("signup", s.signup))
		next := s.next()
		return s, func() tea.Msg { return router.ResetScreenMsg{Screen: next} }

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "tab":
			s.signup = !s.signup
			s.errMsg = ""
			return s, nil
		case "up", "shift+tab":
			return s, s.setFocus(fieldUsername)
		case "down":
			return s, s.setFocus(fieldPassword)
		case "enter":
			if s.focus == fieldUsername {
				if strings.TrimSpace(s.username.Value()) == "" {
					s.errMsg = s.env.T("auth_empty_username")
					return s, nil
				}
				return s, s.setFocus(fieldPassword)
			}
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	if s.focus == fieldUsername {
		s.username, cmd = s.username.Update(msg)
	} else {
		s.password, cmd = s.password.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) setFocus(f field) tea.Cmd {
	s.focus = f
	if f == fieldUsername {
		s.password.Blur()
		return s.username.Focus()
	}
	s.username.Blur()
	return s.password.Focus()
}

func (s *LoginScreen) submit() tea.Cmd {
	username := strings.TrimSpace(s.username.Value())
	if username == "" {
		s.errMsg = s.env.T("auth_empty_username")
		return s.setFocus(fieldUsername)
	}
	password := s.password.Value()
	signup := s.signup
	profiles := s.env.Profiles
	s.busy = true
	s.errMsg = ""

	return func() tea.Msg {
		ctx := context.Background()
		var (
			sess *profile.Session
			err  error
		)
		if signup {
			sess, err = profiles.SignUp(ctx, username, password)
		} else {
			sess, err = profiles.Login(ctx, username, password)
		}
		return authDoneMsg{Session: sess, Err: err}
	}
}

func (s *LoginScreen) errorText(err error) string {
	switch {
	case errors.Is(err, profile.ErrInvalidPassword):
		return s.env.T("auth_bad_password")
	case errors.Is(err, profile.ErrUserExists):
		return s.env.T("auth_user_exists")
	case errors.Is(err, profile.ErrInvalidUsername):
		return s.env.T("auth_bad_username")
	case errors.Is(err, profile.ErrInvalidCredentials):
		return s.env.T("auth_invalid")
	default:
		s.env.Log().Error("authentication failed", zap.Error(err))
		return err.Error()
	}
}

func (s *LoginScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	label := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw - 6).Render(s.Title()))
	b.WriteString("\n\n")
	b.WriteString(label.Render(s.env.T("auth_username")))
	b.WriteString("\n")
	b.WriteString(s.username.View())
	b.WriteString("\n\n")
	b.WriteString(label.Render(s.env.T("auth_password")))
	b.WriteString("\n")
	b.WriteString(s.password.View())
	b.WriteString("\n\n")
	switch {
	case s.busy:
		b.WriteString(theme.Hint.Render(s.env.T("gdetail_loading")))
	case s.errMsg != "":
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	default:
		b.WriteString(theme.Hint.Render(s.toggleLabel()))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, components.Card(b.String(), cw))
}
