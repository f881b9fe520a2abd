// ABOUTME: Login form as a bubbletea model wrapping a huh form
// ABOUTME: Emits the credentials for the root model to run against the store

package forms

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// LoginSubmittedMsg carries the entered credentials
type LoginSubmittedMsg struct {
	Username string
	Password string
}

// LoginCancelledMsg is sent when the user backs out
type LoginCancelledMsg struct{}

// Login is the login form model
type Login struct {
	form     *huh.Form
	username string
	password string
	width    int
}

// NewLogin creates a login form
func NewLogin() *Login {
	l := &Login{}
	l.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				CharLimit(150).
				Value(&l.username).
				Validate(requireField("username")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&l.password).
				Validate(requireField("password")),
		).Title("Log in").
			Description("Enter your TrocaMat credentials"),
	).WithTheme(createTheme())
	return l
}

// Init implements tea.Model
func (l *Login) Init() tea.Cmd {
	return l.form.Init()
}

// Update implements tea.Model
func (l *Login) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return l, func() tea.Msg { return LoginCancelledMsg{} }
	}

	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	if l.form.State == huh.StateCompleted {
		username, password := l.username, l.password
		return l, func() tea.Msg {
			return LoginSubmittedMsg{Username: username, Password: password}
		}
	}

	return l, cmd
}

// View implements tea.Model
func (l *Login) View() string {
	return l.form.View()
}

func requireField(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
