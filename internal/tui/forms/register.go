// ABOUTME: Registration form with password confirmation and terms acceptance
// ABOUTME: Field-level validation runs before anything touches the network

package forms

import (
	"fmt"
	"strings"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Registration form limits
const minPasswordLength = 8

// RegisterSubmittedMsg carries the validated registration payload
type RegisterSubmittedMsg struct {
	Input client.RegisterInput
}

// RegisterCancelledMsg is sent when the user backs out
type RegisterCancelledMsg struct{}

// Register is the account creation form model
type Register struct {
	form *huh.Form

	username string
	name     string
	email    string
	password string
	confirm  string
	terms    bool
	width    int
}

// NewRegister creates a registration form
func NewRegister() *Register {
	r := &Register{}
	r.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				CharLimit(150).
				Value(&r.username).
				Validate(requireField("username")),
			huh.NewInput().
				Title("Full name").
				CharLimit(150).
				Value(&r.name).
				Validate(requireField("name")),
			huh.NewInput().
				Title("Email").
				CharLimit(254).
				Value(&r.email).
				Validate(validateEmail),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&r.password).
				Validate(validatePassword),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&r.confirm).
				Validate(r.validateConfirmation),
			huh.NewConfirm().
				Title("I accept the terms of use").
				Affirmative("Accept").
				Negative("Decline").
				Value(&r.terms).
				Validate(validateTerms),
		).Title("Create account").
			Description("Join TrocaMat to trade educational materials"),
	).WithTheme(createTheme())
	return r
}

// Init implements tea.Model
func (r *Register) Init() tea.Cmd {
	return r.form.Init()
}

// Update implements tea.Model
func (r *Register) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return r, func() tea.Msg { return RegisterCancelledMsg{} }
	}

	form, cmd := r.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		r.form = f
	}

	if r.form.State == huh.StateCompleted {
		input := client.RegisterInput{
			Username: strings.TrimSpace(r.username),
			Name:     strings.TrimSpace(r.name),
			Email:    strings.TrimSpace(r.email),
			Password: r.password,
		}
		return r, func() tea.Msg {
			return RegisterSubmittedMsg{Input: input}
		}
	}

	return r, cmd
}

// View implements tea.Model
func (r *Register) View() string {
	return r.form.View()
}

func (r *Register) validateConfirmation(s string) error {
	if s != r.password {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}

func validatePassword(s string) error {
	if len(s) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	return nil
}

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("email is required")
	}
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 || !strings.Contains(s[at+1:], ".") {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}

func validateTerms(accepted bool) error {
	if !accepted {
		return fmt.Errorf("you must accept the terms to register")
	}
	return nil
}
