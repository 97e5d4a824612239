package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// authModel backs both the login and register screens.
type authModel struct {
	register bool
	inputs   []textinput.Model
	focus    int
	busy     bool
	notice   string
}

func newAuth(register bool) authModel {
	username := textinput.New()
	username.Placeholder = "Username"
	username.Prompt = ""
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword

	inputs := []textinput.Model{username, password}
	if register {
		confirm := textinput.New()
		confirm.Placeholder = "Confirm password"
		confirm.Prompt = ""
		confirm.EchoMode = textinput.EchoPassword
		inputs = append(inputs, confirm)
	}
	return authModel{register: register, inputs: inputs}
}

func (a *authModel) username() string {
	return strings.TrimSpace(a.inputs[0].Value())
}

func (a *authModel) password() string {
	return a.inputs[1].Value()
}

// handleKey updates the fields and reports whether the form was
// submitted. Enter advances through the fields and submits on the last
// one.
func (a *authModel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if a.busy {
		return false, nil
	}
	a.notice = ""

	switch msg.String() {
	case "tab", "down":
		a.setFocus((a.focus + 1) % len(a.inputs))
		return false, nil
	case "shift+tab", "up":
		a.setFocus((a.focus - 1 + len(a.inputs)) % len(a.inputs))
		return false, nil
	case "enter":
		if a.focus < len(a.inputs)-1 {
			a.setFocus(a.focus + 1)
			return false, nil
		}
		return a.submit(), nil
	}

	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return false, cmd
}

func (a *authModel) submit() bool {
	if a.username() == "" || a.password() == "" {
		a.notice = "username and password are required"
		return false
	}
	if a.register && a.inputs[2].Value() != a.password() {
		a.notice = "password confirmation does not match"
		return false
	}
	a.busy = true
	return true
}

func (a *authModel) setFocus(focus int) {
	a.focus = focus
	for i := range a.inputs {
		if i == focus {
			a.inputs[i].Focus()
		} else {
			a.inputs[i].Blur()
		}
	}
}

func (a *authModel) view() string {
	title := "Sign in to your account"
	action := "LOGIN"
	footer := "enter submit • ctrl+r create an account • ctrl+c quit"
	if a.register {
		title = "Create a new account"
		action = "REGISTER"
		footer = "enter submit • esc back to login • ctrl+c quit"
	}

	labels := []string{"Username", "Password", "Confirm"}
	var b strings.Builder
	b.WriteString(formSectionTitle.Render(title) + "\n\n")
	for i, input := range a.inputs {
		marker := "  "
		if i == a.focus {
			marker = formFocusMark.Render("> ")
		}
		b.WriteString(marker + labels[i] + ": " + input.View() + "\n")
	}
	b.WriteString("\n")
	if a.busy {
		b.WriteString(hint(action+"...") + "\n")
	} else {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render("[ "+action+" ]") + "\n")
	}
	if a.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(a.notice) + "\n")
	}
	b.WriteString("\n" + hint(footer))
	return b.String()
}
