package controller

import (
	"pairctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgEditing processes key presses while a pair is being edited.
// Every printable key is text here, including the Normal-mode shortcuts.
func handleKeyMsgEditing(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Commit):
		k := m.KeyDraft()
		if m.CommitPair() {
			LogDebug(controllerSubsystem, "stored pair %q", k)
		} else {
			LogDebug(controllerSubsystem, "dropped pair with empty key")
		}
		return m, nil

	case key.Matches(msg, m.Keys.Cancel):
		m.CancelEditing()
		return m, nil

	case key.Matches(msg, m.Keys.SwitchField):
		m.SwitchField()
		return m, nil

	case key.Matches(msg, m.Keys.Backspace):
		m.Backspace()
		return m, nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.AppendRune(r)
		}
	case tea.KeySpace:
		m.AppendRune(' ')
	}
	return m, nil
}
