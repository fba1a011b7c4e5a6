package controller

import (
	"pairctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgConfirmingExit processes the answer to the exit prompt.
func handleKeyMsgConfirmingExit(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Confirm):
		return finishSession(m, true)

	case key.Matches(msg, m.Keys.Decline):
		m.DeclineExit()
		return m, nil

	case key.Matches(msg, m.Keys.Quit):
		return finishSession(m, false)
	}
	return m, nil
}

// finishSession records the outcome and stops the program. A serialization
// failure is kept on the model for the caller to report.
func finishSession(m *model.Model, emit bool) (*model.Model, tea.Cmd) {
	data, err := m.ConfirmExit(emit, m.Encode)
	switch {
	case err != nil:
		LogError(controllerSubsystem, err, "failed to finish session")
	case emit:
		LogInfo(controllerSubsystem, "session confirmed, %d bytes of JSON ready", len(data))
	default:
		LogInfo(controllerSubsystem, "session ended without output")
	}
	return m, tea.Quit
}
