package controller

import (
	"time"

	"pairctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusMessageTTL = 3 * time.Second

// Update applies one message to the model. It is the only place the model is
// mutated while the program runs.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	if m.Done() {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.ClipboardResultMsg:
		return handleClipboardResultMsg(m, msg)

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage()
		return m, nil
	}
	return m, nil
}

// handleKeyMsg routes a key press to the handler of the current mode.
func handleKeyMsg(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	before := m.State()

	var cmd tea.Cmd
	if key.Matches(msg, m.Keys.ForceQuit) {
		m, cmd = handleForceQuit(m)
	} else {
		switch m.Mode() {
		case model.ModeNormal:
			m, cmd = handleKeyMsgNormal(m, msg)
		case model.ModeEditing:
			m, cmd = handleKeyMsgEditing(m, msg)
		case model.ModeConfirmingExit:
			m, cmd = handleKeyMsgConfirmingExit(m, msg)
		}
	}

	if after := m.State(); after != before {
		LogDebug(controllerSubsystem, "key %q: %s -> %s", msg.String(), before, after)
	}
	return m, cmd
}

// handleForceQuit makes ctrl+c behave like quit, and like a hard quit at the
// exit prompt.
func handleForceQuit(m *model.Model) (*model.Model, tea.Cmd) {
	if m.Mode() != model.ModeConfirmingExit {
		m.RequestExit()
		return m, nil
	}
	return finishSession(m, false)
}

// handleWindowSizeMsg updates the model with the new terminal dimensions.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width
	return m, nil
}

func handleClipboardResultMsg(m *model.Model, msg model.ClipboardResultMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		LogError(controllerSubsystem, msg.Err, "failed to copy JSON to clipboard")
		return m, m.SetStatusMessage("Copy failed: "+msg.Err.Error(), model.StatusBarError, statusMessageTTL)
	}
	LogInfo(controllerSubsystem, "copied %d bytes of JSON to clipboard", msg.Bytes)
	return m, m.SetStatusMessage("JSON copied to clipboard", model.StatusBarSuccess, statusMessageTTL)
}
