package controller

import (
	"pairctl/internal/pairs"
	"pairctl/internal/tui/model"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// For mocking in tests
var clipboardWriteAll = clipboard.WriteAll

// handleKeyMsgNormal processes key presses while no pair is being edited.
func handleKeyMsgNormal(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.RequestExit()
		return m, nil

	case key.Matches(msg, m.Keys.NewPair):
		m.StartEditing()
		return m, nil

	case key.Matches(msg, m.Keys.Copy):
		return m, copyBufferCmd(m.Buffer())

	case key.Matches(msg, m.Keys.Help):
		m.ToggleHelp()
		return m, nil
	}
	return m, nil
}

// copyBufferCmd writes the compact JSON of buf to the system clipboard off the
// update loop.
func copyBufferCmd(buf *pairs.Buffer) tea.Cmd {
	return func() tea.Msg {
		data, err := pairs.Encode(buf, pairs.EncodeOptions{})
		if err != nil {
			return model.ClipboardResultMsg{Err: err}
		}
		if err := clipboardWriteAll(string(data)); err != nil {
			return model.ClipboardResultMsg{Err: err}
		}
		return model.ClipboardResultMsg{Bytes: len(data)}
	}
}
