package controller

import (
	"pairctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for an interactive session. The
// alternate screen is always used; extra options are appended.
func NewProgram(cfg model.TUIConfig, opts ...tea.ProgramOption) (*tea.Program, *model.Model) {
	m := model.InitializeModel(cfg)
	app := NewAppModel(m)

	options := append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return tea.NewProgram(app, options...), m
}
