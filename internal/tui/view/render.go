package view

import (
	"pairctl/internal/tui/design"
	"pairctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24

	// Below this width the preview pane is dropped and the pair list takes
	// the whole row.
	minWidthForPreview = 60

	appTitle = "Create New JSON"
)

// Render draws the whole screen from a snapshot. It never mutates state.
func Render(s model.Snapshot) string {
	width, height := s.Width, s.Height
	if width <= 0 || height <= 0 {
		width, height = fallbackWidth, fallbackHeight
	}

	header := renderHeader(width)
	footer := renderFooter(s, width)
	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < design.MinPanelHeight {
		bodyHeight = design.MinPanelHeight
	}
	body := renderBody(s, width, bodyHeight)

	screen := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	switch s.Mode {
	case model.ModeEditing:
		return renderEditPopup(s, screen, width)
	case model.ModeConfirmingExit:
		return renderExitPopup(s, screen)
	default:
		return screen
	}
}

func renderHeader(width int) string {
	style := design.HeaderStyle
	return style.Width(width - style.GetHorizontalBorderSize()).Render(appTitle)
}

// renderBody lays out the pair list and, when there is room, the JSON preview.
func renderBody(s model.Snapshot, width, height int) string {
	if !s.ShowPreview || width < minWidthForPreview {
		return renderPairList(s, width, height)
	}
	listWidth := width / 2
	previewWidth := width - listWidth
	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderPairList(s, listWidth, height),
		renderPreview(s, previewWidth, height),
	)
}
