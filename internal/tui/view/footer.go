package view

import (
	"pairctl/internal/tui/components"
	"pairctl/internal/tui/design"
	"pairctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// ModeLabel is the footer badge text for a mode.
func ModeLabel(mode model.AppMode) string {
	switch mode {
	case model.ModeEditing:
		return "Editing Mode"
	case model.ModeConfirmingExit:
		return "Exiting"
	default:
		return "Normal Mode"
	}
}

// EditingLabel describes which draft receives keystrokes.
func EditingLabel(s model.Snapshot) string {
	if !s.Editing {
		return "Not Editing Anything"
	}
	if s.SubMode == model.FieldValue {
		return "Editing JSON Value"
	}
	return "Editing JSON Key"
}

func modeColor(mode model.AppMode) lipgloss.AdaptiveColor {
	switch mode {
	case model.ModeEditing:
		return design.ColorModeEditing
	case model.ModeConfirmingExit:
		return design.ColorModeExiting
	default:
		return design.ColorModeNormal
	}
}

// renderFooter draws the optional full help block and the status bar.
func renderFooter(s model.Snapshot, width int) string {
	h := help.New()
	h.Width = width

	left := design.ModeStyle(modeColor(s.Mode)).Render(ModeLabel(s.Mode)) +
		" " + design.TextSecondaryStyle.Render(EditingLabel(s))

	bar := components.NewStatusBar(width).
		WithLeftText(left).
		WithRightText(h.ShortHelpView(s.Keys.ShortHelpFor(s.Mode))).
		WithMessage(s.Status.Message, s.Status.Type).
		Render()

	if !s.ShowFullHelp {
		return bar
	}
	full := lipgloss.NewStyle().
		Padding(0, design.SpaceSM).
		Render(h.FullHelpView(s.Keys.FullHelpFor(s.Mode)))
	return lipgloss.JoinVertical(lipgloss.Left, full, bar)
}
