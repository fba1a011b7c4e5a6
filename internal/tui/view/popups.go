package view

import (
	"fmt"

	"pairctl/internal/tui/design"
	"pairctl/internal/tui/model"
	"pairctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

const (
	editPopupTitle = "Enter a new key-value pair"
	exitPrompt     = "Would you like to output the buffer as json?"
)

// renderEditPopup composites the key/value editor over the main screen. The
// active field is highlighted and shows a cursor.
func renderEditPopup(s model.Snapshot, main string, screenWidth int) string {
	width := min(design.PopupWidth, screenWidth-4)
	inputWidth := max(width-design.PopupStyle.GetHorizontalFrameSize()-design.InputStyle.GetHorizontalFrameSize(), 1)

	keyBox := renderInput("Key", s.KeyDraft, s.SubMode == model.FieldKey, inputWidth)
	valueBox := renderInput("Value", s.ValueDraft, s.SubMode == model.FieldValue, inputWidth)

	content := lipgloss.JoinVertical(lipgloss.Left,
		design.PopupTitleStyle.Render(editPopupTitle),
		keyBox,
		valueBox,
	)

	popupBox := design.PopupStyle.
		Width(width - design.PopupStyle.GetHorizontalBorderSize()).
		Render(content)

	return overlay.Composite(popupBox, main, overlay.Center, overlay.Center, 0, 0)
}

func renderInput(label, text string, focused bool, width int) string {
	labelStyle := design.InputLabelStyle
	boxStyle := design.InputStyle
	if focused {
		labelStyle = design.InputLabelFocusedStyle
		boxStyle = design.InputFocusedStyle
	}

	var shown string
	if focused {
		shown = utils.TailString(text, width-1) + design.CursorStyle.Render(" ")
	} else {
		shown = utils.TruncateString(text, width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(label),
		boxStyle.Width(width+design.InputStyle.GetHorizontalPadding()).Render(shown),
	)
}

// renderExitPopup asks whether the buffer should be emitted.
func renderExitPopup(s model.Snapshot, main string) string {
	question := fmt.Sprintf("%s (%s/%s)", exitPrompt, firstKey(s.Keys.Confirm.Keys()), firstKey(s.Keys.Decline.Keys()))
	hint := design.DimStyle.Render(fmt.Sprintf("%s: leave without output", firstKey(s.Keys.Quit.Keys())))

	popupBox := design.ExitPopupStyle.Render(
		lipgloss.JoinVertical(lipgloss.Center, question, "", hint),
	)
	return overlay.Composite(popupBox, main, overlay.Center, overlay.Center, 0, 0)
}

func firstKey(keys []string) string {
	if len(keys) == 0 {
		return "?"
	}
	return keys[0]
}
