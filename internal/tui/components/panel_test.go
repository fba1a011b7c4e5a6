package components

import (
	"os"
	"strings"
	"testing"

	"pairctl/internal/tui/design"
	"pairctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestPanel_Render_EdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		title   string
		content string
	}{
		{"zero dimensions", 0, 0, "Pairs", "name : Alice"},
		{"negative dimensions", -10, -5, "Pairs", "name : Alice"},
		{"empty content", 40, 10, "Pairs", ""},
		{"very long content", 20, 5, "Pairs", strings.Repeat("a very long line that must be cut ", 10)},
		{"multiline content exceeding height", 30, 5, "Pairs", "1\n2\n3\n4\n5\n6\n7\n8\n9\n10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := NewPanel(tt.title).
				WithContent(tt.content).
				WithDimensions(tt.width, tt.height)

			output := panel.Render()

			assert.NotEmpty(t, output)
			assert.GreaterOrEqual(t, panel.Width, design.MinPanelWidth)
			assert.GreaterOrEqual(t, panel.Height, design.MinPanelHeight)
			assert.Equal(t, panel.Width, lipgloss.Width(output), "panel keeps its width")
			assert.Equal(t, panel.Height, lipgloss.Height(output), "panel keeps its height")
		})
	}
}

func TestPanel_OverflowMarker(t *testing.T) {
	out := NewPanel("").
		WithContent("1\n2\n3\n4\n5\n6").
		WithDimensions(30, 5).
		Render()

	assert.Contains(t, out, "1")
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, "6")
}

func TestPanel_Types(t *testing.T) {
	for _, pt := range []PanelType{PanelTypeDefault, PanelTypeSuccess, PanelTypeError, PanelTypeWarning, PanelTypeInfo} {
		output := NewPanel("Test Panel").
			WithType(pt).
			WithDimensions(40, 10).
			WithContent("Test content").
			SetFocused(pt == PanelTypeInfo).
			Render()
		assert.Contains(t, output, "Test content")
	}
}

func TestStatusBar_LeftAndRight(t *testing.T) {
	out := NewStatusBar(60).
		WithLeftText("Normal Mode").
		WithRightText("e new pair").
		Render()

	assert.Contains(t, out, "Normal Mode")
	assert.Contains(t, out, "e new pair")
	assert.Equal(t, 60, lipgloss.Width(out))
}

func TestStatusBar_MessageWins(t *testing.T) {
	out := NewStatusBar(60).
		WithLeftText("Normal Mode").
		WithMessage("JSON copied to clipboard", model.StatusBarSuccess).
		Render()

	assert.Contains(t, out, "JSON copied")
	assert.NotContains(t, out, "Normal Mode")
}

func TestStatusBar_EmptyMessageKeepsText(t *testing.T) {
	out := NewStatusBar(60).
		WithLeftText("Editing Mode").
		WithMessage("", model.StatusBarInfo).
		Render()

	assert.Contains(t, out, "Editing Mode")
}
