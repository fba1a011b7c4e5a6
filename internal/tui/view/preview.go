package view

import (
	"strings"

	"pairctl/internal/pairs"
	"pairctl/internal/tui/components"
	"pairctl/internal/tui/model"
	"pairctl/internal/tui/utils"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const previewIndent = "  "

// renderPreview shows the object exactly as it would be emitted now,
// indented for reading.
func renderPreview(s model.Snapshot, width, height int) string {
	panel := components.NewPanel("Preview").
		WithDimensions(width, height).
		WithType(components.PanelTypeInfo)

	innerWidth, innerHeight := panel.InnerSize()
	body := previewJSON(s.Pairs, innerWidth, innerHeight-1)
	return panel.WithContent(highlightJSON(body, s.PreviewStyle)).Render()
}

// previewJSON encodes the pairs and fits the text into width x height cells
// before any escape codes are added.
func previewJSON(ps []pairs.Pair, width, height int) string {
	buf := pairs.NewBuffer()
	for _, p := range ps {
		buf.Set(p.Key, p.Value)
	}
	data, err := pairs.Encode(buf, pairs.EncodeOptions{Indent: previewIndent})
	if err != nil {
		return "invalid JSON: " + err.Error()
	}

	lines := strings.Split(string(data), "\n")
	if height > 0 && len(lines) > height {
		lines = append(lines[:height-1], "…")
	}
	for i, line := range lines {
		lines[i] = utils.TruncateString(line, width)
	}
	return strings.Join(lines, "\n")
}

// highlightJSON colors src with the named chroma style. Plain terminals get
// the text unchanged.
func highlightJSON(src, style string) string {
	if lipgloss.ColorProfile() == termenv.Ascii {
		return src
	}
	var sb strings.Builder
	if err := quick.Highlight(&sb, src, "json", "terminal256", style); err != nil {
		return src
	}
	return strings.TrimRight(sb.String(), "\n")
}
