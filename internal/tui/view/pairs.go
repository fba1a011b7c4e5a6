package view

import (
	"fmt"
	"strings"

	"pairctl/internal/tui/components"
	"pairctl/internal/tui/design"
	"pairctl/internal/tui/model"
	"pairctl/internal/tui/utils"
)

const pairSeparator = " : "

// renderPairList shows committed pairs in insertion order as "key : value".
func renderPairList(s model.Snapshot, width, height int) string {
	panel := components.NewPanel(fmt.Sprintf("Pairs (%d)", len(s.Pairs))).
		WithDimensions(width, height).
		SetFocused(s.Mode == model.ModeNormal)

	innerWidth, _ := panel.InnerSize()
	return panel.WithContent(pairLines(s, innerWidth)).Render()
}

func pairLines(s model.Snapshot, width int) string {
	if len(s.Pairs) == 0 {
		hint := "No pairs yet."
		if k := s.Keys.NewPair.Help().Key; k != "" {
			hint = fmt.Sprintf("No pairs yet. Press %s to add one.", k)
		}
		return design.DimStyle.Render(utils.TruncateString(hint, width))
	}

	keyWidth := s.KeyColumnWidth
	if maxKey := width - len(pairSeparator) - 1; keyWidth > maxKey {
		keyWidth = max(maxKey, 1)
	}
	valueWidth := max(width-keyWidth-len(pairSeparator), 0)

	lines := make([]string, 0, len(s.Pairs))
	for _, p := range s.Pairs {
		key := utils.PadRight(p.Key, keyWidth)
		value := utils.TruncateString(p.Value, valueWidth)
		lines = append(lines,
			design.PairKeyStyle.Render(key)+
				design.PairSeparatorStyle.Render(pairSeparator)+
				design.PairValueStyle.Render(value))
	}
	return strings.Join(lines, "\n")
}
