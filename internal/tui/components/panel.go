package components

import (
	"strings"

	"pairctl/internal/tui/design"
	"pairctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// PanelType defines the visual style of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeSuccess
	PanelTypeError
	PanelTypeWarning
	PanelTypeInfo
)

// Panel is a bordered box with an optional title line.
type Panel struct {
	Title   string
	Content string
	Width   int
	Height  int
	Focused bool
	Type    PanelType
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title:  title,
		Width:  design.MinPanelWidth,
		Height: design.MinPanelHeight,
		Type:   PanelTypeDefault,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithDimensions sets the panel dimensions
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// InnerSize returns the content area left inside the border, title included.
func (p *Panel) InnerSize() (int, int) {
	style := p.getStyle()
	w := max(p.Width, design.MinPanelWidth) - style.GetHorizontalFrameSize()
	h := max(p.Height, design.MinPanelHeight) - style.GetVerticalFrameSize()
	return max(w, 1), max(h, 1)
}

// Render returns the styled panel. Content that does not fit is cut with an
// ellipsis line; lines wider than the panel are truncated.
func (p *Panel) Render() string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}
	if p.Height < design.MinPanelHeight {
		p.Height = design.MinPanelHeight
	}

	style := p.getStyle()
	innerWidth, innerHeight := p.InnerSize()

	var lines []string
	if p.Title != "" {
		lines = append(lines, p.renderTitle(innerWidth))
	}

	if p.Content != "" {
		contentLines := strings.Split(p.Content, "\n")
		availableHeight := innerHeight - len(lines)

		if availableHeight > 0 {
			if len(contentLines) > availableHeight {
				contentLines = append(contentLines[:availableHeight-1], design.DimStyle.Render("…"))
			}
			for _, line := range contentLines {
				if lipgloss.Width(line) > innerWidth {
					line = utils.TruncateString(line, innerWidth)
				}
				lines = append(lines, line)
			}
		}
	}

	for len(lines) < innerHeight {
		lines = append(lines, "")
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Height(innerHeight).
		Render(strings.Join(lines, "\n"))
}

// getStyle returns the appropriate style based on panel state
func (p *Panel) getStyle() lipgloss.Style {
	baseStyle := design.PanelStyle
	if p.Focused {
		baseStyle = design.PanelFocusedStyle
	}

	switch p.Type {
	case PanelTypeSuccess:
		return baseStyle.BorderForeground(design.ColorSuccess)
	case PanelTypeError:
		return baseStyle.BorderForeground(design.ColorError)
	case PanelTypeWarning:
		return baseStyle.BorderForeground(design.ColorWarning)
	case PanelTypeInfo:
		return baseStyle.BorderForeground(design.ColorInfo)
	default:
		return baseStyle
	}
}

func (p *Panel) renderTitle(width int) string {
	if p.Title == "" {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(design.ColorText)
	if p.Focused {
		titleStyle = titleStyle.Foreground(design.ColorPrimary)
	}
	return titleStyle.Render(utils.TruncateString(p.Title, width))
}
