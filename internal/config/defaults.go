package config

const (
	// DefaultIndent is used for --pretty when no indent is configured.
	DefaultIndent = "  "
	// DefaultKeyColumnWidth pads keys in the pair list.
	DefaultKeyColumnWidth = 8
	// DefaultPreviewStyle is the chroma style of the JSON preview.
	DefaultPreviewStyle = "monokai"
)

// GetDefaultConfig returns the built-in configuration.
func GetDefaultConfig() PairctlConfig {
	return PairctlConfig{
		Keys: KeyBindings{
			Quit:    []string{"q"},
			NewPair: []string{"e"},
			Confirm: []string{"y"},
			Decline: []string{"n", "esc"},
			Copy:    []string{"y"},
			Help:    []string{"?"},
		},
		Output: OutputSettings{
			Pretty: false,
			Indent: DefaultIndent,
		},
		UI: UISettings{
			KeyColumnWidth: DefaultKeyColumnWidth,
			ShowPreview:    true,
			PreviewStyle:   DefaultPreviewStyle,
		},
	}
}
