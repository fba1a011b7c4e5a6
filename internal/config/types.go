package config

// PairctlConfig is the top-level configuration structure for pairctl.
type PairctlConfig struct {
	Keys   KeyBindings    `yaml:"keys"`
	Output OutputSettings `yaml:"output"`
	UI     UISettings     `yaml:"ui"`
}

// KeyBindings lists the keys bound to each rebindable action. Each entry is a
// key name as reported by Bubble Tea, e.g. "q", "ctrl+q", "esc".
type KeyBindings struct {
	Quit    []string `yaml:"quit,omitempty"`    // Normal: ask to exit; exit prompt: leave without output
	NewPair []string `yaml:"newPair,omitempty"` // Normal: open the pair editor
	Confirm []string `yaml:"confirm,omitempty"` // Exit prompt: emit JSON and leave
	Decline []string `yaml:"decline,omitempty"` // Exit prompt: go back to Normal
	Copy    []string `yaml:"copy,omitempty"`    // Normal: copy JSON to the clipboard
	Help    []string `yaml:"help,omitempty"`    // Normal: toggle full help
}

// OutputSettings controls how the emitted object is laid out.
type OutputSettings struct {
	Pretty bool   `yaml:"pretty"`
	Indent string `yaml:"indent,omitempty"`
}

// UISettings tunes the interactive view.
type UISettings struct {
	KeyColumnWidth int    `yaml:"keyColumnWidth,omitempty"` // Width keys are padded to in the pair list
	ShowPreview    bool   `yaml:"showPreview"`
	PreviewStyle   string `yaml:"previewStyle,omitempty"` // Chroma style name
}

// fileConfig mirrors PairctlConfig as read from disk. Pointers distinguish
// "not set" from zero values so layers only override what they mention.
type fileConfig struct {
	Keys   KeyBindings `yaml:"keys"`
	Output struct {
		Pretty *bool   `yaml:"pretty"`
		Indent *string `yaml:"indent"`
	} `yaml:"output"`
	UI struct {
		KeyColumnWidth *int    `yaml:"keyColumnWidth"`
		ShowPreview    *bool   `yaml:"showPreview"`
		PreviewStyle   *string `yaml:"previewStyle"`
	} `yaml:"ui"`
}
