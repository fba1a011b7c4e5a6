package model

import (
	"strings"

	"pairctl/internal/config"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all the key bindings for the application.
type KeyMap struct {
	// Normal mode
	Quit    key.Binding
	NewPair key.Binding
	Copy    key.Binding
	Help    key.Binding

	// Editing mode
	SwitchField key.Binding
	Commit      key.Binding
	Cancel      key.Binding
	Backspace   key.Binding

	// Exit prompt
	Confirm key.Binding
	Decline key.Binding

	// Everywhere
	ForceQuit key.Binding
}

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMapFromConfig(config.GetDefaultConfig().Keys)
}

// KeyMapFromConfig builds the key map from configured bindings. The editing
// keys and ctrl+c are fixed.
func KeyMapFromConfig(kb config.KeyBindings) KeyMap {
	return KeyMap{
		Quit:    binding(kb.Quit, "quit"),
		NewPair: binding(kb.NewPair, "new pair"),
		Copy:    binding(kb.Copy, "copy json"),
		Help:    binding(kb.Help, "help"),

		SwitchField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch field"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save pair"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),

		Confirm: binding(kb.Confirm, "output json"),
		Decline: binding(kb.Decline, "go back"),

		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// ShortHelpFor returns the bindings hinted in the footer for a mode.
func (k KeyMap) ShortHelpFor(mode AppMode) []key.Binding {
	switch mode {
	case ModeEditing:
		return []key.Binding{k.SwitchField, k.Commit, k.Cancel}
	case ModeConfirmingExit:
		return []key.Binding{k.Confirm, k.Decline, k.Quit}
	default:
		return []key.Binding{k.NewPair, k.Quit, k.Help}
	}
}

// FullHelpFor returns grouped bindings for the expanded help view.
func (k KeyMap) FullHelpFor(mode AppMode) [][]key.Binding {
	switch mode {
	case ModeEditing:
		return [][]key.Binding{
			{k.SwitchField, k.Backspace},
			{k.Commit, k.Cancel},
			{k.ForceQuit},
		}
	case ModeConfirmingExit:
		return [][]key.Binding{
			{k.Confirm, k.Decline},
			{k.Quit, k.ForceQuit},
		}
	default:
		return [][]key.Binding{
			{k.NewPair, k.Copy},
			{k.Quit, k.ForceQuit},
			{k.Help},
		}
	}
}
