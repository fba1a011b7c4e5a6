package model

import (
	"pairctl/internal/config"
	"pairctl/internal/pairs"

	"github.com/charmbracelet/bubbles/help"
)

// AppMode is the top-level interaction mode.
type AppMode int

const (
	ModeNormal AppMode = iota
	ModeEditing
	ModeConfirmingExit
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeEditing:
		return "Editing"
	case ModeConfirmingExit:
		return "ConfirmingExit"
	default:
		return "Unknown"
	}
}

// EditField is the draft receiving keystrokes while editing.
type EditField int

const (
	FieldKey EditField = iota
	FieldValue
)

func (f EditField) String() string {
	if f == FieldValue {
		return "Value"
	}
	return "Key"
}

// State is the single source of truth for mode and sub-mode. An editing
// field only exists in the editing states, so a sub-mode can never be set
// outside Editing.
type State int

const (
	StateNormal State = iota
	StateEditingKey
	StateEditingValue
	StateConfirmingExit
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "Normal"
	case StateEditingKey:
		return "Editing(Key)"
	case StateEditingValue:
		return "Editing(Value)"
	case StateConfirmingExit:
		return "ConfirmingExit"
	default:
		return "Unknown"
	}
}

// Mode projects the state onto its AppMode.
func (s State) Mode() AppMode {
	switch s {
	case StateEditingKey, StateEditingValue:
		return ModeEditing
	case StateConfirmingExit:
		return ModeConfirmingExit
	default:
		return ModeNormal
	}
}

// SubMode returns the active field, and false outside Editing.
func (s State) SubMode() (EditField, bool) {
	switch s {
	case StateEditingKey:
		return FieldKey, true
	case StateEditingValue:
		return FieldValue, true
	default:
		return FieldKey, false
	}
}

// Outcome records how the session ended.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeEmit
	OutcomeDiscard
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "Pending"
	case OutcomeEmit:
		return "Emit"
	case OutcomeDiscard:
		return "Discard"
	case OutcomeFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// TUIConfig carries everything the model needs from configuration.
type TUIConfig struct {
	Keys   config.KeyBindings
	UI     config.UISettings
	Encode pairs.EncodeOptions
}

// Model holds the whole interaction state. It is owned by the controller and
// only mutated through its methods.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	state      State
	keyDraft   []rune
	valueDraft []rune
	buffer     *pairs.Buffer

	outcome Outcome
	payload []byte
	err     error

	// Configuration
	Keys           KeyMap
	Help           help.Model
	Encode         pairs.EncodeOptions
	KeyColumnWidth int
	ShowPreview    bool
	PreviewStyle   string

	// Status bar
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}
}

// Status is the status bar line as seen by the renderer.
type Status struct {
	Message string
	Type    MessageType
}

// Snapshot is a read-only copy of the model for rendering.
type Snapshot struct {
	Pairs      []pairs.Pair
	State      State
	Mode       AppMode
	SubMode    EditField
	Editing    bool
	KeyDraft   string
	ValueDraft string
	Width      int
	Height     int
	Keys       KeyMap
	Status     Status

	ShowFullHelp   bool
	KeyColumnWidth int
	ShowPreview    bool
	PreviewStyle   string
}
