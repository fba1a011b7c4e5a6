package model

import (
	"fmt"
	"time"
	"unicode"

	"pairctl/internal/config"
	"pairctl/internal/pairs"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// InitializeModel creates a model in Normal mode with an empty buffer.
func InitializeModel(cfg TUIConfig) *Model {
	keys := cfg.Keys
	if len(keys.Quit) == 0 {
		keys = config.GetDefaultConfig().Keys
	}
	width := cfg.UI.KeyColumnWidth
	if width <= 0 {
		width = config.DefaultKeyColumnWidth
	}
	style := cfg.UI.PreviewStyle
	if style == "" {
		style = config.DefaultPreviewStyle
	}

	return &Model{
		state:          StateNormal,
		buffer:         pairs.NewBuffer(),
		outcome:        OutcomePending,
		Keys:           KeyMapFromConfig(keys),
		Help:           help.New(),
		Encode:         cfg.Encode,
		KeyColumnWidth: width,
		ShowPreview:    cfg.UI.ShowPreview,
		PreviewStyle:   style,
	}
}

// State returns the current interaction state.
func (m *Model) State() State { return m.state }

// Mode returns the top-level mode.
func (m *Model) Mode() AppMode { return m.state.Mode() }

// SubMode returns the active editing field, and false outside Editing.
func (m *Model) SubMode() (EditField, bool) { return m.state.SubMode() }

// KeyDraft returns the key being typed.
func (m *Model) KeyDraft() string { return string(m.keyDraft) }

// ValueDraft returns the value being typed.
func (m *Model) ValueDraft() string { return string(m.valueDraft) }

// Buffer returns a copy of the committed pairs.
func (m *Model) Buffer() *pairs.Buffer { return m.buffer.Clone() }

// Outcome returns how the session ended, or OutcomePending.
func (m *Model) Outcome() Outcome { return m.outcome }

// Payload returns the serialized object recorded on a confirmed emit.
func (m *Model) Payload() []byte { return m.payload }

// Err returns the serialization error of a failed emit.
func (m *Model) Err() error { return m.err }

// Done reports whether the session has ended. A done model ignores every
// further mutation.
func (m *Model) Done() bool { return m.outcome != OutcomePending }

// StartEditing opens a new pair with the key field active.
func (m *Model) StartEditing() {
	if m.Done() || m.state != StateNormal {
		return
	}
	m.clearDrafts()
	m.state = StateEditingKey
}

// AppendRune appends r to the active draft. Control characters are ignored.
func (m *Model) AppendRune(r rune) {
	if m.Done() || unicode.IsControl(r) {
		return
	}
	switch m.state {
	case StateEditingKey:
		m.keyDraft = append(m.keyDraft, r)
	case StateEditingValue:
		m.valueDraft = append(m.valueDraft, r)
	}
}

// Backspace removes the last rune of the active draft.
func (m *Model) Backspace() {
	if m.Done() {
		return
	}
	switch m.state {
	case StateEditingKey:
		if n := len(m.keyDraft); n > 0 {
			m.keyDraft = m.keyDraft[:n-1]
		}
	case StateEditingValue:
		if n := len(m.valueDraft); n > 0 {
			m.valueDraft = m.valueDraft[:n-1]
		}
	}
}

// SwitchField toggles between the key and value drafts.
func (m *Model) SwitchField() {
	if m.Done() {
		return
	}
	switch m.state {
	case StateEditingKey:
		m.state = StateEditingValue
	case StateEditingValue:
		m.state = StateEditingKey
	}
}

// CommitPair stores the drafts as a pair and returns to Normal. A pair with
// an empty key is dropped. It reports whether a pair was stored.
func (m *Model) CommitPair() bool {
	if m.Done() || m.state.Mode() != ModeEditing {
		return false
	}
	stored := false
	if len(m.keyDraft) > 0 {
		m.buffer.Set(string(m.keyDraft), string(m.valueDraft))
		stored = true
	}
	m.clearDrafts()
	m.state = StateNormal
	return stored
}

// CancelEditing discards the drafts and returns to Normal.
func (m *Model) CancelEditing() {
	if m.Done() || m.state.Mode() != ModeEditing {
		return
	}
	m.clearDrafts()
	m.state = StateNormal
}

// RequestExit moves to the exit prompt. Drafts in progress are discarded.
func (m *Model) RequestExit() {
	if m.Done() || m.state == StateConfirmingExit {
		return
	}
	m.clearDrafts()
	m.state = StateConfirmingExit
}

// DeclineExit leaves the exit prompt and returns to Normal.
func (m *Model) DeclineExit() {
	if m.Done() || m.state != StateConfirmingExit {
		return
	}
	m.state = StateNormal
}

// ConfirmExit ends the session from the exit prompt. With emit the buffer is
// serialized and returned; without it nothing is produced. A serialization
// error ends the session as failed.
func (m *Model) ConfirmExit(emit bool, opts pairs.EncodeOptions) ([]byte, error) {
	if m.Done() {
		return nil, fmt.Errorf("session already ended with outcome %s", m.outcome)
	}
	if m.state != StateConfirmingExit {
		return nil, fmt.Errorf("cannot confirm exit from state %s", m.state)
	}
	if !emit {
		m.outcome = OutcomeDiscard
		return nil, nil
	}
	data, err := pairs.Encode(m.buffer, opts)
	if err != nil {
		m.outcome = OutcomeFailed
		m.err = fmt.Errorf("failed to serialize pairs: %w", err)
		return nil, m.err
	}
	m.outcome = OutcomeEmit
	m.payload = data
	return data, nil
}

// ToggleHelp switches between short and full key help.
func (m *Model) ToggleHelp() {
	m.Help.ShowAll = !m.Help.ShowAll
}

func (m *Model) clearDrafts() {
	m.keyDraft = nil
	m.valueDraft = nil
}

// Snapshot returns a read-only copy of everything the renderer needs.
func (m *Model) Snapshot() Snapshot {
	field, editing := m.state.SubMode()
	return Snapshot{
		Pairs:      m.buffer.Pairs(),
		State:      m.state,
		Mode:       m.state.Mode(),
		SubMode:    field,
		Editing:    editing,
		KeyDraft:   string(m.keyDraft),
		ValueDraft: string(m.valueDraft),
		Width:      m.Width,
		Height:     m.Height,
		Keys:       m.Keys,
		Status: Status{
			Message: m.StatusBarMessage,
			Type:    m.StatusBarMessageType,
		},
		ShowFullHelp:   m.Help.ShowAll,
		KeyColumnWidth: m.KeyColumnWidth,
		ShowPreview:    m.ShowPreview,
		PreviewStyle:   m.PreviewStyle,
	}
}

// SetStatusMessage updates the status bar message and schedules its removal.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ClearStatusMessage empties the status bar.
func (m *Model) ClearStatusMessage() {
	m.StatusBarMessage = ""
	m.StatusBarMessageType = StatusBarInfo
	m.StatusBarClearCancel = nil
}
