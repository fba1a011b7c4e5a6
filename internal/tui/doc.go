// Package tui provides the Terminal User Interface for pairctl.
//
// The TUI lets a user build a flat JSON object one key/value pair at a time
// and, on exit, decide whether to emit it. It is built on Bubble Tea.
//
// # Architecture
//
// The TUI follows a Model-View-Controller (MVC) pattern:
//
//   - Model (internal/tui/model/): the ordered pair buffer, the interaction
//     state, the two drafts and the session outcome
//   - View (internal/tui/view/): Render(model.Snapshot) string, a pure function
//   - Controller (internal/tui/controller/): turns one key event into model
//     operations and owns the Bubble Tea program
//
// Supporting packages: design (palette and styles), components (panel and
// status bar) and utils (cell-width aware string helpers).
//
// # Modes
//
//	Normal ──e──▶ Editing(Key) ◀──tab──▶ Editing(Value)
//	  ▲  │              │ enter / esc          │
//	  │  q              └────────▶ Normal ◀────┘
//	  │  ▼
//	ConfirmingExit ──y──▶ emit JSON and quit
//	  │  n / esc: back to Normal
//	  └─ q: quit without output
//
// While editing every printable key is text, so the Normal-mode shortcuts can
// be typed into keys and values. ctrl+c asks to exit from anywhere and quits
// without output at the exit prompt.
package tui
