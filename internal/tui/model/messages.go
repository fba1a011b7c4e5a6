package model

// ClearStatusBarMsg clears the status bar once a message has expired.
type ClearStatusBarMsg struct{}

// ClipboardResultMsg reports the outcome of a copy to the system clipboard.
type ClipboardResultMsg struct {
	Bytes int
	Err   error
}
