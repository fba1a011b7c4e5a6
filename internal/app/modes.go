package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"pairctl/internal/tui/controller"
	"pairctl/internal/tui/model"
	"pairctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// runTUIMode executes the interactive terminal UI mode
func (a *Application) runTUIMode(ctx context.Context) error {
	logFile, err := a.initTUILogging()
	if err != nil {
		return err
	}
	defer func() {
		logging.InitForCLI(logLevel(a.config), os.Stderr)
		if logFile != nil {
			_ = logFile.Close()
		}
	}()

	ui := uiOutput()
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(ui))

	pc := a.config.PairctlConfig
	p, m := controller.NewProgram(model.TUIConfig{
		Keys:   pc.Keys,
		UI:     pc.UI,
		Encode: a.config.EncodeOptions(),
	}, tea.WithContext(ctx), tea.WithOutput(ui))

	logging.Info("TUI-Lifecycle", "Starting TUI")
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logging.Warn("TUI-Lifecycle", "TUI interrupted: %v", ctx.Err())
			return fmt.Errorf("session interrupted: %w", ctx.Err())
		}
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return fmt.Errorf("error running TUI: %w", err)
	}
	logging.Info("TUI-Lifecycle", "TUI exited with outcome %s", m.Outcome())

	return a.deliver(m)
}

// deliver acts on the outcome of a finished session.
func (a *Application) deliver(m *model.Model) error {
	switch m.Outcome() {
	case model.OutcomeEmit:
		if err := WriteOutput(a.config.OutputPath, m.Payload(), a.stdout); err != nil {
			logging.Error("Output", err, "Failed to write JSON")
			return err
		}
		logging.Info("Output", "Wrote %d bytes of JSON", len(m.Payload()))
		return nil
	case model.OutcomeFailed:
		logging.Error("Output", m.Err(), "Session ended without output")
		return m.Err()
	default:
		return nil
	}
}

// initTUILogging keeps log output off the terminal while the TUI runs. With
// --debug it goes to the debug log file, otherwise it is dropped.
func (a *Application) initTUILogging() (*os.File, error) {
	if !a.config.Debug {
		logging.InitForTUI(logging.LevelInfo, nil)
		return nil, nil
	}
	f, err := os.OpenFile(a.config.DebugLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log %s: %w", a.config.DebugLogPath, err)
	}
	logging.InitForTUI(logging.LevelDebug, f)
	return f, nil
}

// uiOutput picks the stream the TUI draws on. When stdout is redirected the
// interface moves to stderr so only JSON reaches the pipe.
func uiOutput() io.Writer {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return os.Stdout
	}
	return os.Stderr
}
