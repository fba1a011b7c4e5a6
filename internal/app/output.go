package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StdoutPath selects standard output as the sink.
const StdoutPath = "-"

// WriteOutput writes data followed by a newline to path, or to stdout when
// path is empty or "-". Files are written to a temporary sibling and renamed
// into place, so a failed write never leaves partial JSON behind.
func WriteOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" || path == StdoutPath {
		if _, err := stdout.Write(withNewline(data)); err != nil {
			return fmt.Errorf("failed to write JSON to stdout: %w", err)
		}
		return nil
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(withNewline(data)); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write JSON to %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move JSON into %s: %w", path, err)
	}
	committed = true
	return nil
}

func withNewline(data []byte) []byte {
	out := make([]byte, 0, len(data)+1)
	return append(append(out, data...), '\n')
}
