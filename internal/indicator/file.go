package indicator

import (
	"errors"
	"fmt"
	"github.com/clambin/workbell/internal/status"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FileIndicator writes the name of the current mode to a file, for status bars (waybar, i3blocks, xbar, ...) to
// pick up. The file is removed when the indicator is closed.
type FileIndicator struct {
	Path   string
	Logger *slog.Logger
}

var (
	_ status.Indicator = &FileIndicator{}
	_ io.Closer        = &FileIndicator{}
)

func (f *FileIndicator) Show(mode status.Mode) {
	if err := f.write(mode); err != nil {
		f.Logger.Warn("failed to write status file", slog.String("path", f.Path), slog.Any("err", err))
	}
}

func (f *FileIndicator) write(mode status.Mode) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(f.Path, []byte(mode.String()+"\n"), 0644)
}

func (f *FileIndicator) Close() error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove status file: %w", err)
	}
	return nil
}
