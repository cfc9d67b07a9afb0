package validation

import (
	"fmt"
	"log/slog"
	"os"
)

// FileValidator runs pre-flight checks on export files before the
// parser opens them, so unreadable input surfaces as a precise IO
// failure instead of a mid-parse one.
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a file validator. A nil logger falls back to
// slog.Default().
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{logger: logger}
}

// ValidateSourceFile checks that path names a readable, non-empty
// regular file. An empty export cannot even hold the two comment lines
// the header scan requires, so it is rejected here with a clearer cause.
func (v *FileValidator) ValidateSourceFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("Source file does not exist",
			slog.String("file", path))
		return fmt.Errorf("file %s does not exist", path)
	}
	if err != nil {
		v.logger.Error("Failed to stat source file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		v.logger.Error("Source path is a directory, not a file",
			slog.String("path", path))
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	if info.Size() == 0 {
		v.logger.Error("Source file is empty",
			slog.String("file", path))
		return fmt.Errorf("file %s is empty", path)
	}

	f, err := os.Open(path)
	if err != nil {
		v.logger.Error("Source file is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("file %s is not readable: %w", path, err)
	}
	f.Close()

	v.logger.Debug("Source file validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}
