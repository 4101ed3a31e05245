// Package loader handles input file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/disasm8086/internal/buffer"
	"github.com/retroenv/retrogolib/log"
)

// ErrEmptyInput is returned for an input that contains no bytes.
var ErrEmptyInput = errors.New("input is empty")

// Loader handles loading raw 8086 machine code files from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads the complete file into a buffer.
func (l *Loader) Load(path string) (*buffer.Buffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	buf, err := l.LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading file %s: %w", path, err)
	}
	return buf, nil
}

// LoadFromBytes creates a buffer from in-memory data.
func (l *Loader) LoadFromBytes(data []byte) (*buffer.Buffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	l.logger.Debug("Loaded input", log.Int("size", len(data)))
	return buffer.New(data), nil
}
