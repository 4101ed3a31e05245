// Package writer implements the assembly listing output.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/disasm8086/internal/program"
)

// Writer writes a disassembled program as NASM compatible assembly.
type Writer struct {
	app     *program.Program
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	HexComments    bool // output instruction bytes as hex values in comments
	OffsetComments bool // output instruction offsets in comments
}

// New creates a new writer.
func New(app *program.Program, writer io.Writer, options Options) *Writer {
	return &Writer{
		app:     app,
		options: options,
		writer:  writer,
	}
}

// Write writes the header and all instructions of the program.
func (w Writer) Write() error {
	if err := w.WriteCommentHeader(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w.writer, "bits 16\n\n"); err != nil {
		return fmt.Errorf("writing bits directive: %w", err)
	}

	for _, line := range w.app.Lines {
		if err := w.writeCodeLine(line); err != nil {
			return fmt.Errorf("writing code line: %w", err)
		}
	}
	return nil
}

// WriteCommentHeader writes the size and CRC32 checksum of the input as comments to the output.
func (w Writer) WriteCommentHeader() error {
	if _, err := fmt.Fprintf(w.writer, "; Input size: %d bytes\n", w.app.Size); err != nil {
		return fmt.Errorf("writing input size: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; CRC32 checksum: %08x\n\n", w.app.Checksum); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	return nil
}

func (w Writer) writeCodeLine(line program.Line) error {
	comment := w.comment(line)
	if comment == "" {
		if _, err := fmt.Fprintf(w.writer, "%s\n", line.Code); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(w.writer, "%-32s ; %s\n", line.Code, comment); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

func (w Writer) comment(line program.Line) string {
	var parts []string
	if w.options.OffsetComments {
		parts = append(parts, fmt.Sprintf("$%04X", line.Offset))
	}
	if w.options.HexComments {
		hexBytes := make([]string, 0, len(line.Bytes))
		for _, b := range line.Bytes {
			hexBytes = append(hexBytes, fmt.Sprintf("%02X", b))
		}
		parts = append(parts, strings.Join(hexBytes, " "))
	}
	return strings.Join(parts, "  ")
}
