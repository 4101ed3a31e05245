// Package disasm implements the 8086 MOV disassembler decode loop.
package disasm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/k0kubun/pp"
	"github.com/retroenv/disasm8086/internal/arch/i8086"
	"github.com/retroenv/disasm8086/internal/buffer"
	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/disasm8086/internal/program"
	"github.com/retroenv/disasm8086/internal/writer"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler
	buf     *buffer.Buffer

	families set.Set[i8086.Family] // encoding families seen while decoding
}

// New creates a new disassembler for the passed buffer.
func New(logger *log.Logger, buf *buffer.Buffer, options options.Disassembler) *Disasm {
	return &Disasm{
		logger:   logger,
		options:  options,
		buf:      buf,
		families: set.New[i8086.Family](),
	}
}

// Process disassembles the buffer and writes the listing to the writer.
func (dis *Disasm) Process(ctx context.Context, mainWriter io.Writer) (*program.Program, error) {
	app, err := dis.Decode(ctx)
	if err != nil {
		return nil, err
	}

	w := writer.New(app, mainWriter, writer.Options{
		HexComments:    dis.options.HexComments,
		OffsetComments: dis.options.OffsetComments,
	})
	if err := w.Write(); err != nil {
		return nil, fmt.Errorf("writing app to file: %w", err)
	}
	return app, nil
}

// Decode decodes all instructions of the buffer. Decoding stops at the first
// instruction that can not be decoded.
func (dis *Disasm) Decode(ctx context.Context) (*program.Program, error) {
	data, err := dis.buf.Bytes(0, dis.buf.Len())
	if err != nil {
		return nil, fmt.Errorf("reading buffer: %w", err)
	}
	app := program.New(data)

	for ip := 0; ip < dis.buf.Len(); {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("decoding at offset 0x%04x: %w", ip, err)
		}

		ins, err := i8086.Decode(dis.buf, ip)
		if err != nil {
			dis.reportError(err)
			return nil, fmt.Errorf("decoding instruction: %w", err)
		}

		line, err := dis.convertToLine(ins)
		if err != nil {
			return nil, err
		}
		app.Add(line)
		dis.families.Add(ins.Family)

		if dis.options.DumpDecoded {
			dis.logger.Debug("Decoded instruction", log.String("instruction", pp.Sprint(ins)))
		}

		ip += ins.Length
	}

	dis.logSummary(app)
	return app, nil
}

func (dis *Disasm) convertToLine(ins i8086.Instruction) (program.Line, error) {
	data, err := dis.buf.Bytes(ins.Offset, ins.Length)
	if err != nil {
		return program.Line{}, fmt.Errorf("reading instruction bytes: %w", err)
	}
	return program.Line{
		Offset: ins.Offset,
		Bytes:  data,
		Code:   ins.String(),
	}, nil
}

// reportError logs the kind, offset and byte value of a decoding failure.
func (dis *Disasm) reportError(err error) {
	var decodeErr *i8086.DecodeError
	if !errors.As(err, &decodeErr) {
		dis.logger.Error("Decoding failed", log.Err(err))
		return
	}
	dis.logger.Error("Decoding failed",
		log.Stringer("kind", decodeErr.Kind),
		log.Hex("offset", decodeErr.Offset),
		log.Hex("value", decodeErr.Value))
}

func (dis *Disasm) logSummary(app *program.Program) {
	families := make([]i8086.Family, 0, len(dis.families))
	for family := range dis.families {
		families = append(families, family)
	}
	slices.Sort(families)

	for _, family := range families {
		dis.logger.Debug("Encoding used", log.Stringer("family", family))
	}
	dis.logger.Debug("Decoding finished",
		log.Int("instructions", len(app.Lines)),
		log.Int("bytes", app.Size))
}
