// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/disasm8086/internal/buffer"
	"github.com/retroenv/disasm8086/internal/disasm"
	"github.com/retroenv/disasm8086/internal/loader"
	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/disasm8086/internal/program"
	"github.com/retroenv/disasm8086/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(logger),
	}
}

// Execute loads the input file and runs the complete disassembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler,
	writer io.Writer) (*program.Program, error) {

	buf, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading input: %w", err)
	}

	return p.ExecuteWithBuffer(ctx, buf, opts, disasmOpts, writer)
}

// ExecuteWithBuffer runs the disassembly pipeline with a pre-loaded buffer.
// This is useful for testing and programmatic usage where the input is already in memory.
func (p *Pipeline) ExecuteWithBuffer(ctx context.Context, buf *buffer.Buffer, opts options.Program,
	disasmOpts options.Disassembler, writer io.Writer) (*program.Program, error) {

	p.printInfo(opts, buf)

	dis := disasm.New(p.logger, buf, disasmOpts)
	result, err := dis.Process(ctx, writer)
	if err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}

	if opts.CrossCheck {
		if err := verification.CrossCheck(p.logger, result); err != nil {
			return nil, fmt.Errorf("cross check failed: %w", err)
		}
		p.logger.Info("Cross check successful")
	}

	if opts.AssembleTest {
		input, err := buf.Bytes(0, buf.Len())
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		if err := verification.VerifyOutput(ctx, p.logger, opts, input); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return result, nil
}

// printInfo prints information about the input being processed.
func (p *Pipeline) printInfo(opts options.Program, buf *buffer.Buffer) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing 8086 binary",
		log.String("file", opts.Input),
		log.Int("size", buf.Len()),
	)
}
