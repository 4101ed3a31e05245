// Package verification verifies the generated output against the input.
package verification

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/disasm8086/internal/assembler/nasm"
	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/disasm8086/internal/program"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/arch/x86/x86asm"
)

const maxLoggedMismatches = 10

// VerifyOutput verifies that the output file reassembles to the exact input.
func VerifyOutput(ctx context.Context, logger *log.Logger, options options.Program, input []byte) error {
	if options.Output == "" {
		return errors.New("can not verify console output")
	}

	var (
		err        error
		outputFile *os.File
	)

	if options.Debug {
		outputFile, err = os.Create("debug.bin")
		if err != nil {
			return fmt.Errorf("creating file 'debug.bin': %w", err)
		}
	} else {
		outputFile, err = os.CreateTemp("", "disasm8086.*.bin")
		if err != nil {
			return fmt.Errorf("creating temp file: %w", err)
		}
		defer func() {
			_ = os.Remove(outputFile.Name())
		}()
	}
	_ = outputFile.Close()

	if err := nasm.AssembleUsingExternalApp(ctx, options.Output, outputFile.Name()); err != nil {
		return fmt.Errorf("reassembling binary using nasm failed: %w", err)
	}

	output, err := os.ReadFile(outputFile.Name())
	if err != nil {
		return fmt.Errorf("reading destination file for comparison: %w", err)
	}

	if err := checkBufferEqual(logger, input, output); err != nil {
		return fmt.Errorf("reassembled binary mismatch: %w", err)
	}
	return nil
}

// CrossCheck decodes every instruction of the program again using the x86asm
// reference decoder and compares the instruction length and operation.
func CrossCheck(logger *log.Logger, app *program.Program) error {
	var mismatches int

	for _, line := range app.Lines {
		reason := compareReference(line)
		if reason == "" {
			continue
		}

		mismatches++
		if mismatches <= maxLoggedMismatches {
			logger.Error("Reference decoder mismatch",
				log.Hex("offset", line.Offset),
				log.String("code", line.Code),
				log.String("reason", reason))
		}
	}

	if mismatches == 0 {
		return nil
	}
	return fmt.Errorf("%d instruction mismatches", mismatches)
}

func compareReference(line program.Line) string {
	inst, err := x86asm.Decode(line.Bytes, 16)
	if err != nil {
		return fmt.Sprintf("reference decoding failed: %s", err)
	}
	if inst.Op != x86asm.MOV {
		return fmt.Sprintf("reference operation is %s", inst.Op)
	}
	if inst.Len != len(line.Bytes) {
		return fmt.Sprintf("reference length is %d instead of %d", inst.Len, len(line.Bytes))
	}
	return ""
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < maxLoggedMismatches {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
