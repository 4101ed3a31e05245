// Package main implements the main entry point for the 8086 MOV disassembler.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/disasm8086/internal/cli"
	"github.com/retroenv/disasm8086/internal/config"
	"github.com/retroenv/disasm8086/internal/fileprocessor"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, disasmOptions, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Flags)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Error("Parsing flags failed", log.Err(err))
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Flags)
	disasmOptions = config.CreateDisassemblerOptions(opts.Flags, disasmOptions)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		logger.Error("Finding files failed", log.Err(err))
		os.Exit(1)
	}

	var failed bool
	for _, file := range files {
		opts.Input = file
		if opts.Batch != "" {
			opts.Output = fileprocessor.GenerateOutputFilename(file)
		}

		if err := fileprocessor.ProcessFile(ctx, logger, opts, disasmOptions); err != nil {
			// Handle context cancellation (Ctrl+C) gracefully
			if errors.Is(err, context.Canceled) {
				logger.Info("Operation cancelled")
				os.Exit(1)
			}
			logger.Error("Disassembling failed", log.Err(err))
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
