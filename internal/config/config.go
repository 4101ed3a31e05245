// Package config creates the shared application components from the program options.
package config

import (
	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger for the verbosity selected by the flags.
// Debug output takes precedence over quiet mode.
func CreateLogger(flags options.Flags) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case flags.Debug:
		cfg.Level = log.DebugLevel
	case flags.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateDisassemblerOptions derives the disassembler options that depend on program flags.
func CreateDisassemblerOptions(flags options.Flags, disasmOptions options.Disassembler) options.Disassembler {
	disasmOptions.DumpDecoded = flags.Debug
	return disasmOptions
}
