package config

import (
	"testing"

	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name  string
		flags options.Flags
	}{
		{"default", options.Flags{}},
		{"debug", options.Flags{Debug: true}},
		{"quiet", options.Flags{Quiet: true}},
		{"debug wins over quiet", options.Flags{Debug: true, Quiet: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := CreateLogger(tt.flags)
			assert.NotNil(t, logger)
		})
	}
}

func TestCreateDisassemblerOptions(t *testing.T) {
	opts := CreateDisassemblerOptions(options.Flags{Debug: true}, options.NewDisassembler())
	assert.True(t, opts.DumpDecoded)
	assert.True(t, opts.HexComments)
	assert.True(t, opts.OffsetComments)

	opts = CreateDisassemblerOptions(options.Flags{}, options.NewDisassembler())
	assert.False(t, opts.DumpDecoded)
}
