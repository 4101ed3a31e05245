package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/disasm8086/internal/arch/i8086"
	"github.com/retroenv/disasm8086/internal/buffer"
	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.loader)
}

func TestExecute(t *testing.T) {
	input := []byte{
		0x89, 0xd9, // mov cx, bx
		0xb1, 0x0c, // mov cl, 12
		0x8b, 0x41, 0xdb, // mov ax, [bx + di - 37]
	}
	path := filepath.Join(t.TempDir(), "listing")
	assert.NoError(t, os.WriteFile(path, input, 0o600))

	opts := options.Program{
		Parameters: options.Parameters{Input: path},
		Flags:      options.Flags{CrossCheck: true},
	}

	var out bytes.Buffer
	p := New(log.NewTestLogger(t))
	app, err := p.Execute(context.Background(), opts, options.Disassembler{}, &out)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(app.Lines))
	assert.Equal(t, input, app.Bytes())

	output := out.String()
	assert.True(t, strings.Contains(output, "bits 16"))
	assert.True(t, strings.Contains(output, "mov cx, bx\n"))
	assert.True(t, strings.Contains(output, "mov cl, 12\n"))
	assert.True(t, strings.Contains(output, "mov ax, [bx + di - 37]\n"))
}

func TestExecuteMissingFile(t *testing.T) {
	opts := options.Program{
		Parameters: options.Parameters{Input: filepath.Join(t.TempDir(), "missing")},
	}

	var out bytes.Buffer
	p := New(log.NewTestLogger(t))
	_, err := p.Execute(context.Background(), opts, options.Disassembler{}, &out)
	assert.ErrorContains(t, err, "loading input")
}

func TestExecuteWithBufferDecodeError(t *testing.T) {
	buf := buffer.New([]byte{0x89, 0xd9, 0x90})

	var out bytes.Buffer
	p := New(log.NewTestLogger(t))
	_, err := p.ExecuteWithBuffer(context.Background(), buf, options.Program{}, options.NewDisassembler(), &out)
	assert.Error(t, err)

	var decodeErr *i8086.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, i8086.UnsupportedOpcode, decodeErr.Kind)
	assert.Equal(t, 2, decodeErr.Offset)
	assert.Equal(t, 0, out.Len())
}

func TestExecuteWithBufferCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	p := New(log.NewTestLogger(t))
	_, err := p.ExecuteWithBuffer(ctx, buffer.New([]byte{0x89, 0xd9}), options.Program{}, options.NewDisassembler(), &out)
	assert.True(t, errors.Is(err, context.Canceled))
}
