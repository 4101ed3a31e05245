// Package buffer provides bounds checked access to a loaded binary.
package buffer

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned for reads past the end of the buffer.
var ErrOutOfRange = errors.New("read out of range")

// RangeError describes a read that does not fit into the buffer.
type RangeError struct {
	Offset int // first byte of the read
	Size   int // number of bytes requested
	Length int // length of the buffer
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("reading %d byte(s) at offset 0x%04x: %s (buffer size 0x%04x)",
		e.Size, e.Offset, ErrOutOfRange, e.Length)
}

// Unwrap returns ErrOutOfRange to support errors.Is.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// Buffer is an immutable, fixed-length sequence of bytes.
type Buffer struct {
	data []byte
}

// New returns a buffer holding a copy of the passed data.
func New(data []byte) *Buffer {
	b := &Buffer{
		data: make([]byte, len(data)),
	}
	copy(b.data, data)
	return b
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Byte reads the byte at the given offset.
func (b *Buffer) Byte(offset int) (byte, error) {
	if err := b.check(offset, 1); err != nil {
		return 0, err
	}
	return b.data[offset], nil
}

// Word reads a little-endian 16 bit word at the given offset.
func (b *Buffer) Word(offset int) (uint16, error) {
	if err := b.check(offset, 2); err != nil {
		return 0, err
	}
	low := uint16(b.data[offset])
	high := uint16(b.data[offset+1])
	return high<<8 | low, nil
}

// Bytes returns a copy of n bytes starting at the given offset.
func (b *Buffer) Bytes(offset, n int) ([]byte, error) {
	if err := b.check(offset, n); err != nil {
		return nil, err
	}
	data := make([]byte, n)
	copy(data, b.data[offset:offset+n])
	return data, nil
}

func (b *Buffer) check(offset, size int) error {
	if offset < 0 || size < 0 || offset+size > len(b.data) {
		return &RangeError{
			Offset: offset,
			Size:   size,
			Length: len(b.data),
		}
	}
	return nil
}
