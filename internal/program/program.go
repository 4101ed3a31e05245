// Package program represents a disassembled 8086 program.
package program

import "hash/crc32"

// Line defines a single decoded instruction of the program.
type Line struct {
	Offset int    // offset of the first instruction byte in the input
	Bytes  []byte // all bytes that are part of the instruction
	Code   string // asm output of this instruction
}

// Program defines a disassembled program.
type Program struct {
	Lines []Line

	Size     int    // size of the input in bytes
	Checksum uint32 // CRC32 checksum of the input
}

// New creates a new program for the given input data.
func New(data []byte) *Program {
	return &Program{
		Size:     len(data),
		Checksum: crc32.ChecksumIEEE(data),
	}
}

// Add appends a decoded instruction to the program.
func (p *Program) Add(line Line) {
	p.Lines = append(p.Lines, line)
}

// Bytes returns the concatenated instruction bytes of all lines.
func (p *Program) Bytes() []byte {
	data := make([]byte, 0, p.Size)
	for _, line := range p.Lines {
		data = append(data, line.Bytes...)
	}
	return data
}
