// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string // binary file to disassemble
	Output string // output .asm file, stdout if empty
	Batch  string // glob pattern of files to process
}

// Flags contains behavior options.
type Flags struct {
	AssembleTest bool // reassemble the output with nasm and compare it to the input
	CrossCheck   bool // compare every decoded instruction against a reference decoder
	Debug        bool
	Quiet        bool
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	HexComments    bool // output instruction bytes as hex values in comments
	OffsetComments bool // output instruction offsets in comments
	DumpDecoded    bool // dump every decoded instruction to the debug log
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		HexComments:    true,
		OffsetComments: true,
	}
}
