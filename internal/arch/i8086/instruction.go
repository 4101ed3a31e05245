package i8086

import "fmt"

const mnemonic = "mov"

// Instruction is a decoded instruction.
type Instruction struct {
	Family Family
	Offset int // offset of the opcode byte in the buffer
	Length int // number of bytes the instruction occupies

	Destination string
	Source      string
}

// Mnemonic returns the instruction mnemonic.
func (i Instruction) Mnemonic() string {
	return mnemonic
}

// String returns the instruction in assembly syntax.
func (i Instruction) String() string {
	return fmt.Sprintf("%s %s, %s", i.Mnemonic(), i.Destination, i.Source)
}
