package i8086

import "fmt"

// Width is the operand size selected by the W bit.
type Width byte

const (
	Byte Width = 0x0
	Word Width = 0x1
)

func (w Width) String() string {
	if w == Word {
		return "word"
	}
	return "byte"
}

// Direction selects whether the register field is the destination or the source.
type Direction byte

const (
	ToRegMem   Direction = 0x0 // reg field is the source
	ToRegister Direction = 0x1 // reg field is the destination
)

// Mode is the 2 bit addressing mode of a mod/reg/rm byte.
type Mode byte

const (
	MemoryNoDisplacement   Mode = 0x0
	MemoryByteDisplacement Mode = 0x1
	MemoryWordDisplacement Mode = 0x2
	RegisterMode           Mode = 0x3
)

// Validate returns an error if the mode is not one of the four addressing modes.
func (m Mode) Validate() error {
	switch m {
	case MemoryNoDisplacement, MemoryByteDisplacement, MemoryWordDisplacement, RegisterMode:
		return nil
	default:
		return fmt.Errorf("mode %d: %w", m, ErrInvalidMode)
	}
}

// displacementSize returns the number of displacement bytes that follow the mod byte.
// rm is needed for the direct address case of MemoryNoDisplacement.
func (m Mode) displacementSize(rm Register) int {
	switch m {
	case MemoryNoDisplacement:
		if rm == directAddressRM {
			return 2
		}
		return 0
	case MemoryByteDisplacement:
		return 1
	case MemoryWordDisplacement:
		return 2
	default:
		return 0
	}
}

// Register is a 3 bit register or r/m field value.
type Register byte

const (
	ALAX Register = 0x0
	CLCX Register = 0x1
	DLDX Register = 0x2
	BLBX Register = 0x3
	AHSP Register = 0x4
	CHBP Register = 0x5
	DHSI Register = 0x6
	BHDI Register = 0x7
)

// directAddressRM is the rm value that means a direct address when mod is 00.
const directAddressRM = DHSI

// Fields of the first byte of the register/memory encodings: opcode(6|7) d w.

func wordField(b byte) Width {
	return Width(b & 0x01)
}

func directionField(b byte) Direction {
	return Direction((b >> 1) & 0x01)
}

// Fields of the immediate to register opcode byte: 1011 w reg.

func immediateWordField(b byte) Width {
	return Width((b >> 3) & 0x01)
}

func immediateRegField(b byte) Register {
	return Register(b & 0x07)
}

// Fields of the mod/reg/rm byte: mod(2) reg(3) rm(3).

func modeField(b byte) Mode {
	return Mode(b >> 6)
}

func registerField(b byte) Register {
	return Register((b >> 3) & 0x07)
}

func regMemField(b byte) Register {
	return Register(b & 0x07)
}
