package i8086

import (
	"fmt"

	"github.com/retroenv/disasm8086/internal/buffer"
)

// instructionReader reads the bytes of a single instruction relative to its opcode byte.
type instructionReader struct {
	buf    *buffer.Buffer
	ip     int
	opcode byte
}

func (r instructionReader) readByte(offset int) (byte, error) {
	b, err := r.buf.Byte(r.ip + offset)
	if err != nil {
		return 0, outOfRange(err, r.opcode)
	}
	return b, nil
}

func (r instructionReader) readWord(offset int) (uint16, error) {
	w, err := r.buf.Word(r.ip + offset)
	if err != nil {
		return 0, outOfRange(err, r.opcode)
	}
	return w, nil
}

// immediate reads a sign extended immediate of the given width.
func (r instructionReader) immediate(offset int, w Width) (int, int, error) {
	if w == Word {
		v, err := r.readWord(offset)
		return int(int16(v)), 2, err
	}
	v, err := r.readByte(offset)
	return int(int8(v)), 1, err
}

// modByte reads and validates the mod/reg/rm byte that follows the opcode.
func (r instructionReader) modByte() (byte, error) {
	b, err := r.readByte(1)
	if err != nil {
		return 0, err
	}
	if err := modeField(b).Validate(); err != nil {
		return 0, &DecodeError{
			Kind:   InvalidMode,
			Offset: r.ip + 1,
			Value:  b,
			Err:    err,
		}
	}
	return b, nil
}

// regMemOperand returns the operand text selected by the mod and rm fields and
// the number of displacement bytes that follow the mod byte.
func (r instructionReader) regMemOperand(modByte byte, w Width) (string, int, error) {
	mode := modeField(modByte)
	rm := regMemField(modByte)
	size := mode.displacementSize(rm)

	switch mode {
	case RegisterMode:
		return RegisterName(rm, w), size, nil

	case MemoryNoDisplacement:
		expr, direct := EffectiveAddress(rm, false)
		if !direct {
			return fmt.Sprintf("[%s]", expr), size, nil
		}
		address, err := r.readWord(2)
		if err != nil {
			return "", 0, err
		}
		return directAddress(address), size, nil

	case MemoryByteDisplacement:
		disp, err := r.readByte(2)
		if err != nil {
			return "", 0, err
		}
		expr, _ := EffectiveAddress(rm, true)
		return displacedAddress(expr, int(int8(disp))), size, nil

	case MemoryWordDisplacement:
		disp, err := r.readWord(2)
		if err != nil {
			return "", 0, err
		}
		expr, _ := EffectiveAddress(rm, true)
		return displacedAddress(expr, int(int16(disp))), size, nil

	default:
		return "", 0, &DecodeError{
			Kind:   InvalidMode,
			Offset: r.ip + 1,
			Value:  modByte,
			Err:    fmt.Errorf("mode %d: %w", mode, ErrInvalidMode),
		}
	}
}

func directAddress(address uint16) string {
	return fmt.Sprintf("[%d]", address)
}

func displacedAddress(expr string, disp int) string {
	if disp < 0 {
		return fmt.Sprintf("[%s - %d]", expr, -disp)
	}
	return fmt.Sprintf("[%s + %d]", expr, disp)
}
