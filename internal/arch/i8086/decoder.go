package i8086

import (
	"fmt"

	"github.com/retroenv/disasm8086/internal/buffer"
)

// Decode decodes the instruction that starts at the given offset of the buffer.
func Decode(buf *buffer.Buffer, ip int) (Instruction, error) {
	opcode, err := buf.Byte(ip)
	if err != nil {
		return Instruction{}, outOfRange(err, 0)
	}

	family, ok := Classify(opcode)
	if !ok {
		return Instruction{}, &DecodeError{
			Kind:   UnsupportedOpcode,
			Offset: ip,
			Value:  opcode,
			Err:    ErrUnsupportedOpcode,
		}
	}

	switch family {
	case ImmediateToRegister:
		return decodeImmediateToRegister(buf, ip, opcode)
	case RegMemToFromRegister:
		return decodeRegMemToFromRegister(buf, ip, opcode)
	case ImmediateToRegMem:
		return decodeImmediateToRegMem(buf, ip, opcode)
	case MemoryToAccumulator:
		return decodeMemoryToAccumulator(buf, ip, opcode)
	case AccumulatorToMemory:
		return decodeAccumulatorToMemory(buf, ip, opcode)
	default:
		return Instruction{}, &DecodeError{
			Kind:   UnsupportedOpcode,
			Offset: ip,
			Value:  opcode,
			Err:    fmt.Errorf("family %s: %w", family, ErrUnsupportedOpcode),
		}
	}
}

// decodeImmediateToRegister decodes 1011 w reg, data, data if w=1.
func decodeImmediateToRegister(buf *buffer.Buffer, ip int, opcode byte) (Instruction, error) {
	r := instructionReader{buf: buf, ip: ip, opcode: opcode}
	w := immediateWordField(opcode)

	value, size, err := r.immediate(1, w)
	if err != nil {
		return Instruction{}, err
	}

	return Instruction{
		Family:      ImmediateToRegister,
		Offset:      ip,
		Length:      1 + size,
		Destination: RegisterName(immediateRegField(opcode), w),
		Source:      fmt.Sprintf("%d", value),
	}, nil
}

// decodeRegMemToFromRegister decodes 100010 d w, mod reg rm, disp-lo, disp-hi.
func decodeRegMemToFromRegister(buf *buffer.Buffer, ip int, opcode byte) (Instruction, error) {
	r := instructionReader{buf: buf, ip: ip, opcode: opcode}
	modByte, err := r.modByte()
	if err != nil {
		return Instruction{}, err
	}

	w := wordField(opcode)
	reg := RegisterName(registerField(modByte), w)
	regMem, dispSize, err := r.regMemOperand(modByte, w)
	if err != nil {
		return Instruction{}, err
	}

	ins := Instruction{
		Family:      RegMemToFromRegister,
		Offset:      ip,
		Length:      2 + dispSize,
		Destination: regMem,
		Source:      reg,
	}
	if directionField(opcode) == ToRegister {
		ins.Destination, ins.Source = reg, regMem
	}
	return ins, nil
}

// decodeImmediateToRegMem decodes 1100011 w, mod 000 rm, disp-lo, disp-hi, data, data if w=1.
func decodeImmediateToRegMem(buf *buffer.Buffer, ip int, opcode byte) (Instruction, error) {
	r := instructionReader{buf: buf, ip: ip, opcode: opcode}
	modByte, err := r.modByte()
	if err != nil {
		return Instruction{}, err
	}

	w := wordField(opcode)
	dest, dispSize, err := r.regMemOperand(modByte, w)
	if err != nil {
		return Instruction{}, err
	}

	value, immSize, err := r.immediate(2+dispSize, w)
	if err != nil {
		return Instruction{}, err
	}

	// memory operands carry no width, so the immediate needs a size qualifier
	source := fmt.Sprintf("%d", value)
	if modeField(modByte) != RegisterMode {
		source = fmt.Sprintf("%s %d", w, value)
	}

	return Instruction{
		Family:      ImmediateToRegMem,
		Offset:      ip,
		Length:      2 + dispSize + immSize,
		Destination: dest,
		Source:      source,
	}, nil
}

// decodeMemoryToAccumulator decodes 1010000 w, addr-lo, addr-hi.
func decodeMemoryToAccumulator(buf *buffer.Buffer, ip int, opcode byte) (Instruction, error) {
	acc, address, err := readAccumulatorTransfer(buf, ip, opcode)
	if err != nil {
		return Instruction{}, err
	}

	return Instruction{
		Family:      MemoryToAccumulator,
		Offset:      ip,
		Length:      3,
		Destination: acc,
		Source:      address,
	}, nil
}

// decodeAccumulatorToMemory decodes 1010001 w, addr-lo, addr-hi.
func decodeAccumulatorToMemory(buf *buffer.Buffer, ip int, opcode byte) (Instruction, error) {
	acc, address, err := readAccumulatorTransfer(buf, ip, opcode)
	if err != nil {
		return Instruction{}, err
	}

	return Instruction{
		Family:      AccumulatorToMemory,
		Offset:      ip,
		Length:      3,
		Destination: address,
		Source:      acc,
	}, nil
}

func readAccumulatorTransfer(buf *buffer.Buffer, ip int, opcode byte) (string, string, error) {
	r := instructionReader{buf: buf, ip: ip, opcode: opcode}
	address, err := r.readWord(1)
	if err != nil {
		return "", "", err
	}
	return RegisterName(ALAX, wordField(opcode)), directAddress(address), nil
}
