package i8086

import (
	"errors"
	"fmt"

	"github.com/retroenv/disasm8086/internal/buffer"
)

var (
	// ErrUnsupportedOpcode is returned for an opcode byte outside the MOV family.
	ErrUnsupportedOpcode = errors.New("unsupported opcode")
	// ErrInvalidMode is returned for a mod field value outside of 0-3.
	ErrInvalidMode = errors.New("invalid addressing mode")
)

// ErrorKind classifies a decoding failure.
type ErrorKind int

const (
	OutOfRange ErrorKind = iota + 1
	UnsupportedOpcode
	InvalidMode
)

func (k ErrorKind) String() string {
	switch k {
	case OutOfRange:
		return "out of range"
	case UnsupportedOpcode:
		return "unsupported opcode"
	case InvalidMode:
		return "invalid mode"
	default:
		return "unknown"
	}
}

// DecodeError is a fatal decoding failure.
type DecodeError struct {
	Kind   ErrorKind
	Offset int  // offset of the byte that caused the failure
	Value  byte // opcode byte, or mod byte for InvalidMode
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at offset 0x%04x (byte 0x%02x): %s", e.Kind, e.Offset, e.Value, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// outOfRange converts a buffer read error into a DecodeError.
func outOfRange(err error, opcode byte) error {
	de := &DecodeError{
		Kind:  OutOfRange,
		Value: opcode,
		Err:   err,
	}
	var rangeErr *buffer.RangeError
	if errors.As(err, &rangeErr) {
		de.Offset = rangeErr.Offset
	}
	return de
}
