package i8086

// Family identifies one of the supported MOV encodings.
type Family int

const (
	UnknownFamily Family = iota
	ImmediateToRegister
	RegMemToFromRegister
	ImmediateToRegMem
	MemoryToAccumulator
	AccumulatorToMemory
)

func (f Family) String() string {
	switch f {
	case ImmediateToRegister:
		return "immediate to register"
	case RegMemToFromRegister:
		return "register/memory to/from register"
	case ImmediateToRegMem:
		return "immediate to register/memory"
	case MemoryToAccumulator:
		return "memory to accumulator"
	case AccumulatorToMemory:
		return "accumulator to memory"
	default:
		return "unknown"
	}
}

// opcodeRule matches an opcode byte if byte&Mask == Value.
type opcodeRule struct {
	Mask   byte
	Value  byte
	Family Family
}

// opcodeRules is evaluated in order and the first matching rule wins.
// The immediate to register rule checks only 4 bits and has to come first.
var opcodeRules = []opcodeRule{
	{Mask: 0xf0, Value: 0xb0, Family: ImmediateToRegister},
	{Mask: 0xfc, Value: 0x88, Family: RegMemToFromRegister},
	{Mask: 0xfe, Value: 0xc6, Family: ImmediateToRegMem},
	{Mask: 0xfe, Value: 0xa0, Family: MemoryToAccumulator},
	{Mask: 0xfe, Value: 0xa2, Family: AccumulatorToMemory},
}

// Classify returns the encoding family of the opcode byte.
func Classify(opcode byte) (Family, bool) {
	for _, rule := range opcodeRules {
		if opcode&rule.Mask == rule.Value {
			return rule.Family, true
		}
	}
	return UnknownFamily, false
}
