package i8086

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		opcode byte
		family Family
	}{
		{0x88, RegMemToFromRegister},
		{0x89, RegMemToFromRegister},
		{0x8a, RegMemToFromRegister},
		{0x8b, RegMemToFromRegister},
		{0xc6, ImmediateToRegMem},
		{0xc7, ImmediateToRegMem},
		{0xa0, MemoryToAccumulator},
		{0xa1, MemoryToAccumulator},
		{0xa2, AccumulatorToMemory},
		{0xa3, AccumulatorToMemory},
	}

	for _, tt := range tests {
		family, ok := Classify(tt.opcode)
		assert.True(t, ok)
		assert.Equal(t, tt.family, family)
	}
}

func TestClassifyImmediateToRegisterFirst(t *testing.T) {
	for opcode := 0xb0; opcode <= 0xbf; opcode++ {
		family, ok := Classify(byte(opcode))
		assert.True(t, ok)
		assert.Equal(t, ImmediateToRegister, family)
	}
}

func TestClassifyUnsupported(t *testing.T) {
	supported := 0
	for opcode := 0; opcode <= 0xff; opcode++ {
		family, ok := Classify(byte(opcode))
		if !ok {
			assert.Equal(t, UnknownFamily, family)
			continue
		}
		supported++
	}
	// 16 immediate to register + 4 + 2 + 2 + 2
	assert.Equal(t, 26, supported)

	_, ok := Classify(0xff)
	assert.False(t, ok)
	_, ok = Classify(0x8c) // mov r/m, segment register
	assert.False(t, ok)
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "immediate to register", ImmediateToRegister.String())
	assert.Equal(t, "accumulator to memory", AccumulatorToMemory.String())
	assert.Equal(t, "unknown", UnknownFamily.String())
}
