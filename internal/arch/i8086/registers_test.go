package i8086

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestRegisterName(t *testing.T) {
	expected := []string{
		"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh",
		"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
	}

	var names []string
	seen := map[string]struct{}{}
	for _, w := range []Width{Byte, Word} {
		for reg := ALAX; reg <= BHDI; reg++ {
			name := RegisterName(reg, w)
			names = append(names, name)
			seen[name] = struct{}{}
		}
	}

	assert.Equal(t, expected, names)
	assert.Equal(t, 16, len(seen))
}

func TestEffectiveAddress(t *testing.T) {
	tests := []struct {
		rm        Register
		displaced bool
		expr      string
		direct    bool
	}{
		{ALAX, false, "bx + si", false},
		{CLCX, false, "bx + di", false},
		{DLDX, false, "bp + si", false},
		{BLBX, false, "bp + di", false},
		{AHSP, false, "si", false},
		{CHBP, false, "di", false},
		{DHSI, false, "", true},
		{BHDI, false, "bx", false},
		{DHSI, true, "bp", false},
		{ALAX, true, "bx + si", false},
		{BHDI, true, "bx", false},
	}

	for _, tt := range tests {
		expr, direct := EffectiveAddress(tt.rm, tt.displaced)
		assert.Equal(t, tt.expr, expr)
		assert.Equal(t, tt.direct, direct)
	}
}

func TestFieldExtraction(t *testing.T) {
	// 100010 d=1 w=1
	assert.Equal(t, Word, wordField(0x8b))
	assert.Equal(t, ToRegister, directionField(0x8b))
	assert.Equal(t, Byte, wordField(0x88))
	assert.Equal(t, ToRegMem, directionField(0x88))

	// 1011 w=1 reg=010
	assert.Equal(t, Word, immediateWordField(0xba))
	assert.Equal(t, DLDX, immediateRegField(0xba))
	assert.Equal(t, Byte, immediateWordField(0xb5))
	assert.Equal(t, CHBP, immediateRegField(0xb5))

	// mod=01 reg=100 rm=000
	assert.Equal(t, MemoryByteDisplacement, modeField(0x60))
	assert.Equal(t, AHSP, registerField(0x60))
	assert.Equal(t, ALAX, regMemField(0x60))

	// mod=11 reg=011 rm=000
	assert.Equal(t, RegisterMode, modeField(0xd8))
	assert.Equal(t, BLBX, registerField(0xd8))
	assert.Equal(t, ALAX, regMemField(0xd8))
}
