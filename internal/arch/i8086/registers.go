package i8086

// RegisterName returns the name of the register selected by the 3 bit register
// index and the operand width.
func RegisterName(reg Register, w Width) string {
	if w == Word {
		return wordRegisterName(reg)
	}
	return byteRegisterName(reg)
}

func byteRegisterName(reg Register) string {
	switch reg {
	case ALAX:
		return "al"
	case CLCX:
		return "cl"
	case DLDX:
		return "dl"
	case BLBX:
		return "bl"
	case AHSP:
		return "ah"
	case CHBP:
		return "ch"
	case DHSI:
		return "dh"
	case BHDI:
		return "bh"
	default:
		return ""
	}
}

func wordRegisterName(reg Register) string {
	switch reg {
	case ALAX:
		return "ax"
	case CLCX:
		return "cx"
	case DLDX:
		return "dx"
	case BLBX:
		return "bx"
	case AHSP:
		return "sp"
	case CHBP:
		return "bp"
	case DHSI:
		return "si"
	case BHDI:
		return "di"
	default:
		return ""
	}
}

// EffectiveAddress returns the base/index expression selected by the rm field.
// Without a displacement rm 110 encodes a direct address, in which case direct
// is true and the expression is empty.
func EffectiveAddress(rm Register, displaced bool) (expr string, direct bool) {
	switch rm {
	case ALAX:
		return "bx + si", false
	case CLCX:
		return "bx + di", false
	case DLDX:
		return "bp + si", false
	case BLBX:
		return "bp + di", false
	case AHSP:
		return "si", false
	case CHBP:
		return "di", false
	case DHSI:
		if !displaced {
			return "", true
		}
		return "bp", false
	case BHDI:
		return "bx", false
	default:
		return "", false
	}
}
