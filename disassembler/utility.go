package disassembler

import (
	"fmt"

	"github.com/Urethramancer/yarn/cpu"
)

// formatRegister renders a register operand.
func formatRegister(r cpu.Register) string {
	return "%" + r.String()
}

// formatLiteral renders a 32-bit field as hex. Signed source values come back
// as their two's complement, which encodes to the same bytes.
func formatLiteral(v uint32) string {
	return fmt.Sprintf("0x%X", v)
}

// formatValue renders a register/immediate pair the way it was most likely
// written: a bare literal when no register is present, a register with an
// optional displacement otherwise.
func formatValue(r cpu.Register, v uint32) string {
	switch {
	case r.IsNull():
		return formatLiteral(v)
	case v == 0:
		return formatRegister(r)
	default:
		return formatRegister(r) + "+" + formatLiteral(v)
	}
}

// formatMemory wraps an operand in the memory syntax.
func formatMemory(inner string) string {
	return "*(" + inner + ")"
}

func labelName(addr uint32, t LabelType) string {
	if t == SubroutineEntry {
		return fmt.Sprintf("sub_%04X", addr)
	}
	return fmt.Sprintf("L_%04X", addr)
}
