package disassembler

import (
	"github.com/Urethramancer/yarn/cpu"
)

// decodeMove renders the four move forms with their explicit mnemonics.
func decodeMove(d *cpu.Decoded) string {
	switch d.Function {
	case cpu.MoveIR:
		return formatValue(d.RegA, d.Immediate) + ", " + formatRegister(d.RegB)
	case cpu.MoveMR:
		return formatMemory(formatValue(d.RegA, d.Immediate)) + ", " + formatRegister(d.RegB)
	case cpu.MoveRR:
		return formatValue(d.RegA, d.Immediate) + ", " + formatRegister(d.RegB)
	case cpu.MoveRM:
		return formatRegister(d.RegA) + ", " + formatMemory(formatValue(d.RegB, d.Immediate))
	}
	return ""
}
