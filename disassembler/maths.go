package disassembler

import (
	"github.com/Urethramancer/yarn/cpu"
)

// decodeArith renders src, dst for the arithmetic family. The immediate
// belongs to the source operand.
func decodeArith(d *cpu.Decoded) string {
	return formatValue(d.RegA, d.Immediate) + ", " + formatRegister(d.RegB)
}
