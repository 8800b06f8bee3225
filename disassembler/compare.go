package disassembler

import (
	"github.com/Urethramancer/yarn/cpu"
)

func decodeConditional(d *cpu.Decoded) string {
	return formatRegister(d.RegA) + ", " + formatRegister(d.RegB)
}
