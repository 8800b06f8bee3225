package disassembler

import (
	"github.com/Urethramancer/yarn/cpu"
)

// decodeStack renders the single register of push and pop.
func decodeStack(d *cpu.Decoded) string {
	return formatRegister(d.RegA)
}
