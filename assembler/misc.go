package assembler

import (
	"github.com/Urethramancer/yarn/cpu"
)

// --- HALT / PAUSE / NOP ---
func assembleControl(ins cpu.Instruction, operands []Operand, line int) ([]byte, error) {
	if err := expectOperands(ins, operands, 0, line); err != nil {
		return nil, err
	}
	return []byte{ins.Opcode()}, nil
}
