package assembler

import (
	"github.com/Urethramancer/yarn/cpu"
)

// --- PUSH / POP ---
func assembleStack(ins cpu.Instruction, operands []Operand, line int) ([]byte, error) {
	if err := expectOperands(ins, operands, 1, line); err != nil {
		return nil, err
	}
	if err := rejectLabels(ins, operands, line); err != nil {
		return nil, err
	}
	reg := operands[0]
	if !reg.IsRegister() {
		return nil, newErrorf(line, KindInvalidOperandSyntax, reg.Raw, "%s requires a register", ins.Mnemonic)
	}
	return []byte{ins.Opcode(), cpu.PackRegisters(reg.Register, 0)}, nil
}
