package assembler

import (
	"strings"

	"github.com/Urethramancer/yarn/cpu"
)

// expectOperands checks the operand count of an instruction.
func expectOperands(ins cpu.Instruction, operands []Operand, n int, line int) error {
	if len(operands) == n {
		return nil
	}
	return newErrorf(line, KindInvalidOperandSyntax, joinOperands(ins, operands),
		"%s takes %d operand(s), got %d", ins.Mnemonic, n, len(operands))
}

// rejectLabels fails for label references outside the branch family.
func rejectLabels(ins cpu.Instruction, operands []Operand, line int) error {
	for _, op := range operands {
		if op.IsLabel() {
			return newErrorf(line, KindInvalidOperandSyntax, op.Raw,
				"%s does not take a label operand", ins.Mnemonic)
		}
	}
	return nil
}

// joinOperands renders an instruction back to text for error messages.
func joinOperands(ins cpu.Instruction, operands []Operand) string {
	raw := make([]string, len(operands))
	for i, op := range operands {
		raw[i] = op.Raw
	}
	if len(raw) == 0 {
		return ins.Mnemonic
	}
	return ins.Mnemonic + " " + strings.Join(raw, ", ")
}

// encodeRegImm builds the 6-byte [opcode][rA<<4|rB][imm32] layout.
func encodeRegImm(opcode byte, a, b cpu.Register, imm uint32) []byte {
	out := make([]byte, 2, 2+cpu.WordSize)
	out[0] = opcode
	out[1] = cpu.PackRegisters(a, b)
	return cpu.AppendWord(out, imm)
}
