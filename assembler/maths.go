package assembler

import (
	"github.com/Urethramancer/yarn/cpu"
)

// assembleArith handles the arithmetic and logic family. The immediate is
// always taken from the first operand; the second only supplies rB.
func assembleArith(ins cpu.Instruction, operands []Operand, line int) ([]byte, error) {
	if err := expectOperands(ins, operands, 2, line); err != nil {
		return nil, err
	}
	if err := rejectLabels(ins, operands, line); err != nil {
		return nil, err
	}
	for _, op := range operands {
		if op.Memory {
			return nil, newErrorf(line, KindInvalidOperandSyntax, op.Raw, "%s does not address memory", ins.Mnemonic)
		}
	}

	src, dst := operands[0], operands[1]
	return encodeRegImm(ins.Opcode(), src.Register, dst.Register, src.Word()), nil
}
