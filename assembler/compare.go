package assembler

import (
	"github.com/Urethramancer/yarn/cpu"
)

// assembleConditional handles LT, LTS, LTE, LTES, EQ and NEQ. Both operands
// are registers; the result lands in the conditional flag.
func assembleConditional(ins cpu.Instruction, operands []Operand, line int) ([]byte, error) {
	if err := expectOperands(ins, operands, 2, line); err != nil {
		return nil, err
	}
	if err := rejectLabels(ins, operands, line); err != nil {
		return nil, err
	}
	for _, op := range operands {
		if !op.IsRegister() {
			return nil, newErrorf(line, KindInvalidOperandSyntax, op.Raw, "%s compares registers only", ins.Mnemonic)
		}
	}
	a, b := operands[0], operands[1]
	return []byte{ins.Opcode(), cpu.PackRegisters(a.Register, b.Register)}, nil
}
