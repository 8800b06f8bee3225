package assembler

import (
	"github.com/Urethramancer/yarn/cpu"
)

// assembleBranch handles CALL, RET, JMP, JIF and SYSCALL. The target is a
// label, a literal, or absent (zero). Labels not yet bound get a fixup for
// the target field at pc+1.
func (asm *Assembler) assembleBranch(ins cpu.Instruction, operands []Operand, line int, pc uint32) ([]byte, error) {
	if len(operands) > 1 {
		return nil, newErrorf(line, KindInvalidOperandSyntax, joinOperands(ins, operands),
			"%s takes at most 1 operand, got %d", ins.Mnemonic, len(operands))
	}

	out := make([]byte, 1, 1+cpu.WordSize)
	out[0] = ins.Opcode()
	if len(operands) == 0 {
		return cpu.AppendWord(out, 0), nil
	}

	target := operands[0]
	switch {
	case target.IsLabel() && !target.Memory:
		addr := asm.resolveTarget(target.Label, int(pc)+1, line)
		return cpu.AppendWord(out, addr), nil

	case target.IsLiteral():
		return cpu.AppendWord(out, target.Word()), nil
	}

	return nil, newErrorf(line, KindInvalidOperandSyntax, target.Raw,
		"%s target must be a label or a literal", ins.Mnemonic)
}
