package assembler

import (
	"github.com/Urethramancer/yarn/cpu"
)

// assembleMove handles MOV and the explicit IRMOV, MRMOV, RRMOV and RMMOV.
// The sub-opcode always comes from the operand shapes; an explicit mnemonic
// must agree with it.
func assembleMove(ins cpu.Instruction, operands []Operand, line int) ([]byte, error) {
	if err := expectOperands(ins, operands, 2, line); err != nil {
		return nil, err
	}
	if err := rejectLabels(ins, operands, line); err != nil {
		return nil, err
	}
	src, dst := operands[0], operands[1]

	fn, disp, ok := selectMove(src, dst)
	if !ok {
		return nil, newError(line, KindInvalidMoveOperands, joinOperands(ins, operands))
	}
	if !ins.Dynamic && ins.Function != fn {
		name, _ := cpu.Name(cpu.Opcode(cpu.FamilyMove, fn))
		return nil, newErrorf(line, KindInvalidMoveOperands, joinOperands(ins, operands),
			"operands describe %s", name)
	}

	return encodeRegImm(cpu.Opcode(cpu.FamilyMove, fn), src.Register, dst.Register, disp.Word()), nil
}

// selectMove picks the move form for the operand shapes, in priority order,
// and returns the operand that supplies the 4-byte field.
func selectMove(src, dst Operand) (uint8, Operand, bool) {
	switch {
	// --- MRMOV: load ---
	case src.Memory && !dst.Memory:
		return cpu.MoveMR, src, true

	// --- RMMOV: store ---
	case !src.Memory && dst.Memory:
		return cpu.MoveRM, dst, true

	// --- IRMOV: immediate ---
	case src.Register.IsNull() && !dst.Memory:
		return cpu.MoveIR, src, true

	// --- RRMOV: register copy, displacement unused ---
	case !src.Memory && !dst.Memory && !src.Register.IsNull() && !dst.Register.IsNull():
		return cpu.MoveRR, src, true
	}
	return 0, Operand{}, false
}
