package disassembler

import (
	"github.com/Urethramancer/yarn/cpu"
)

// LabelType defines the context of a label.
type LabelType int

const (
	// JumpTarget is the target of jmp or jif.
	JumpTarget LabelType = iota
	// SubroutineEntry is the target of call.
	SubroutineEntry
)

// Instruction represents a single decoded instruction at a specific address.
type Instruction struct {
	*cpu.Decoded
	Operands string
}

// branchTarget returns the address a branch transfers control to. ret and
// syscall carry a count and a call number, not an address.
func branchTarget(d *cpu.Decoded) (uint32, LabelType, bool) {
	if d.Family != cpu.FamilyBranch {
		return 0, 0, false
	}
	switch d.Function {
	case cpu.BranchCall:
		return d.Immediate, SubroutineEntry, true
	case cpu.BranchJump, cpu.BranchJumpIf:
		return d.Immediate, JumpTarget, true
	}
	return 0, 0, false
}
