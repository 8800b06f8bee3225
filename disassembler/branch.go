package disassembler

import (
	"github.com/Urethramancer/yarn/cpu"
)

// decodeBranch renders a branch target as a label reference when one exists
// for the address, and as a literal otherwise. A zero ret count is omitted.
func decodeBranch(d *cpu.Decoded, labels map[uint32]LabelType) string {
	if target, _, ok := branchTarget(d); ok {
		if t, exists := labels[target]; exists {
			return ":" + labelName(target, t)
		}
		return formatLiteral(target)
	}
	if d.Function == cpu.BranchRet && d.Immediate == 0 {
		return ""
	}
	return formatLiteral(d.Immediate)
}
