package disassembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/yarn/cpu"
)

// Disassemble performs a linear sweep over yarn object code and returns
// assembly source. Branch targets that fall on an instruction boundary are
// given labels so the output reassembles to the same bytes.
func Disassemble(code []byte) (string, error) {
	if len(code) == 0 {
		return "", nil
	}

	// --- STAGE 1: Linear Sweep ---
	var instructions []*Instruction
	boundaries := make(map[uint32]bool)
	for pc := 0; pc < len(code); {
		d, err := cpu.Decode(code, pc)
		if err != nil {
			return "", fmt.Errorf("decoding: %w", err)
		}
		instructions = append(instructions, &Instruction{Decoded: d})
		boundaries[uint32(pc)] = true
		pc += d.Size
	}
	// A label may point just past the last instruction.
	boundaries[uint32(len(code))] = true

	// --- STAGE 2: Branch Targets ---
	labels := make(map[uint32]LabelType)
	for _, inst := range instructions {
		target, t, ok := branchTarget(inst.Decoded)
		if !ok || !boundaries[target] {
			continue
		}
		if existing, exists := labels[target]; !exists || existing == JumpTarget {
			labels[target] = t
		}
	}

	// --- STAGE 3: Render Final Output ---
	var out strings.Builder
	for _, inst := range instructions {
		if t, exists := labels[uint32(inst.Offset)]; exists {
			fmt.Fprintf(&out, "%s:\n", labelName(uint32(inst.Offset), t))
		}
		inst.Operands = decodeOperands(inst.Decoded, labels)
		if inst.Operands != "" {
			fmt.Fprintf(&out, "    %-8s %s\n", inst.Mnemonic, inst.Operands)
		} else {
			fmt.Fprintf(&out, "    %s\n", inst.Mnemonic)
		}
	}
	if t, exists := labels[uint32(len(code))]; exists {
		fmt.Fprintf(&out, "%s:\n", labelName(uint32(len(code)), t))
	}

	return out.String(), nil
}

// decodeOperands dispatches to the family formatter.
func decodeOperands(d *cpu.Decoded, labels map[uint32]LabelType) string {
	switch d.Family {
	case cpu.FamilyArith:
		return decodeArith(d)
	case cpu.FamilyMove:
		return decodeMove(d)
	case cpu.FamilyStack:
		return decodeStack(d)
	case cpu.FamilyBranch:
		return decodeBranch(d, labels)
	case cpu.FamilyConditional:
		return decodeConditional(d)
	}
	return ""
}
