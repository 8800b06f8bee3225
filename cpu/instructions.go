package cpu

import (
	"fmt"
	"strings"
)

// Family is the 4-bit icode in the high nibble of every opcode.
type Family uint8

const (
	// FamilyControl holds halt, pause and nop.
	FamilyControl Family = iota
	// FamilyArith holds two-register arithmetic and logic with an immediate.
	FamilyArith
	// FamilyMove holds the four move forms.
	FamilyMove
	// FamilyStack holds push and pop.
	FamilyStack
	// FamilyBranch holds call, ret, jumps and syscall.
	FamilyBranch
	// FamilyConditional holds the register comparisons.
	FamilyConditional

	numFamilies
)

var familyNames = [numFamilies]string{
	"control", "arith", "move", "stack", "branch", "conditional",
}

// String returns the family name.
func (f Family) String() string {
	if f < numFamilies {
		return familyNames[f]
	}
	return fmt.Sprintf("family(%d)", uint8(f))
}

// Size returns the encoded length in bytes of every instruction in the family.
func (f Family) Size() int {
	switch f {
	case FamilyControl:
		return 1
	case FamilyStack, FamilyConditional:
		return 2
	case FamilyBranch:
		return 5
	case FamilyArith, FamilyMove:
		return 6
	}
	return 0
}

// functions lists the sub-opcodes of every family. The position of a mnemonic
// in its list is its ifun value.
var functions = [numFamilies][]string{
	FamilyControl:     {"halt", "pause", "nop"},
	FamilyArith:       {"add", "sub", "mul", "div", "divs", "lsh", "rsh", "rshs", "and", "or", "xor", "not"},
	FamilyMove:        {"irmov", "mrmov", "rrmov", "rmmov"},
	FamilyStack:       {"push", "pop"},
	FamilyBranch:      {"call", "ret", "jmp", "jif", "syscall"},
	FamilyConditional: {"lt", "lts", "lte", "ltes", "eq", "neq"},
}

// Move sub-opcodes.
const (
	MoveIR uint8 = iota // immediate -> register
	MoveMR              // memory -> register
	MoveRR              // register -> register
	MoveRM              // register -> memory
)

// Branch sub-opcodes.
const (
	BranchCall uint8 = iota
	BranchRet
	BranchJump
	BranchJumpIf
	BranchSyscall
)

// Instruction is one entry of the mnemonic table.
type Instruction struct {
	Mnemonic string
	Family   Family
	Function uint8
	// Dynamic is set for mnemonics whose function is chosen from the operands.
	Dynamic bool
}

// Opcode returns the encoded opcode byte.
func (i Instruction) Opcode() byte {
	return Opcode(i.Family, i.Function)
}

// Opcode combines a family and sub-opcode into an opcode byte.
func Opcode(f Family, fn uint8) byte {
	return byte(f)<<4 | fn&0x0F
}

// SplitOpcode returns the family and sub-opcode of an opcode byte.
func SplitOpcode(op byte) (Family, uint8) {
	return Family(op >> 4), op & 0x0F
}

// MoveAlias is the move mnemonic that leaves sub-opcode selection to the operands.
const MoveAlias = "mov"

var instructions = func() map[string]Instruction {
	m := make(map[string]Instruction)
	for f, names := range functions {
		for fn, name := range names {
			m[name] = Instruction{Mnemonic: name, Family: Family(f), Function: uint8(fn)}
		}
	}
	m[MoveAlias] = Instruction{Mnemonic: MoveAlias, Family: FamilyMove, Dynamic: true}
	return m
}()

// LookupInstruction finds a mnemonic in the instruction table, case-insensitively.
func LookupInstruction(mnemonic string) (Instruction, bool) {
	ins, ok := instructions[strings.ToLower(mnemonic)]
	return ins, ok
}

// Name returns the mnemonic for an opcode byte.
func Name(op byte) (string, bool) {
	f, fn := SplitOpcode(op)
	if f >= numFamilies || int(fn) >= len(functions[f]) {
		return "", false
	}
	return functions[f][fn], true
}
