package cpu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLookupInstruction(t *testing.T) {
	tests := []struct {
		mnemonic string
		opcode   byte
		size     int
	}{
		{"halt", 0x00, 1},
		{"NOP", 0x02, 1},
		{"add", 0x10, 6},
		{"not", 0x1B, 6},
		{"irmov", 0x20, 6},
		{"RMMOV", 0x23, 6},
		{"push", 0x30, 2},
		{"pop", 0x31, 2},
		{"call", 0x40, 5},
		{"jmp", 0x42, 5},
		{"syscall", 0x44, 5},
		{"lt", 0x50, 2},
		{"neq", 0x55, 2},
	}

	for _, tt := range tests {
		t.Run(tt.mnemonic, func(t *testing.T) {
			ins, ok := LookupInstruction(tt.mnemonic)
			assert.True(t, ok)
			assert.Equal(t, tt.opcode, ins.Opcode())
			assert.Equal(t, tt.size, ins.Family.Size())
			assert.False(t, ins.Dynamic)
		})
	}

	_, ok := LookupInstruction("movl")
	assert.False(t, ok)

	mov, ok := LookupInstruction("MOV")
	assert.True(t, ok)
	assert.True(t, mov.Dynamic)
	assert.Equal(t, FamilyMove, mov.Family)
}

func TestOpcodeNameRoundTrip(t *testing.T) {
	for f, names := range functions {
		for fn, name := range names {
			op := Opcode(Family(f), uint8(fn))
			got, ok := Name(op)
			assert.True(t, ok)
			assert.Equal(t, name, got)

			family, function := SplitOpcode(op)
			assert.Equal(t, Family(f), family)
			assert.Equal(t, uint8(fn), function)
		}
	}

	for _, op := range []byte{0x03, 0x1C, 0x24, 0x32, 0x45, 0x56, 0x60, 0xFF} {
		_, ok := Name(op)
		assert.False(t, ok)
	}
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "branch", FamilyBranch.String())
	assert.Equal(t, "family(9)", Family(9).String())
	assert.Equal(t, 0, Family(9).Size())
}

func TestRegisters(t *testing.T) {
	for i := range NumRegisters {
		r := Register(i)
		got, ok := LookupRegister(r.String())
		assert.True(t, ok)
		assert.Equal(t, r, got)
	}

	r, ok := LookupRegister("BSE")
	assert.True(t, ok)
	assert.Equal(t, RegBase, r)

	_, ok = LookupRegister("r1")
	assert.False(t, ok)

	assert.True(t, RegNull.IsNull())
	assert.False(t, RegInstruction.IsNull())
	assert.Equal(t, "invalid", Register(16).String())
}

func TestRegisterPacking(t *testing.T) {
	b := PackRegisters(RegC1, RegS5)
	assert.Equal(t, byte(0x4E), b)

	a, c := UnpackRegisters(b)
	assert.Equal(t, RegC1, a)
	assert.Equal(t, RegS5, c)
}

func TestWord(t *testing.T) {
	b := AppendWord([]byte{0xAA}, 0x12345678)
	assert.Equal(t, []byte{0xAA, 0x78, 0x56, 0x34, 0x12}, b)
	assert.Equal(t, uint32(0x12345678), Word(b[1:]))

	PutWord(b[1:], 0xFFFFFFFE)
	assert.Equal(t, []byte{0xAA, 0xFE, 0xFF, 0xFF, 0xFF}, b)
}
