package cpu

import "strings"

// Register is a 4-bit register code.
type Register uint8

// Register codes (4-bit register field)
const (
	// Special registers
	RegInstruction Register = 0x0 // %ins
	RegStack       Register = 0x1 // %stk
	RegBase        Register = 0x2 // %bse
	RegReturn      Register = 0x3 // %ret

	// Callee save registers
	RegC1 Register = 0x4
	RegC2 Register = 0x5
	RegC3 Register = 0x6
	RegC4 Register = 0x7
	RegC5 Register = 0x8
	RegC6 Register = 0x9

	// Caller (scratch) save registers
	RegS1 Register = 0xA
	RegS2 Register = 0xB
	RegS3 Register = 0xC
	RegS4 Register = 0xD
	RegS5 Register = 0xE

	// RegNull marks an operand slot that carries no register.
	RegNull Register = 0xF
)

// NumRegisters is the size of the register field's value space.
const NumRegisters = 16

var registerNames = [NumRegisters]string{
	"ins", "stk", "bse", "ret",
	"c1", "c2", "c3", "c4", "c5", "c6",
	"s1", "s2", "s3", "s4", "s5",
	"null",
}

var registersByName = func() map[string]Register {
	m := make(map[string]Register, NumRegisters)
	for i, name := range registerNames {
		m[name] = Register(i)
	}
	return m
}()

// LookupRegister returns the register code for a name without the leading %.
// Names are matched case-insensitively.
func LookupRegister(name string) (Register, bool) {
	r, ok := registersByName[strings.ToLower(name)]
	return r, ok
}

// String returns the register name without the leading %.
func (r Register) String() string {
	if int(r) < NumRegisters {
		return registerNames[r]
	}
	return "invalid"
}

// IsNull reports whether r is the absent-register sentinel.
func (r Register) IsNull() bool { return r == RegNull }
