package disassembler_test

import (
	"testing"

	"github.com/Urethramancer/yarn/assembler"
	"github.com/Urethramancer/yarn/disassembler"
	"github.com/retroenv/retrogolib/assert"
)

func TestDisassemble(t *testing.T) {
	code := []byte{
		0x20, 0xF4, 0x05, 0x00, 0x00, 0x00, // irmov 0x5, %c1
		0x23, 0x45, 0x10, 0x00, 0x00, 0x00, // rmmov %c1, *(%c2+0x10)
		0x30, 0x40, // push %c1
		0x40, 0x14, 0x00, 0x00, 0x00, // call sub_0014
		0x00,                         // halt
		0x41, 0x00, 0x00, 0x00, 0x00, // ret
	}

	expected := "" +
		"    irmov    0x5, %c1\n" +
		"    rmmov    %c1, *(%c2+0x10)\n" +
		"    push     %c1\n" +
		"    call     :sub_0014\n" +
		"    halt\n" +
		"sub_0014:\n" +
		"    ret\n"

	text, err := disassembler.Disassemble(code)
	assert.NoError(t, err)
	assert.Equal(t, expected, text)
}

func TestDisassembleLabels(t *testing.T) {
	code := []byte{
		0x43, 0x0F, 0x00, 0x00, 0x00, // jif end of code
		0x42, 0x00, 0x00, 0x00, 0x00, // jmp 0
		0x42, 0x03, 0x00, 0x00, 0x00, // jmp inside the first instruction
	}

	expected := "" +
		"L_0000:\n" +
		"    jif      :L_000F\n" +
		"    jmp      :L_0000\n" +
		"    jmp      0x3\n" +
		"L_000F:\n"

	text, err := disassembler.Disassemble(code)
	assert.NoError(t, err)
	assert.Equal(t, expected, text)
}

func TestDisassembleEmpty(t *testing.T) {
	text, err := disassembler.Disassemble(nil)
	assert.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestDisassembleErrors(t *testing.T) {
	_, err := disassembler.Disassemble([]byte{0x02, 0x7F})
	assert.ErrorContains(t, err, "unknown opcode")

	_, err = disassembler.Disassemble([]byte{0x10, 0x12})
	assert.ErrorContains(t, err, "truncated add")
}

// Disassembled source must reassemble to the original bytes.
func TestRoundTrip(t *testing.T) {
	sources := map[string]string{
		"Arith": `
			add %c1, %c2
			sub $-3, %s1
			not %c3+0x8, %c4
			divs 0xFFFFFFFF, %ret`,
		"Moves": `
			mov $7, %c1
			mov *(%stk+$4), %c2
			mov %c2, *(%bse)
			mov %c1, %c2
			rrmov %c1+$4, %c2
			mov *($100), %s1
			rmmov $1, *(%bse+$2)`,
		"Flow": `
			Start:
			push %c1
			lte %c1, %c2
			jif :Out
			call :Fn
			jmp :Start
			syscall 0x1
			Fn:
			pop %c1
			ret 0x2
			ret
			Out:`,
		"Control": `
			nop
			pause
			halt`,
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			code, err := assembler.Assemble(src)
			assert.NoError(t, err)

			text, err := disassembler.Disassemble(code)
			assert.NoError(t, err)

			again, err := assembler.Assemble(text)
			assert.NoError(t, err, text)
			assert.Equal(t, code, again)
		})
	}
}
