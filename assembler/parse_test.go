package assembler

import (
	"errors"
	"testing"

	"github.com/Urethramancer/yarn/cpu"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseOperand(t *testing.T) {
	tests := []struct {
		input    string
		register cpu.Register
		value    int64
		signed   bool
		memory   bool
		label    string
		isReg    bool
		isLit    bool
	}{
		{input: "%c1", register: cpu.RegC1, isReg: true},
		{input: "%S5", register: cpu.RegS5, isReg: true},
		{input: "%null", register: cpu.RegNull, isReg: true},
		{input: "$10", register: cpu.RegNull, value: 10, isLit: true},
		{input: "0x1F", register: cpu.RegNull, value: 0x1F, isLit: true},
		{input: "0Xff", register: cpu.RegNull, value: 0xFF, isLit: true},
		{input: "-$5", register: cpu.RegNull, value: -5, signed: true, isLit: true},
		{input: "$-5", register: cpu.RegNull, value: -5, signed: true, isLit: true},
		{input: "-0x10", register: cpu.RegNull, value: -16, signed: true, isLit: true},
		{input: "$4294967295", register: cpu.RegNull, value: 4294967295, isLit: true},
		{input: "-$2147483648", register: cpu.RegNull, value: -2147483648, signed: true, isLit: true},
		{input: "%stk+$8", register: cpu.RegStack, value: 8},
		{input: "*(%bse)", register: cpu.RegBase, memory: true},
		{input: "*( %bse + 0x4 )", register: cpu.RegBase, value: 4, memory: true},
		{input: "*($100)", register: cpu.RegNull, value: 100, memory: true},
		{input: ":Loop", register: cpu.RegNull, label: "Loop"},
		{input: ":loop_2", register: cpu.RegNull, label: "loop_2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			op, err := parseOperand(tt.input, 1)
			assert.NoError(t, err)
			assert.Equal(t, tt.register, op.Register)
			assert.Equal(t, tt.value, op.Value)
			assert.Equal(t, tt.signed, op.Signed)
			assert.Equal(t, tt.memory, op.Memory)
			assert.Equal(t, tt.label, op.Label)
			assert.Equal(t, tt.isReg, op.IsRegister())
			assert.Equal(t, tt.isLit, op.IsLiteral())
		})
	}
}

func TestParseOperandErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"", KindInvalidOperandSyntax},
		{"%", KindInvalidOperandSyntax},
		{"%r9", KindUnknownRegister},
		{"10", KindInvalidOperandSyntax},
		{"$", KindInvalidOperandSyntax},
		{"$12ab", KindInvalidOperandSyntax},
		{"0xZZ", KindInvalidOperandSyntax},
		{"$4294967296", KindInvalidOperandSyntax},
		{"-$2147483649", KindInvalidOperandSyntax},
		{"-$-1", KindInvalidOperandSyntax},
		{"*(*(%c1))", KindInvalidOperandSyntax},
		{"*(%c1", KindInvalidOperandSyntax},
		{"*%c1", KindInvalidOperandSyntax},
		{"%c1+", KindInvalidOperandSyntax},
		{"%c1 %c2", KindInvalidOperandSyntax},
		{":", KindInvalidOperandSyntax},
		{"#5", KindInvalidOperandSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parseOperand(tt.input, 7)
			assert.Error(t, err)

			var asmErr *Error
			assert.True(t, errors.As(err, &asmErr))
			assert.Equal(t, tt.kind, asmErr.Kind)
			assert.Equal(t, 7, asmErr.Line)
		})
	}
}

func TestOperandWord(t *testing.T) {
	op, err := parseOperand("-$1", 1)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xFFFFFFFF), op.Word())

	op, err = parseOperand("0xDEADBEEF", 1)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), op.Word())
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		labels   []string
		mnemonic string
		operands []string
	}{
		{name: "Blank", input: "   "},
		{name: "CommentOnly", input: "  ; nothing here"},
		{name: "LabelOnly", input: "Start:", labels: []string{"Start"}},
		{name: "TwoLabels", input: "A: B:", labels: []string{"A", "B"}},
		{name: "LabelAndInstruction", input: "Loop: nop", labels: []string{"Loop"}, mnemonic: "nop"},
		{name: "NoOperands", input: "\thalt ; stop", mnemonic: "halt"},
		{
			name:     "TwoOperands",
			input:    "add  $1 , %c1",
			mnemonic: "add",
			operands: []string{"$1", "%c1"},
		},
		{
			name:     "MemoryOperand",
			input:    "mov *(%stk + $4), %c2",
			mnemonic: "mov",
			operands: []string{"*(%stk + $4)", "%c2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := parseLine(tt.input, 3)
			assert.NoError(t, err)
			assert.Equal(t, 3, st.Line)
			assert.Equal(t, len(tt.labels), len(st.Labels))
			for i, l := range tt.labels {
				assert.Equal(t, l, st.Labels[i])
			}
			assert.Equal(t, tt.mnemonic, st.Mnemonic)
			assert.Equal(t, len(tt.operands), len(st.Operands))
			for i, op := range tt.operands {
				assert.Equal(t, op, st.Operands[i])
			}
		})
	}
}

func TestParseLineInvalidLabel(t *testing.T) {
	_, err := parseLine("bad-label: nop", 4)
	assert.True(t, errors.Is(err, ErrInvalidOperandSyntax))
}

func TestSplitOperands(t *testing.T) {
	got := splitOperands("*(%c1 + $4), %c2")
	assert.Len(t, got, 2)
	assert.Equal(t, "*(%c1 + $4)", got[0])
	assert.Equal(t, "%c2", got[1])

	got = splitOperands("%c1")
	assert.Len(t, got, 1)
}

func TestTokenize(t *testing.T) {
	tokens, err := tokenize("*(%c1+$4)")
	assert.NoError(t, err)
	kinds := []tokenKind{tokStar, tokLParen, tokPercent, tokWord, tokPlus, tokDollar, tokWord, tokRParen, tokEOF}
	assert.Len(t, tokens, len(kinds))
	for i, k := range kinds {
		assert.Equal(t, k, tokens[i].kind)
	}

	_, err = tokenize("%c1 & 3")
	assert.ErrorContains(t, err, "unexpected character")
}

func TestParseOperandErrorDetail(t *testing.T) {
	tests := []struct {
		input  string
		detail string
	}{
		{"%c1 %c2", `unexpected "%" at column 5`},
		{"*(%c1 $4)", `expected ')', found "$" at column 7`},
		{"0x", `missing hex digits after "0x"`},
		{"-0X", `missing hex digits after "0X"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parseOperand(tt.input, 1)
			var asmErr *Error
			assert.True(t, errors.As(err, &asmErr))
			assert.Equal(t, tt.detail, asmErr.Detail)
		})
	}
}
