package assembler

import (
	"math"
	"strconv"
	"strings"

	"github.com/Urethramancer/yarn/cpu"
)

// Operand is a parsed instruction operand.
type Operand struct {
	Register cpu.Register
	Value    int64
	Signed   bool
	Memory   bool
	Label    string
	Raw      string

	// HasRegister is set when the operand names a register, %null included.
	HasRegister bool
	// HasValue is set when the operand carries a literal.
	HasValue bool
}

// IsLabel returns true for a :name reference.
func (o *Operand) IsLabel() bool {
	return o.Label != ""
}

// IsRegister returns true for a bare %name.
func (o *Operand) IsRegister() bool {
	return o.HasRegister && !o.HasValue && !o.Memory && !o.IsLabel()
}

// IsLiteral returns true for a bare literal outside a memory wrapper.
func (o *Operand) IsLiteral() bool {
	return o.HasValue && !o.HasRegister && !o.Memory && !o.IsLabel()
}

// Word returns the literal as it is stored in a 4-byte field. Signed values
// are stored as two's complement.
func (o *Operand) Word() uint32 {
	return uint32(o.Value)
}

// --- Operand grammar ---
//
//	operand  := '*' '(' operand ')' | base
//	base     := register [ '+' literal ] | literal | ':' word
//	register := '%' word
//	literal  := [ '-' ] ( '$' [ '-' ] decimal | hex )

type operandParser struct {
	tokens []token
	pos    int
	raw    string
	line   int
}

// parseOperand converts operand text into an Operand.
func parseOperand(s string, line int) (Operand, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Operand{}, newErrorf(line, KindInvalidOperandSyntax, s, "empty operand")
	}

	tokens, err := tokenize(s)
	if err != nil {
		return Operand{}, newErrorf(line, KindInvalidOperandSyntax, s, "%v", err)
	}

	p := &operandParser{tokens: tokens, raw: s, line: line}
	op, err := p.operand()
	if err != nil {
		return Operand{}, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return Operand{}, p.errorf("unexpected %s", t)
	}
	op.Raw = s
	return op, nil
}

func (p *operandParser) peek() token {
	return p.tokens[p.pos]
}

func (p *operandParser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *operandParser) accept(kind tokenKind) bool {
	if p.peek().kind == kind {
		p.pos++
		return true
	}
	return false
}

func (p *operandParser) expect(kind tokenKind, what string) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, p.errorf("expected %s, found %s", what, t)
	}
	return t, nil
}

func (p *operandParser) errorf(format string, args ...any) error {
	return newErrorf(p.line, KindInvalidOperandSyntax, p.raw, format, args...)
}

func (p *operandParser) operand() (Operand, error) {
	if !p.accept(tokStar) {
		return p.base()
	}

	if _, err := p.expect(tokLParen, "'(' after '*'"); err != nil {
		return Operand{}, err
	}
	if p.peek().kind == tokStar {
		return Operand{}, p.errorf("nested memory operand")
	}
	inner, err := p.operand()
	if err != nil {
		return Operand{}, err
	}
	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return Operand{}, err
	}
	inner.Memory = true
	return inner, nil
}

func (p *operandParser) base() (Operand, error) {
	op := Operand{Register: cpu.RegNull}

	switch p.peek().kind {
	case tokPercent:
		reg, err := p.register()
		if err != nil {
			return op, err
		}
		op.Register = reg
		op.HasRegister = true
		if p.accept(tokPlus) {
			if err := p.literal(&op); err != nil {
				return op, err
			}
		}
		return op, nil

	case tokColon:
		p.next()
		t, err := p.expect(tokWord, "label name after ':'")
		if err != nil {
			return op, err
		}
		op.Label = t.text
		return op, nil

	case tokMinus, tokDollar, tokWord:
		err := p.literal(&op)
		return op, err
	}

	return op, p.errorf("unexpected %s", p.peek())
}

func (p *operandParser) register() (cpu.Register, error) {
	p.next() // %
	t, err := p.expect(tokWord, "register name after '%'")
	if err != nil {
		return cpu.RegNull, err
	}
	reg, ok := cpu.LookupRegister(t.text)
	if !ok {
		return cpu.RegNull, newError(p.line, KindUnknownRegister, t.text)
	}
	return reg, nil
}

// literal parses $decimal or 0xhex with an optional minus sign, either before
// the prefix or directly after '$'.
func (p *operandParser) literal(op *Operand) error {
	negative := p.accept(tokMinus)

	var (
		digits string
		base   int
	)
	switch t := p.next(); {
	case t.kind == tokDollar:
		if p.accept(tokMinus) {
			if negative {
				return p.errorf("repeated sign")
			}
			negative = true
		}
		w, err := p.expect(tokWord, "decimal digits after '$'")
		if err != nil {
			return err
		}
		digits, base = w.text, 10

	case t.kind == tokWord && hasHexPrefix(t.text):
		digits, base = t.text[2:], 16

	case t.kind == tokWord && (t.text == "0x" || t.text == "0X"):
		return p.errorf("missing hex digits after %q", t.text)

	default:
		return p.errorf("literal must start with '$' or '0x', found %s", t)
	}

	magnitude, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return p.errorf("malformed number %q", digits)
	}

	if negative {
		if magnitude > -math.MinInt32 {
			return p.errorf("value -%d does not fit a signed 32-bit field", magnitude)
		}
		op.Value = -int64(magnitude)
		op.Signed = true
	} else {
		if magnitude > math.MaxUint32 {
			return p.errorf("value %d does not fit an unsigned 32-bit field", magnitude)
		}
		op.Value = int64(magnitude)
	}
	op.HasValue = true
	return nil
}

func hasHexPrefix(s string) bool {
	return len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// --- Lines ---

// parseLine strips comments and splits a source line into labels, mnemonic
// and raw operand strings.
func parseLine(raw string, line int) (Statement, error) {
	st := Statement{Line: line}
	if i := strings.IndexByte(raw, ';'); i != -1 {
		raw = raw[:i]
	}
	text := strings.TrimSpace(raw)
	st.Source = text

	for text != "" {
		field, rest := splitField(text)
		if !strings.HasSuffix(field, ":") {
			break
		}
		name := strings.TrimSuffix(field, ":")
		if !isIdentifier(name) {
			return st, newErrorf(line, KindInvalidOperandSyntax, field, "invalid label name")
		}
		st.Labels = append(st.Labels, name)
		text = rest
	}
	if text == "" {
		return st, nil
	}

	mnemonic, rest := splitField(text)
	st.Mnemonic = mnemonic
	if rest != "" {
		st.Operands = splitOperands(rest)
	}
	return st, nil
}

// splitField returns the first whitespace-delimited field and the trimmed remainder.
func splitField(s string) (string, string) {
	i := strings.IndexAny(s, " \t")
	if i == -1 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

// splitOperands splits an operand string by commas, but ignores commas inside parentheses.
func splitOperands(s string) []string {
	var result []string
	parenLevel := 0
	last := 0
	for i, r := range s {
		switch r {
		case '(':
			parenLevel++
		case ')':
			parenLevel--
		case ',':
			if parenLevel == 0 {
				result = append(result, strings.TrimSpace(s[last:i]))
				last = i + 1
			}
		}
	}
	result = append(result, strings.TrimSpace(s[last:]))
	return result
}
