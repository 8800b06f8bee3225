package assembler

import (
	"errors"
	"fmt"
)

// Kind classifies an assembly failure.
type Kind int

const (
	// KindUnknownInstruction is an unrecognised mnemonic.
	KindUnknownInstruction Kind = iota
	// KindUnknownRegister is a %name missing from the register table.
	KindUnknownRegister
	// KindInvalidOperandSyntax covers malformed operands, literals and operand counts.
	KindInvalidOperandSyntax
	// KindInvalidMoveOperands is a move whose operand shapes match no move form.
	KindInvalidMoveOperands
	// KindUndefinedLabel is a label referenced but never declared.
	KindUndefinedLabel
	// KindDuplicateLabel is a label declared more than once.
	KindDuplicateLabel
)

// Sentinels returned by Error.Unwrap, for use with errors.Is.
var (
	ErrUnknownInstruction   = errors.New("unknown instruction")
	ErrUnknownRegister      = errors.New("unknown register")
	ErrInvalidOperandSyntax = errors.New("invalid operand syntax")
	ErrInvalidMoveOperands  = errors.New("invalid move operands")
	ErrUndefinedLabel       = errors.New("undefined label")
	ErrDuplicateLabel       = errors.New("duplicate label")
)

var kindErrors = map[Kind]error{
	KindUnknownInstruction:   ErrUnknownInstruction,
	KindUnknownRegister:      ErrUnknownRegister,
	KindInvalidOperandSyntax: ErrInvalidOperandSyntax,
	KindInvalidMoveOperands:  ErrInvalidMoveOperands,
	KindUndefinedLabel:       ErrUndefinedLabel,
	KindDuplicateLabel:       ErrDuplicateLabel,
}

// String returns the kind's description.
func (k Kind) String() string {
	if err, ok := kindErrors[k]; ok {
		return err.Error()
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is the single error type produced by the assembler. Line is 1-based.
type Error struct {
	Line int
	Kind Kind
	// Text is the offending mnemonic, register, operand or label.
	Text string
	// Detail optionally explains what was wrong with Text.
	Detail string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Text)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Unwrap returns the sentinel for the error's kind.
func (e *Error) Unwrap() error {
	return kindErrors[e.Kind]
}

func newError(line int, kind Kind, text string) *Error {
	return &Error{Line: line, Kind: kind, Text: text}
}

func newErrorf(line int, kind Kind, text, format string, args ...any) *Error {
	return &Error{Line: line, Kind: kind, Text: text, Detail: fmt.Sprintf(format, args...)}
}
