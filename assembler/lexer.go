package assembler

import (
	"fmt"
	"unicode"
)

type tokenKind int

const (
	tokEOF     tokenKind = iota
	tokStar              // *
	tokLParen            // (
	tokRParen            // )
	tokPlus              // +
	tokMinus             // -
	tokPercent           // %
	tokColon             // :
	tokDollar            // $
	tokWord              // identifier or number body
)

var punctuation = map[rune]tokenKind{
	'*': tokStar,
	'(': tokLParen,
	')': tokRParen,
	'+': tokPlus,
	'-': tokMinus,
	'%': tokPercent,
	':': tokColon,
	'$': tokDollar,
}

type token struct {
	kind tokenKind
	text string
	pos  int // rune offset in the operand text
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of operand"
	}
	return fmt.Sprintf("%q at column %d", t.text, t.pos+1)
}

// tokenize splits operand text into tokens. Whitespace separates tokens and is
// otherwise ignored.
func tokenize(s string) ([]token, error) {
	var tokens []token
	runes := []rune(s)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++

		case isWordRune(r):
			start := i
			for i < len(runes) && isWordRune(runes[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokWord, text: string(runes[start:i]), pos: start})

		default:
			kind, ok := punctuation[r]
			if !ok {
				return nil, fmt.Errorf("unexpected character %q at column %d", r, i+1)
			}
			tokens = append(tokens, token{kind: kind, text: string(r), pos: i})
			i++
		}
	}
	return append(tokens, token{kind: tokEOF, pos: len(runes)}), nil
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isIdentifier reports whether s is a non-empty run of word characters.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isWordRune(r) {
			return false
		}
	}
	return true
}
