package assembler

// Statement is one source line after comment stripping.
type Statement struct {
	Line     int
	Labels   []string
	Mnemonic string
	Operands []string
	// Source is the trimmed line without its comment.
	Source string
}

// IsEmpty reports whether the line declares nothing and emits nothing.
func (s *Statement) IsEmpty() bool {
	return len(s.Labels) == 0 && s.Mnemonic == ""
}
