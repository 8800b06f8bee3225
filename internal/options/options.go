// Package options contains the program options shared by the command line tools.
package options

import "errors"

// ErrOutputConflict is returned when the output file is given both as a flag
// and as a positional argument with different values.
var ErrOutputConflict = errors.New("output file given twice")

// Program options of the assembler and disassembler tools.
type Program struct {
	Input  string
	Output string

	// Listing also writes a listing file next to the object file.
	Listing bool

	Debug bool
	Quiet bool
}

// SetOutput sets the output file from the -o flag or the optional second
// positional argument. Either may be empty.
func (p *Program) SetOutput(flag, positional string) error {
	switch {
	case flag != "" && positional != "" && flag != positional:
		return ErrOutputConflict
	case flag != "":
		p.Output = flag
	default:
		p.Output = positional
	}
	return nil
}
