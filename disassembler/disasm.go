// Package disassembler turns yarn object code back into assembly source that
// the assembler package accepts.
package disassembler
