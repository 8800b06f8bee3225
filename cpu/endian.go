package cpu

import (
	"encoding/binary"
)

// WordSize is the width in bytes of immediate, displacement and target fields.
const WordSize = 4

// PutWord stores v little-endian in the first four bytes of b.
func PutWord(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

// AppendWord appends v little-endian to b.
func AppendWord(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}

// Word reads a little-endian 32-bit field from the start of b.
func Word(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// PackRegisters builds the register byte, rA in the high nibble.
func PackRegisters(a, b Register) byte {
	return byte(a&0x0F)<<4 | byte(b&0x0F)
}

// UnpackRegisters splits a register byte into rA and rB.
func UnpackRegisters(v byte) (Register, Register) {
	return Register(v >> 4), Register(v & 0x0F)
}
