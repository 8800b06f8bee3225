package cpu

import (
	"fmt"
)

// Decoded holds the fields of one instruction read back from object code.
type Decoded struct {
	Offset    int
	Opcode    byte
	Family    Family
	Function  uint8
	Mnemonic  string
	RegA      Register
	RegB      Register
	Immediate uint32
	Size      int
}

// HasRegisters reports whether the layout carries a register byte.
func (d *Decoded) HasRegisters() bool {
	return d.Family != FamilyControl && d.Family != FamilyBranch
}

// HasImmediate reports whether the layout carries a 4-byte field.
func (d *Decoded) HasImmediate() bool {
	switch d.Family {
	case FamilyArith, FamilyMove, FamilyBranch:
		return true
	}
	return false
}

// Decode reads the instruction starting at offset.
func Decode(code []byte, offset int) (*Decoded, error) {
	if offset < 0 || offset >= len(code) {
		return nil, fmt.Errorf("offset %d outside code of %d bytes", offset, len(code))
	}

	op := code[offset]
	name, ok := Name(op)
	if !ok {
		return nil, fmt.Errorf("unknown opcode 0x%02X at offset %d", op, offset)
	}

	f, fn := SplitOpcode(op)
	d := &Decoded{
		Offset:   offset,
		Opcode:   op,
		Family:   f,
		Function: fn,
		Mnemonic: name,
		RegA:     RegNull,
		RegB:     RegNull,
		Size:     f.Size(),
	}
	if offset+d.Size > len(code) {
		return nil, fmt.Errorf("truncated %s at offset %d: need %d bytes, have %d", name, offset, d.Size, len(code)-offset)
	}

	body := code[offset+1 : offset+d.Size]
	switch f {
	case FamilyControl:
		// opcode only

	case FamilyStack:
		d.RegA, _ = UnpackRegisters(body[0])

	case FamilyConditional:
		d.RegA, d.RegB = UnpackRegisters(body[0])

	case FamilyArith, FamilyMove:
		d.RegA, d.RegB = UnpackRegisters(body[0])
		d.Immediate = Word(body[1:])

	case FamilyBranch:
		d.Immediate = Word(body)
	}
	return d, nil
}
