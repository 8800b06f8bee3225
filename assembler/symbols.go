package assembler

import (
	"github.com/Urethramancer/yarn/cpu"
	"github.com/retroenv/retrogolib/log"
)

// pendingLabel is a label seen in the source but not yet bound to an offset.
type pendingLabel struct {
	name string
	line int
}

// fixup is a 4-byte branch target slot waiting for its label.
type fixup struct {
	offset int
	label  string
	line   int
}

// declareLabel queues a label for binding to the next emitted instruction.
// Consecutive labels all bind to the same offset.
func (asm *Assembler) declareLabel(name string, line int) error {
	if first, ok := asm.declared[name]; ok {
		return newErrorf(line, KindDuplicateLabel, name, "first declared on line %d", first)
	}
	asm.declared[name] = line
	asm.pending = append(asm.pending, pendingLabel{name: name, line: line})
	return nil
}

// bindPending binds every queued label to offset and clears the queue.
func (asm *Assembler) bindPending(offset uint32) {
	for _, p := range asm.pending {
		asm.labels[p.name] = offset
		asm.logger.Debug("Label bound",
			log.String("label", p.name),
			log.Hex("offset", offset),
			log.Int("line", p.line))
	}
	asm.pending = asm.pending[:0]
}

// resolveTarget returns the target for a branch label. Unknown labels get a
// zero placeholder and a fixup for the 4-byte field at slot.
func (asm *Assembler) resolveTarget(label string, slot int, line int) uint32 {
	if target, ok := asm.labels[label]; ok {
		return target
	}
	asm.fixups = append(asm.fixups, fixup{offset: slot, label: label, line: line})
	asm.logger.Debug("Forward reference",
		log.String("label", label),
		log.Hex("slot", slot),
		log.Int("line", line))
	return 0
}

// patchFixups writes the bound offset of every forward reference into its
// placeholder. The first unbound label fails the whole run.
func (asm *Assembler) patchFixups() error {
	for _, f := range asm.fixups {
		target, ok := asm.labels[f.label]
		if !ok {
			return newError(f.line, KindUndefinedLabel, f.label)
		}
		cpu.PutWord(asm.code[f.offset:f.offset+cpu.WordSize], target)
		asm.logger.Debug("Fixup patched",
			log.String("label", f.label),
			log.Hex("slot", f.offset),
			log.Hex("target", target))
	}
	return nil
}
