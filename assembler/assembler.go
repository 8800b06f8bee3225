package assembler

import (
	"strings"

	"github.com/Urethramancer/yarn/cpu"
	"github.com/retroenv/retrogolib/log"
)

// Assembler holds the state for the assembly process.
type Assembler struct {
	logger *log.Logger

	code      []byte
	labels    map[string]uint32
	declared  map[string]int
	pending   []pendingLabel
	fixups    []fixup
	sourceMap map[uint32]int
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger sets the logger used for debug output of label binding and patching.
func WithLogger(logger *log.Logger) Option {
	return func(asm *Assembler) {
		asm.logger = logger
	}
}

// New creates a new Assembler instance.
func New(options ...Option) *Assembler {
	asm := &Assembler{}
	for _, opt := range options {
		opt(asm)
	}
	if asm.logger == nil {
		cfg := log.DefaultConfig()
		cfg.Level = log.ErrorLevel
		asm.logger = log.NewWithConfig(cfg)
	}
	asm.reset(0)
	return asm
}

// Program is the result of a successful assembly run.
type Program struct {
	Code []byte
	// Symbols maps every label to the offset it was bound to.
	Symbols map[string]uint32
	// SourceMap maps the offset of every emitted instruction to its 1-based source line.
	SourceMap map[uint32]int
	// Source holds the comment-stripped source lines, indexed by line-1.
	Source []string
}

// Assemble is a shorthand for New().Assemble(src).
func Assemble(src string) ([]byte, error) {
	return New().Assemble(src)
}

// Assemble takes yarn assembly source and returns the object code.
func (asm *Assembler) Assemble(src string) ([]byte, error) {
	prog, err := asm.AssembleProgram(src)
	if err != nil {
		return nil, err
	}
	return prog.Code, nil
}

// AssembleProgram assembles src in a single forward scan followed by a patch
// pass over unresolved branch targets. Any error aborts the run; no partial
// code is returned.
func (asm *Assembler) AssembleProgram(src string) (*Program, error) {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	asm.reset(len(lines))
	source := make([]string, len(lines))

	for i, raw := range lines {
		st, err := parseLine(raw, i+1)
		if err != nil {
			return nil, err
		}
		source[i] = st.Source
		if st.IsEmpty() {
			continue
		}

		for _, label := range st.Labels {
			if err := asm.declareLabel(label, st.Line); err != nil {
				return nil, err
			}
		}
		if st.Mnemonic == "" {
			continue
		}

		pc := asm.pc()
		asm.bindPending(pc)

		code, err := asm.generateInstructionCode(&st, pc)
		if err != nil {
			return nil, err
		}
		asm.sourceMap[pc] = st.Line
		asm.code = append(asm.code, code...)
	}

	// Labels at the end of the source mark the end of the code.
	asm.bindPending(asm.pc())

	if err := asm.patchFixups(); err != nil {
		return nil, err
	}

	asm.logger.Debug("Assembly finished",
		log.Int("bytes", len(asm.code)),
		log.Int("labels", len(asm.labels)),
		log.Int("fixups", len(asm.fixups)))

	return &Program{
		Code:      asm.code,
		Symbols:   asm.labels,
		SourceMap: asm.sourceMap,
		Source:    source,
	}, nil
}

func (asm *Assembler) reset(lines int) {
	asm.code = make([]byte, 0, lines*2)
	asm.labels = make(map[string]uint32)
	asm.declared = make(map[string]int)
	asm.pending = nil
	asm.fixups = nil
	asm.sourceMap = make(map[uint32]int)
}

func (asm *Assembler) pc() uint32 {
	return uint32(len(asm.code))
}

// generateInstructionCode classifies the mnemonic, parses the operands and
// dispatches to the family encoder.
func (asm *Assembler) generateInstructionCode(st *Statement, pc uint32) ([]byte, error) {
	ins, ok := cpu.LookupInstruction(st.Mnemonic)
	if !ok {
		return nil, newError(st.Line, KindUnknownInstruction, st.Mnemonic)
	}

	operands := make([]Operand, 0, len(st.Operands))
	for _, s := range st.Operands {
		op, err := parseOperand(s, st.Line)
		if err != nil {
			return nil, err
		}
		operands = append(operands, op)
	}

	switch ins.Family {
	case cpu.FamilyControl:
		return assembleControl(ins, operands, st.Line)
	case cpu.FamilyArith:
		return assembleArith(ins, operands, st.Line)
	case cpu.FamilyMove:
		return assembleMove(ins, operands, st.Line)
	case cpu.FamilyStack:
		return assembleStack(ins, operands, st.Line)
	case cpu.FamilyBranch:
		return asm.assembleBranch(ins, operands, st.Line, pc)
	case cpu.FamilyConditional:
		return assembleConditional(ins, operands, st.Line)
	default:
		return nil, newErrorf(st.Line, KindUnknownInstruction, st.Mnemonic, "no encoder for family %s", ins.Family)
	}
}
