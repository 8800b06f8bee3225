package assembler

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// WriteListing writes one line per source line: the offset and bytes of the
// instruction emitted for it, followed by the source text.
func (p *Program) WriteListing(w io.Writer) error {
	offsets := make([]uint32, 0, len(p.SourceMap))
	for offset := range p.SourceMap {
		offsets = append(offsets, offset)
	}
	sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })

	byLine := make(map[int][2]uint32, len(offsets))
	for i, start := range offsets {
		end := uint32(len(p.Code))
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		byLine[p.SourceMap[start]] = [2]uint32{start, end}
	}

	for i, text := range p.Source {
		var err error
		if span, ok := byLine[i+1]; ok {
			_, err = fmt.Fprintf(w, "%04X  %-17s  %s\n", span[0], hexBytes(p.Code[span[0]:span[1]]), text)
		} else if text != "" {
			_, err = fmt.Fprintf(w, "%4s  %-17s  %s\n", "", "", text)
		}
		if err != nil {
			return fmt.Errorf("writing listing line %d: %w", i+1, err)
		}
	}
	return nil
}

func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02X", v)
	}
	return strings.Join(parts, " ")
}
