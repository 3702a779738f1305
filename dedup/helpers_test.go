package dedup

import (
	"fmt"
	"strings"
)

// samLine builds an alignment line with the mandatory eleven columns
func samLine(name string, flag int, contig string, pos, mapQ int, cigar string, nextPos int) string {
	return strings.Join([]string{
		name,
		fmt.Sprintf("%d", flag),
		contig,
		fmt.Sprintf("%d", pos),
		fmt.Sprintf("%d", mapQ),
		cigar,
		"=",
		fmt.Sprintf("%d", nextPos),
		"0",
		"ACGTACGTAC",
		"IIIIIIIIII",
	}, "\t")
}

type tagList map[string]bool

func (t tagList) Valid(tag string) bool {
	return t[tag]
}

func retainedLines(idx *Index) []string {
	lines := make([]string, 0, idx.Len())
	for _, e := range idx.Entries() {
		lines = append(lines, e.Line)
	}
	return lines
}
