package dedup

import (
	"io"
	"sort"
)

// PairMode is the strategy used to find the two mates of a fragment
type PairMode int

const (
	// PairLexical sorts retained lines and tests neighbours
	PairLexical PairMode = iota
	// PairByName groups retained lines by read name
	PairByName
)

// PairStats counts the outcome of paired-end reconciliation
type PairStats struct {
	Paired   int
	Unpaired int
}

// mates is true when a's position is the next-mate position of b
func mates(a, b Entry) bool {
	return field(a.Line, colPos) == field(b.Line, colNextPos)
}

// WritePaired writes only the retained records whose mate was retained too,
// as two consecutive lines per fragment
func WritePaired(w io.Writer, idx *Index, mode PairMode) (PairStats, error) {
	idx.opts.logger().Info("writing paired end sam formatted records with PCR duplicates removed")

	if mode == PairByName {
		return pairByName(w, idx)
	}
	return pairLexical(w, idx)
}

func (idx *Index) unpaired(e Entry, stats *PairStats) {
	stats.Unpaired++
	idx.opts.logger().Debugf("non paired end@ line%d: could not find the matching pair: %s", e.LineNo, e.Name)
	idx.reject(Rejection{LineNo: e.LineNo, Name: e.Name, Reason: ReasonUnpaired})
}

func writePair(w io.Writer, a, b Entry, stats *PairStats) error {
	if err := writeLine(w, a.Line); err != nil {
		return err
	}
	if err := writeLine(w, b.Line); err != nil {
		return err
	}
	stats.Paired += 2
	return nil
}

func pairLexical(w io.Writer, idx *Index) (PairStats, error) {
	var stats PairStats

	sorted := make([]Entry, len(idx.Entries()))
	copy(sorted, idx.Entries())
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Line != sorted[j].Line {
			return sorted[i].Line < sorted[j].Line
		}
		return sorted[i].MapQ < sorted[j].MapQ
	})

	i := 0
	for i < len(sorted)-1 {
		a, b := sorted[i], sorted[i+1]
		if mates(a, b) {
			if err := writePair(w, a, b, &stats); err != nil {
				return stats, err
			}
			i += 2
			continue
		}
		idx.unpaired(a, &stats)
		i++
	}
	if i == len(sorted)-1 {
		idx.unpaired(sorted[i], &stats)
	}

	return stats, nil
}

func pairByName(w io.Writer, idx *Index) (PairStats, error) {
	var stats PairStats

	groups := make(map[string][]Entry)
	names := make([]string, 0)
	for _, e := range idx.Entries() {
		if _, ok := groups[e.Name]; !ok {
			names = append(names, e.Name)
		}
		groups[e.Name] = append(groups[e.Name], e)
	}
	sort.Strings(names)

	for _, name := range names {
		group := groups[name]
		if len(group) == 2 {
			a, b := group[0], group[1]
			if !mates(a, b) && mates(b, a) {
				a, b = b, a
			}
			if mates(a, b) {
				if err := writePair(w, a, b, &stats); err != nil {
					return stats, err
				}
				continue
			}
		}
		for _, e := range group {
			idx.unpaired(e, &stats)
		}
	}

	return stats, nil
}
