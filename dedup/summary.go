package dedup

import (
	"fmt"
	"strings"
)

// Summary holds the counters of one deduplication run
type Summary struct {
	Processed  int
	Unmapped   int
	Malformed  int
	BadBarcode int
	Duplicates int
	Retained   int

	// paired-end only
	PairedEnd bool
	Paired    int
	Unpaired  int
}

// Fields returns the counters as alternating key/value pairs for structured logging
func (s Summary) Fields() []interface{} {
	fields := []interface{}{
		"processed", s.Processed,
		"unmapped", s.Unmapped,
		"malformed", s.Malformed,
		"badBarcode", s.BadBarcode,
		"duplicates", s.Duplicates,
		"retained", s.Retained,
	}
	if s.PairedEnd {
		fields = append(fields, "paired", s.Paired, "unpaired", s.Unpaired)
	}
	return fields
}

func (s Summary) String() string {
	lines := []string{
		fmt.Sprintf("Total reads processed: %d", s.Processed),
		fmt.Sprintf("Total unmapped or secondary alignments: %d", s.Unmapped),
		fmt.Sprintf("Total malformed lines: %d", s.Malformed),
		fmt.Sprintf("Total unidentified barcodes: %d", s.BadBarcode),
		fmt.Sprintf("Total duplicates removed: %d", s.Duplicates),
	}
	if s.PairedEnd {
		lines = append(lines,
			fmt.Sprintf("Total non paired reads: %d", s.Unpaired),
			fmt.Sprintf("Total P.E reads retained: %d", s.Paired),
		)
	} else {
		lines = append(lines, fmt.Sprintf("Total reads retained: %d", s.Retained))
	}
	return strings.Join(lines, "\n")
}
