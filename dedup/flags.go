package dedup

import "github.com/biogo/hts/sam"

// Strand of an alignment, '+' or '-'
type Strand byte

const (
	Forward Strand = '+'
	Reverse Strand = '-'
)

func (s Strand) String() string {
	return string(s)
}

// StrandOf as name says
func StrandOf(flags sam.Flags) Strand {
	if flags&sam.Reverse != 0 {
		return Reverse
	}
	return Forward
}

// Usable is true for mapped primary alignments
func Usable(flags sam.Flags) bool {
	if flags&sam.Unmapped != 0 {
		return false
	}

	if flags&sam.Secondary != 0 {
		return false
	}

	return true
}

// Strand is function that decode the strand from the flag bits
func (r *Record) Strand() Strand {
	return StrandOf(r.Flags)
}

// Usable as name says
func (r *Record) Usable() bool {
	return Usable(r.Flags)
}
