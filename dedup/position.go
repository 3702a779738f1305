package dedup

import (
	"github.com/biogo/hts/sam"
)

// ClipMode selects how the leading soft clip is read from a CIGAR string
type ClipMode int

const (
	// ClipFull parses the whole CIGAR string
	ClipFull ClipMode = iota
	// ClipLegacy only looks for an 'S' at offset 1 or 2, so clips longer than 99 are missed
	ClipLegacy
)

// LeadingSoftClip returns the length of the soft clip that opens the alignment, or 0
func LeadingSoftClip(cigar string) int {
	ops, err := sam.ParseCigar([]byte(cigar))
	if err != nil || len(ops) == 0 {
		return 0
	}
	if ops[0].Type() != sam.CigarSoftClipped {
		return 0
	}
	return ops[0].Len()
}

// LegacyLeadingSoftClip reads one or two leading digits followed by 'S'
func LegacyLeadingSoftClip(cigar string) int {
	switch {
	case len(cigar) > 1 && cigar[1] == 'S':
		return digits(cigar[:1])
	case len(cigar) > 2 && cigar[2] == 'S':
		return digits(cigar[:2])
	}
	return 0
}

func digits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0
		}
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// AdjustedPosition as name says, the leftmost position before the leading soft clip
func (r *Record) AdjustedPosition(mode ClipMode) int {
	if mode == ClipLegacy {
		return r.Pos - LegacyLeadingSoftClip(r.Cigar)
	}
	return r.Pos - LeadingSoftClip(r.Cigar)
}
