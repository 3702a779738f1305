package dedup

import (
	"go.uber.org/zap"
)

// Reason classifies why a record was left out of the output
type Reason int

const (
	ReasonMalformed Reason = iota
	ReasonUnusable
	ReasonBadTag
	ReasonDuplicate
	ReasonUnpaired
)

func (r Reason) String() string {
	switch r {
	case ReasonMalformed:
		return "malformed"
	case ReasonUnusable:
		return "unmapped or secondary alignment"
	case ReasonBadTag:
		return "missing or unknown molecular tag"
	case ReasonDuplicate:
		return "duplicate"
	case ReasonUnpaired:
		return "no matching mate"
	}
	return "unknown"
}

// Rejection describes one record excluded from the output
type Rejection struct {
	LineNo int
	Name   string
	Reason Reason
	Err    error
}

// TagValidator decides whether a molecular tag is a known one
type TagValidator interface {
	Valid(tag string) bool
}

// Options configures a deduplication run
type Options struct {
	// PairedEnd drains the index through the paired-end reconciler
	PairedEnd bool
	// PairMode picks the mate matching strategy in paired-end mode
	PairMode PairMode
	// PreferHighestQuality keeps the colliding record with the highest MAPQ
	PreferHighestQuality bool
	// Validator restricts tags to a known set, nil accepts any tag
	Validator TagValidator
	ClipMode  ClipMode

	Logger   *zap.SugaredLogger
	OnReject func(Rejection)
	Progress func(n int)
}

func (o *Options) logger() *zap.SugaredLogger {
	if o.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return o.Logger
}

// Key groups records that are PCR duplicates of each other
type Key struct {
	Tag    string
	Pos    int
	Strand Strand
	Contig string
}

// Entry is one retained record
type Entry struct {
	Key    Key
	Name   string
	Line   string
	MapQ   int
	LineNo int
}

// Index keeps one record per Key, in first-insertion order
type Index struct {
	opts    Options
	slots   map[Key]int
	entries []Entry
	summary Summary
}

// NewIndex as name says
func NewIndex(opts Options) *Index {
	return &Index{
		opts:  opts,
		slots: make(map[Key]int),
	}
}

func (idx *Index) reject(rej Rejection) {
	if idx.opts.OnReject != nil {
		idx.opts.OnReject(rej)
	}
}

// Add classifies one alignment line and keeps it when it is the best of its key so far
func (idx *Index) Add(lineNo int, line string) {
	idx.summary.Processed++

	record, err := ParseRecord(line)
	if err != nil {
		idx.summary.Malformed++
		idx.reject(Rejection{LineNo: lineNo, Reason: ReasonMalformed, Err: err})
		return
	}

	if !record.Usable() {
		idx.summary.Unmapped++
		idx.reject(Rejection{LineNo: lineNo, Name: record.Name, Reason: ReasonUnusable})
		return
	}

	tag, ok := record.Tag()
	if ok && idx.opts.Validator != nil {
		ok = idx.opts.Validator.Valid(tag)
	}
	if !ok {
		idx.summary.BadBarcode++
		idx.reject(Rejection{LineNo: lineNo, Name: record.Name, Reason: ReasonBadTag})
		return
	}

	key := Key{
		Tag:    tag,
		Pos:    record.AdjustedPosition(idx.opts.ClipMode),
		Strand: record.Strand(),
		Contig: record.Contig,
	}
	entry := Entry{Key: key, Name: record.Name, Line: record.Line, MapQ: record.MapQ, LineNo: lineNo}

	slot, seen := idx.slots[key]
	if !seen {
		idx.slots[key] = len(idx.entries)
		idx.entries = append(idx.entries, entry)
		return
	}

	idx.summary.Duplicates++
	kept := idx.entries[slot]
	if idx.opts.PreferHighestQuality && record.MapQ > kept.MapQ {
		idx.entries[slot] = entry
		idx.reject(Rejection{LineNo: kept.LineNo, Name: kept.Name, Reason: ReasonDuplicate})
		return
	}
	idx.reject(Rejection{LineNo: lineNo, Name: record.Name, Reason: ReasonDuplicate})
}

// Len is the number of retained records
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Entries returns the retained records in first-insertion order.
// The slice is shared with the index and must not be modified.
func (idx *Index) Entries() []Entry {
	return idx.entries
}

// Summary returns a snapshot of the counters
func (idx *Index) Summary() Summary {
	s := idx.summary
	s.Retained = len(idx.entries)
	return s
}
