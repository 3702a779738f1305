// Package dedup removes PCR duplicates from a coordinate sorted SAM text stream.
//
// Two alignments are duplicates when they share the molecular tag found at the
// end of the read name, the leftmost position adjusted for a leading soft clip,
// the strand and the reference contig. One record per key is kept in memory, so
// the footprint grows with the number of distinct retained keys rather than with
// the size of the input.
package dedup
