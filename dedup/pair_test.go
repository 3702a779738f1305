package dedup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outputLines(buf *bytes.Buffer) []string {
	out := strings.TrimSuffix(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func pairedIndex(opts Options) *Index {
	idx := NewIndex(opts)
	lines := []string{
		samLine("frag1:AAGCTC", 99, "chr1", 100, 60, "50M", 300),
		samLine("frag2:AAGCTC", 99, "chr1", 150, 60, "50M", 400),
		samLine("frag1:AAGCTC", 147, "chr1", 300, 60, "50M", 100),
		samLine("lonely:AAGCTC", 99, "chr1", 350, 60, "50M", 900),
		samLine("frag2:AAGCTC", 147, "chr1", 400, 60, "50M", 150),
	}
	for i, line := range lines {
		idx.Add(i+1, line)
	}
	return idx
}

func assertPairs(t *testing.T, lines []string) {
	require.Equal(t, 0, len(lines)%2, "paired output has an odd number of lines")
	for i := 0; i < len(lines); i += 2 {
		assert.Equal(t, field(lines[i], colPos), field(lines[i+1], colNextPos))
	}
}

func TestWritePairedLexical(t *testing.T) {
	var unpaired []string
	idx := pairedIndex(Options{OnReject: func(r Rejection) {
		if r.Reason == ReasonUnpaired {
			unpaired = append(unpaired, r.Name)
		}
	}})

	var buf bytes.Buffer
	stats, err := WritePaired(&buf, idx, PairLexical)
	require.NoError(t, err)

	lines := outputLines(&buf)
	assertPairs(t, lines)
	assert.Equal(t, 4, stats.Paired)
	assert.Equal(t, 1, stats.Unpaired)
	assert.Equal(t, []string{"lonely:AAGCTC"}, unpaired)

	// mates sort next to each other, the reverse mate ("147") first
	require.Len(t, lines, 4)
	assert.Equal(t, "300", field(lines[0], colPos))
	assert.Equal(t, "300", field(lines[1], colNextPos))
}

func TestWritePairedLexicalTrailingEntry(t *testing.T) {
	idx := NewIndex(Options{})
	idx.Add(1, samLine("a:AAGCTC", 147, "chr1", 300, 60, "50M", 100))
	idx.Add(2, samLine("a:AAGCTC", 99, "chr1", 100, 60, "50M", 300))
	idx.Add(3, samLine("z:AAGCTC", 99, "chr1", 500, 60, "50M", 700))

	var buf bytes.Buffer
	stats, err := WritePaired(&buf, idx, PairLexical)
	require.NoError(t, err)
	assert.Equal(t, PairStats{Paired: 2, Unpaired: 1}, stats)
	assert.Len(t, outputLines(&buf), 2)
}

func TestWritePairedLexicalNeighbourMismatch(t *testing.T) {
	// the heuristic only tests neighbours, so a mate separated by another
	// read's line is lost
	idx := NewIndex(Options{})
	idx.Add(1, samLine("a:AAGCTC", 147, "chr1", 300, 60, "50M", 100))
	idx.Add(2, samLine("a:AAGCTC", 163, "chr1", 120, 60, "50M", 900))
	idx.Add(3, samLine("a:AAGCTC", 99, "chr1", 100, 60, "50M", 300))

	var buf bytes.Buffer
	stats, err := WritePaired(&buf, idx, PairLexical)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Paired)
	assert.Equal(t, 3, stats.Unpaired)
	assert.Empty(t, outputLines(&buf))
}

func TestWritePairedByName(t *testing.T) {
	idx := pairedIndex(Options{})

	var buf bytes.Buffer
	stats, err := WritePaired(&buf, idx, PairByName)
	require.NoError(t, err)

	lines := outputLines(&buf)
	assertPairs(t, lines)
	assert.Equal(t, PairStats{Paired: 4, Unpaired: 1}, stats)

	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "frag1:AAGCTC\t"))
	assert.True(t, strings.HasPrefix(lines[2], "frag2:AAGCTC\t"))
}

func TestWritePairedByNameRejectsCrossedMates(t *testing.T) {
	idx := NewIndex(Options{})
	idx.Add(1, samLine("a:AAGCTC", 99, "chr1", 100, 60, "50M", 300))
	idx.Add(2, samLine("a:AAGCTC", 147, "chr1", 310, 60, "50M", 110))
	idx.Add(3, samLine("b:AAGCTC", 99, "chr1", 200, 60, "50M", 400))
	idx.Add(4, samLine("b:AAGCTC", 147, "chr1", 400, 60, "50M", 200))
	idx.Add(5, samLine("b:AAGCTC", 147, "chr1", 450, 60, "50M", 200))

	var buf bytes.Buffer
	stats, err := WritePaired(&buf, idx, PairByName)
	require.NoError(t, err)
	assert.Equal(t, PairStats{Paired: 0, Unpaired: 5}, stats)
	assert.Empty(t, outputLines(&buf))
}
