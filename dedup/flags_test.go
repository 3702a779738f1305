package dedup

import (
	"testing"

	"github.com/biogo/hts/sam"
	"github.com/stretchr/testify/assert"
)

func TestStrandOf(t *testing.T) {
	assert.Equal(t, Forward, StrandOf(0))
	assert.Equal(t, Reverse, StrandOf(sam.Reverse))
	assert.Equal(t, Forward, StrandOf(sam.Paired|sam.ProperPair|sam.MateReverse|sam.Read1)) // 99
	assert.Equal(t, Reverse, StrandOf(sam.Paired|sam.ProperPair|sam.Reverse|sam.Read2))     // 147
	assert.Equal(t, "-", Reverse.String())
}

func TestUsable(t *testing.T) {
	tests := []struct {
		flags sam.Flags
		want  bool
	}{
		{0, true},
		{sam.Reverse, true},
		{sam.Supplementary, true},
		{sam.Unmapped, false},
		{sam.Secondary, false},
		{sam.Secondary | sam.Reverse, false},
		{sam.Unmapped | sam.Secondary, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Usable(tt.flags), "flags %d", tt.flags)
	}
}
