package dedup

import (
	"strconv"
	"strings"

	"github.com/biogo/hts/sam"
	"github.com/pkg/errors"
)

// ErrMalformed is returned for lines that cannot be read as alignment records
var ErrMalformed = errors.New("malformed alignment record")

// mandatory SAM columns
const (
	colName = iota
	colFlag
	colContig
	colPos
	colMapQ
	colCigar
	colNextContig
	colNextPos
	colTLen
	colSeq
	colQual

	mandatoryColumns
)

// tagSeparator delimits the molecular tag at the end of the read name
const tagSeparator = ":"

// Record is the subset of one SAM line needed for deduplication
type Record struct {
	Name    string
	Flags   sam.Flags
	Contig  string
	Pos     int
	MapQ    int
	Cigar   string
	NextPos string
	Line    string
}

// ParseRecord is function that split one tab-delimited alignment line into Record
func ParseRecord(line string) (*Record, error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, "\t")
	if len(fields) < mandatoryColumns {
		return nil, errors.Wrapf(ErrMalformed, "expected %d columns, got %d", mandatoryColumns, len(fields))
	}

	flag, err := strconv.ParseUint(fields[colFlag], 10, 16)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "flag %q", fields[colFlag])
	}

	pos, err := strconv.Atoi(fields[colPos])
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "position %q", fields[colPos])
	}

	mapQ, err := strconv.Atoi(fields[colMapQ])
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "mapping quality %q", fields[colMapQ])
	}

	return &Record{
		Name:    fields[colName],
		Flags:   sam.Flags(flag),
		Contig:  fields[colContig],
		Pos:     pos,
		MapQ:    mapQ,
		Cigar:   fields[colCigar],
		NextPos: fields[colNextPos],
		Line:    line,
	}, nil
}

// Tag returns the molecular tag carried after the last ':' of the read name.
// The second value is false when the name has no tag.
func (r *Record) Tag() (string, bool) {
	i := strings.LastIndex(r.Name, tagSeparator)
	if i < 0 || i == len(r.Name)-1 {
		return "", false
	}
	return r.Name[i+1:], true
}

// field returns the i-th tab-delimited column of a retained line
func field(line string, i int) string {
	for ; i > 0; i-- {
		j := strings.IndexByte(line, '\t')
		if j < 0 {
			return ""
		}
		line = line[j+1:]
	}
	if j := strings.IndexByte(line, '\t'); j >= 0 {
		return line[:j]
	}
	return line
}
