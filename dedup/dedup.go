package dedup

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// HeaderPrefix marks SAM header lines, which are copied through untouched
const HeaderPrefix = "@"

// Run reads alignment lines from r, copies the header to w and then writes the
// deduplicated records once the whole input has been consumed
func Run(r io.Reader, w io.Writer, opts Options) (Summary, error) {
	sugar := opts.logger()
	reader := bufio.NewReader(r)
	writer := bufio.NewWriter(w)

	idx := NewIndex(opts)

	sugar.Info("checking sorted sam records for pcr duplicates")
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return idx.Summary(), errors.Wrap(err, "failed to read alignments")
		}
		if len(line) > 0 {
			lineNo++
			if opts.Progress != nil {
				opts.Progress(len(line))
			}

			if strings.HasPrefix(line, HeaderPrefix) {
				if werr := writeLine(writer, strings.TrimRight(line, "\r\n")); werr != nil {
					return idx.Summary(), werr
				}
			} else if strings.TrimSpace(line) != "" {
				idx.Add(lineNo, line)
			}
		}
		if err == io.EOF {
			break
		}
	}
	sugar.Debugf("read %d lines, %d records retained", lineNo, idx.Len())

	summary, err := Drain(writer, idx)
	if err != nil {
		return summary, err
	}

	if err := writer.Flush(); err != nil {
		return summary, errors.Wrap(err, "failed to flush output")
	}
	return summary, nil
}

// Drain writes the retained records of idx with the writer selected by its options
func Drain(w io.Writer, idx *Index) (Summary, error) {
	summary := idx.Summary()

	if !idx.opts.PairedEnd {
		_, err := WriteSingle(w, idx)
		return summary, err
	}

	stats, err := WritePaired(w, idx, idx.opts.PairMode)
	summary.PairedEnd = true
	summary.Paired = stats.Paired
	summary.Unpaired = stats.Unpaired
	return summary, err
}
