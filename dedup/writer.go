package dedup

import (
	"io"

	"github.com/pkg/errors"
)

func writeLine(w io.Writer, line string) error {
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return errors.Wrap(err, "failed to write record")
	}
	return nil
}

// WriteSingle writes every retained record once, in index order
func WriteSingle(w io.Writer, idx *Index) (int, error) {
	idx.opts.logger().Info("writing sam formatted records with PCR duplicates removed")

	written := 0
	for _, e := range idx.Entries() {
		if err := writeLine(w, e.Line); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}
