package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var first error
	for i := len(m) - 1; i >= 0; i-- {
		if err := m[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type readCloser struct {
	io.Reader
	io.Closer
}

type writeCloser struct {
	io.Writer
	io.Closer
}

// openInput opens a SAM file, transparently decompressing gzipped input
func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}

	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	gr, err := gzip.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	return readCloser{Reader: gr, Closer: multiCloser{f, gr}}, nil
}

// openOutput creates (or appends to) the output file, compressing when the name ends in gz
func openOutput(path string, appendTo bool) (io.WriteCloser, error) {
	mode := os.O_CREATE | os.O_WRONLY
	if appendTo {
		mode = mode | os.O_APPEND
	} else {
		mode = mode | os.O_TRUNC
	}

	f, err := os.OpenFile(path, mode, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}

	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	gw := gzip.NewWriter(f)
	return writeCloser{Writer: gw, Closer: multiCloser{f, gw}}, nil
}
