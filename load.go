package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/golang-collections/collections/set"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

// umiSet is the known molecular tags, it satisfies dedup.TagValidator
type umiSet struct {
	known *set.Set
}

// Valid as name says
func (u *umiSet) Valid(tag string) bool {
	return u.known.Has(tag)
}

// Len is the number of known tags
func (u *umiSet) Len() int {
	return u.known.Len()
}

// loadUMIs is function that load the known molecular tags, one per line
func loadUMIs(path string) (*umiSet, error) {
	sugar.Infof("Loading known umis from file %s", path)

	stats, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, errors.New(path + " not exists")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	bar := progressbar.DefaultBytes(
		stats.Size(),
		"loading",
	)

	known := set.New()
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrapf(err, "failed to read from %s", path)
		}

		bar.Add(len(line))

		if umi := strings.TrimSpace(line); umi != "" {
			known.Insert(umi)
		}

		if err == io.EOF {
			break
		}
	}

	bar.Finish()

	if known.Len() == 0 {
		return nil, errors.Errorf("no umis in %s", path)
	}

	sugar.Infof("%d known umis found", known.Len())
	return &umiSet{known: known}, nil
}
