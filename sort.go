package main

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/pkg/errors"
)

// Sorter orders a SAM file by reference and leftmost position
type Sorter interface {
	// Sort writes the sorted records next to prefix and returns the new file name
	Sort(input, prefix string) (string, error)
}

// samtoolsSorter shells out to samtools view | samtools sort
type samtoolsSorter struct {
	Samtools string
	Threads  int
	Memory   string
}

func newSamtoolsSorter(c config) *samtoolsSorter {
	return &samtoolsSorter{Samtools: c.Samtools, Threads: c.SortThreads, Memory: c.SortMemory}
}

func (s *samtoolsSorter) commands(input, output string) (*exec.Cmd, *exec.Cmd) {
	view := exec.Command(s.Samtools, "view", "-bS", input)
	sort := exec.Command(s.Samtools, "sort",
		"-m", s.Memory,
		"-@", fmt.Sprintf("%d", s.Threads),
		"-O", "sam",
		"-o", output,
	)
	return view, sort
}

// Sort as name says
func (s *samtoolsSorter) Sort(input, prefix string) (string, error) {
	output := prefix + ".sam"
	sugar.Infof("sorting input sam file %s", input)

	view, sort := s.commands(input, output)

	var viewErr, sortErr bytes.Buffer
	view.Stderr = &viewErr
	sort.Stderr = &sortErr

	pipe, err := view.StdoutPipe()
	if err != nil {
		return "", errors.Wrap(err, "failed to connect samtools view to samtools sort")
	}
	sort.Stdin = pipe

	if err := sort.Start(); err != nil {
		return "", errors.Wrapf(err, "failed to start %s sort", s.Samtools)
	}
	if err := view.Run(); err != nil {
		_ = sort.Wait()
		return "", errors.Wrapf(err, "error sorting sam file:\n%s", viewErr.String())
	}
	if err := sort.Wait(); err != nil {
		return "", errors.Wrapf(err, "error sorting sam file:\n%s", sortErr.String())
	}

	sugar.Infof("sorted input sam file %s and output to %s", input, output)
	return output, nil
}
