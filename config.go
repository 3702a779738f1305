package main

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/voxelbrain/goptions"
	"go.uber.org/zap"
)

var logger *zap.Logger
var sugar *zap.SugaredLogger
var conf config

const (
	// VERSION is just the version number
	VERSION = "1.0.0"

	// OutputSuffix is appended to the input file name to name the output
	OutputSuffix = "_deduped"
)

type config struct {
	Input       string `goptions:"-i, --input, description='Input SAM file (sorted unless --sort is given, may be gzipped)'"`
	PairedEnd   bool   `goptions:"-p, --paired-end, description='Use paired end deduping. Read pairs with an alignment for only one read are discarded'"`
	Out         string `goptions:"-o, --out, description='Prefix of the sorted SAM file (required with --sort)'"`
	Sort        bool   `goptions:"-s, --sort, description='Input SAM file needs to be sorted (samtools 1.5 or better)'"`
	Umi         bool   `goptions:"-u, --umi, description='Check molecular tags against the known UMI file'"`
	UmiFile     string `goptions:"--umi-file, description='File with one known UMI per line [STL96.txt]'"`
	Qual        bool   `goptions:"-q, --qual, description='Keep the read with the highest MAPQ when duplicates are found'"`
	StrictPairs bool   `goptions:"--strict-pairs, description='Match mates by read name instead of neighbouring lines'"`
	LegacyClip  bool   `goptions:"--legacy-clip, description='Only read soft clips of at most two digits at the start of the CIGAR'"`
	Append      bool   `goptions:"-a, --append, description='Appends results to the output file (and creates if not existing)'"`
	Samtools    string `goptions:"--samtools, description='Path of the samtools executable [samtools]'"`
	SortThreads int    `goptions:"--sort-threads, description='Threads used by samtools sort [28]'"`
	SortMemory  string `goptions:"--sort-memory, description='Memory per thread used by samtools sort [3M]'"`
	Debug       bool   `goptions:"--debug, description='Show debug info'"`
	Log         string `goptions:"--log, description='Save log to file [dup_remove.log]'"`
	Version     bool   `goptions:"-v, --version, description='Show version'"`

	Help goptions.Help `goptions:"-h, --help, description='Show this help'"`
}

func defaultConfig() config {
	return config{
		UmiFile: "STL96.txt", Samtools: "samtools",
		SortThreads: 28, SortMemory: "3M",
		Log: "dup_remove.log",
	}
}

// validate checks the options that cannot be expressed by goptions
func (c *config) validate() error {
	if c.Input == "" {
		return errors.New("sam file is mandatory. Please, provide one (-i|--input)")
	}

	if _, err := os.Stat(c.Input); os.IsNotExist(err) {
		return errors.Errorf("the file %s does not exist", c.Input)
	}

	if c.Sort && c.Out == "" {
		return errors.New("sorting needs a prefix for the sorted file. Please, provide one (-o|--out)")
	}

	if c.SortThreads < 1 {
		return errors.Errorf("invalid number of sort threads: %d", c.SortThreads)
	}

	return nil
}

// outputName derives the deduplicated file name from the input name,
// gzipped input gives gzipped output
func outputName(input string) string {
	if strings.HasSuffix(input, ".gz") {
		return strings.TrimSuffix(input, ".gz") + OutputSuffix + ".gz"
	}
	return input + OutputSuffix
}

//TicTocTimer is structure for timer
type TicTocTimer struct {
	duration time.Duration
	start    time.Time
	repeats  int64
}

//InitTimer is constructor with default values for timer
func InitTimer() *TicTocTimer {
	return &TicTocTimer{duration: 0, start: time.Now(), repeats: 0}
}

// Tic is start timer
func (timer *TicTocTimer) Tic() {
	timer.start = time.Now()
}

//Toc is pause timer
func (timer *TicTocTimer) Toc() {
	timer.duration += time.Since(timer.start)
	timer.repeats++
}

//TicToc is total time of timer
func (timer *TicTocTimer) TicToc() time.Duration {
	return timer.duration
}
