package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/voxelbrain/goptions"

	"github.com/ygidtu/samdedup/dedup"
)

// logRejection reports one excluded record in the log file
func logRejection(rej dedup.Rejection) {
	switch rej.Reason {
	case dedup.ReasonMalformed:
		sugar.Warnf("Error@ line%d: %v, will not be included in output", rej.LineNo, rej.Err)
	case dedup.ReasonDuplicate, dedup.ReasonUnpaired:
		sugar.Debugf("line%d: %s, will not be included in output: %s", rej.LineNo, rej.Reason, rej.Name)
	default:
		sugar.Debugf("Error@ line%d: %s, will not be included in output: %s", rej.LineNo, rej.Reason, rej.Name)
	}
}

func options(c config) (dedup.Options, error) {
	opts := dedup.Options{
		PairedEnd:            c.PairedEnd,
		PreferHighestQuality: c.Qual,
		Logger:               sugar,
		OnReject:             logRejection,
	}

	if c.StrictPairs {
		opts.PairMode = dedup.PairByName
	}

	if c.LegacyClip {
		opts.ClipMode = dedup.ClipLegacy
	}

	if c.Umi {
		umis, err := loadUMIs(c.UmiFile)
		if err != nil {
			return opts, err
		}
		opts.Validator = umis
	}

	return opts, nil
}

// run sorts the input when asked, removes the duplicates and writes <input>_deduped
func run(c config, sorter Sorter) (dedup.Summary, error) {
	opts, err := options(c)
	if err != nil {
		return dedup.Summary{}, err
	}

	input := c.Input
	if c.Sort {
		input, err = sorter.Sort(c.Input, c.Out)
		if err != nil {
			return dedup.Summary{}, err
		}
	}

	sugar.Infof("Checking sorted sam file %s for pcr duplicates", input)

	r, err := openInput(input)
	if err != nil {
		return dedup.Summary{}, err
	}
	defer r.Close()

	output := outputName(input)
	sugar.Infof("write into %s", output)
	w, err := openOutput(output, c.Append)
	if err != nil {
		return dedup.Summary{}, err
	}

	if stats, err := os.Stat(input); err == nil && !strings.HasSuffix(input, ".gz") {
		bar := progressbar.DefaultBytes(stats.Size(), "deduping")
		defer bar.Finish()
		opts.Progress = func(n int) { bar.Add(n) }
	}

	summary, err := dedup.Run(r, w, opts)
	if err != nil {
		w.Close()
		return summary, err
	}

	if err := w.Close(); err != nil {
		return summary, errors.Wrapf(err, "failed to close %s", output)
	}
	return summary, nil
}

func main() {
	conf = defaultConfig()
	goptions.ParseAndFail(&conf)

	setLogger(conf.Debug, conf.Log)
	defer logger.Sync()

	if conf.Version {
		sugar.Infof("current version: %v", VERSION)
		os.Exit(0)
	}

	if err := conf.validate(); err != nil {
		sugar.Fatal(err)
	}

	timer := InitTimer()
	timer.Tic()

	summary, err := run(conf, newSamtoolsSorter(conf))
	if err != nil {
		sugar.Fatal(err)
	}

	if summary.PairedEnd {
		sugar.Infof("Dup Remover Summary Statistics(Paired End)\n%s", summary)
	} else {
		sugar.Infof("Dup Remover Summary Statistics\n%s", summary)
	}
	sugar.Infow("summary", summary.Fields()...)

	timer.Toc()
	sugar.Info(timer.TicToc())
}
