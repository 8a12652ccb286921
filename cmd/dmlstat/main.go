// SPDX-License-Identifier: MIT

// Command dmlstat loads a numeric CSV file and prints column statistics, an
// optional random sample and an optional min-max rescaled column.
//
// Usage:
//
//	dmlstat -file data.csv -header -head 5 -sample 10 -seed 42 -rescale 2 -to 0,1 -format json
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hyp3rd/ewrap"
	"go.uber.org/zap"

	"github.com/katalvlaran/dml/frame"
	"github.com/katalvlaran/dml/internal/report"
	"github.com/katalvlaran/dml/sampler"
	"github.com/katalvlaran/dml/scaler"
	"github.com/katalvlaran/dml/stats"
)

// Logger describes the logging surface dmlstat needs; zap's SugaredLogger
// satisfies it.
type Logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// config holds the parsed command line.
type config struct {
	file    string
	header  bool
	comma   string
	head    int
	tail    int
	sample  int
	seed    uint64
	format  string
	rescale int
	to      string
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("dmlstat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.file, "file", "", "CSV file to load (required)")
	fs.BoolVar(&cfg.header, "header", false, "treat the first record as column names")
	fs.StringVar(&cfg.comma, "comma", ",", "single-character field delimiter")
	fs.IntVar(&cfg.head, "head", 0, "print the first N rows")
	fs.IntVar(&cfg.tail, "tail", 0, "print the last N rows")
	fs.IntVar(&cfg.sample, "sample", 0, "draw N random cells")
	fs.Uint64Var(&cfg.seed, "seed", 0, "sampler seed (0 seeds from the clock)")
	fs.StringVar(&cfg.format, "format", "text", "report format: text, json or msgpack")
	fs.IntVar(&cfg.rescale, "rescale", -1, "min-max rescale this column (-1 disables)")
	fs.StringVar(&cfg.to, "to", "0,1", "target range for -rescale as lo,hi")
	fs.BoolVar(&cfg.verbose, "verbose", false, "development logging")

	if err := fs.Parse(args); err != nil {
		return cfg, ewrap.Wrap(err, "parse flags")
	}
	if cfg.file == "" {
		return cfg, ewrap.New("-file is required")
	}
	if len([]rune(cfg.comma)) != 1 {
		return cfg, ewrap.Newf("-comma must be a single character, got %q", cfg.comma)
	}

	return cfg, nil
}

// parseRange reads "lo,hi".
func parseRange(s string) (lo, hi float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, ewrap.Newf("range %q: want lo,hi", s)
	}
	if lo, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, ewrap.Wrapf(err, "range %q", s)
	}
	if hi, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, ewrap.Wrapf(err, "range %q", s)
	}

	return lo, hi, nil
}

func run(cfg config, stdout io.Writer, log Logger) error {
	enc, err := report.New(cfg.format)
	if err != nil {
		return err
	}

	opts := []frame.Option{frame.WithComma([]rune(cfg.comma)[0])}
	if cfg.header {
		opts = append(opts, frame.WithHeader())
	}
	d, names, err := frame.LoadCSV(cfg.file, opts...)
	if err != nil {
		return err
	}
	log.Infof("loaded %s: %d rows x %d cols", cfg.file, d.Rows(), d.Cols())

	// Display goes out before the report; it only makes sense for text output.
	if cfg.format == "text" {
		if cfg.head > 0 {
			if err = frame.Head(stdout, d, cfg.head); err != nil {
				return err
			}
		}
		if cfg.tail > 0 {
			if err = frame.Tail(stdout, d, cfg.tail); err != nil {
				return err
			}
		}
	}

	rep := &report.Report{Source: cfg.file, Rows: d.Rows(), Cols: d.Cols()}
	if rep.Columns, err = stats.DescribeAll(d); err != nil {
		return err
	}
	for i := range rep.Columns {
		if i < len(names) {
			rep.Columns[i].Name = names[i]
		}
	}

	if cfg.sample > 0 {
		var sopts []sampler.Option
		if cfg.seed != 0 {
			sopts = append(sopts, sampler.WithSeed(cfg.seed))
		}
		if rep.Sample, err = sampler.New(sopts...).Sample(d, cfg.sample); err != nil {
			return err
		}
		log.Infof("drew %d samples", cfg.sample)
	}

	if cfg.rescale >= 0 {
		lo, hi, perr := parseRange(cfg.to)
		if perr != nil {
			return perr
		}
		col, cerr := frame.Column(d, cfg.rescale)
		if cerr != nil {
			return cerr
		}
		out, a, serr := scaler.MinMax(col, lo, hi)
		if serr != nil {
			return serr
		}
		rep.Rescaled, rep.Affine = out, &a
		log.Infof("rescaled column %d onto [%g, %g]", cfg.rescale, lo, hi)
	}

	return enc.Encode(stdout, rep)
}

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		logger, err = cfg.Build()
	}
	if err != nil {
		return nil, ewrap.Wrap(err, "build logger")
	}

	return logger.Sugar(), nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	sugar, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer sugar.Sync() //nolint:errcheck

	if err = run(cfg, os.Stdout, sugar); err != nil {
		sugar.Errorf("dmlstat: %v", err)
		sugar.Sync() //nolint:errcheck
		os.Exit(1)
	}
}
