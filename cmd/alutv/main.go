// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/ezrec/alutv/dataset"
	"github.com/ezrec/alutv/translate"
	"github.com/ezrec/alutv/vector"
	"github.com/ezrec/alutv/writer"
)

// options are the command line settings.
type options struct {
	input  string
	output string
	format string
	config string
	dump   bool

	vectorBits int
	opcodeBits int
	gap        string
	set        []string // Names of flags given on the command line.
}

func main() {
	var opts options
	var lang string
	var strict bool
	var verbose bool

	flag.StringVar(&opts.input, "i", "input.json", "Dataset to read, - for stdin")
	flag.StringVar(&opts.output, "o", "test_vectors.txt", "Table to write, - for stdout")
	flag.StringVar(&opts.format, "format", "", "Dataset format: json, yaml or star (default from extension)")
	flag.StringVar(&opts.config, "config", "", ".toml configuration file")
	flag.IntVar(&opts.vectorBits, "vector-bits", vector.VECTOR_BITS, "Operand and result width")
	flag.IntVar(&opts.opcodeBits, "opcode-bits", vector.OPCODE_BITS, "Opcode width")
	flag.StringVar(&opts.gap, "gap", vector.GAP, "Whitespace between columns")
	flag.BoolVar(&opts.dump, "dump", false, "Dump the decoded operations to stderr")
	flag.StringVar(&lang, "lang", "", "Language for diagnostics")
	flag.BoolVar(&strict, "strict", false, "Exit with status 2 if any operation was skipped")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	flag.Visit(func(fl *flag.Flag) {
		opts.set = append(opts.set, fl.Name)
	})

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			log.Fatalf("%v: %v", lang, err)
		}
	}

	logger, err := newLogger(verbose)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	writer.SetLogger(logger)

	failed, err := run(&opts)
	if err != nil {
		logger.Sync()
		log.Fatal(err)
	}

	if strict && failed > 0 {
		logger.Sync()
		os.Exit(2)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	return cfg.Build()
}

// loadConfig merges the configuration file and command line flags.
func loadConfig(opts *options) (cfg vector.Config, err error) {
	cfg = vector.DefaultConfig()

	if len(opts.config) != 0 {
		var md toml.MetaData
		md, err = toml.DecodeFile(opts.config, &cfg)
		if err != nil {
			err = fmt.Errorf("%v: %w", opts.config, err)
			return
		}
		if undecoded := md.Undecoded(); len(undecoded) != 0 {
			err = fmt.Errorf("%v: unknown keys %v", opts.config, undecoded)
			return
		}
	}

	if slices.Contains(opts.set, "vector-bits") {
		cfg.VectorBits = opts.vectorBits
	}
	if slices.Contains(opts.set, "opcode-bits") {
		cfg.OpcodeBits = opts.opcodeBits
	}
	if slices.Contains(opts.set, "gap") {
		cfg.Gap = opts.gap
	}

	err = cfg.Check()
	return
}

// run generates the table. The dataset is loaded before the output is
// created, so a dataset that fails to load leaves no output behind.
func run(opts *options) (failed int, err error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return
	}

	ld := &dataset.Loader{Format: dataset.FormatOf(opts.input), Config: cfg}
	if len(opts.format) != 0 {
		ld.Format, err = dataset.ParseFormat(opts.format)
		if err != nil {
			return
		}
	}

	var recs []vector.Record
	if opts.input == "-" {
		recs, err = ld.Decode("<stdin>", os.Stdin)
	} else {
		recs, err = ld.Load(opts.input)
	}
	if err != nil {
		return
	}

	if opts.dump {
		dump(os.Stderr, cfg, recs)
	}

	var out io.Writer = os.Stdout
	if opts.output != "-" {
		ouf, cerr := os.Create(opts.output)
		if cerr != nil {
			err = cerr
			return
		}
		defer func() {
			cerr := ouf.Close()
			if err == nil {
				err = cerr
			}
		}()
		out = ouf
	}

	w, err := writer.NewWriter(cfg, recs, out)
	if err != nil {
		return
	}

	err = w.Run()
	failed = len(w.Failed())

	return
}

// dump writes the decoded form of every operation.
func dump(out io.Writer, cfg vector.Config, recs []vector.Record) {
	for _, rec := range recs {
		op, err := vector.Validate(cfg, rec)
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		spew.Fdump(out, op)
	}
}
