package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-nbgen/internal/config"
)

// ErrInvalidFlag reports an unparsable or out-of-range flag value.
var ErrInvalidFlag = errors.New("invalid flag")

// errHelpShown signals that --help was requested and usage was printed.
var errHelpShown = errors.New("help shown")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// inputFlags holds record source flags.
type inputFlags struct {
	path   string // positional argument
	format string
	table  string
}

// outputFlags holds output location and export flags.
type outputFlags struct {
	dir    string
	name   string
	html   bool
	pdf    bool
	style  string
	assets string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common     commonFlags
	input      inputFlags
	output     outputFlags
	language   string
	bibHeading string
	workers    int
	timeout    string
	logFormat  string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addInputFlags adds record source flags to a FlagSet.
func addInputFlags(fs *flag.FlagSet, f *inputFlags) {
	fs.StringVarP(&f.format, "format", "f", "", "record format: yaml, sqlite (default: from extension)")
	fs.StringVar(&f.table, "table", "", "SQLite table name (default: records)")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "output directory (default: outputs/nbs)")
	fs.StringVarP(&f.name, "name", "n", "", "notebook name without extension (default: aai_notebook)")
	fs.BoolVar(&f.html, "html", false, "also export HTML")
	fs.BoolVar(&f.pdf, "pdf", false, "also export PDF (requires Chrome)")
	fs.StringVarP(&f.style, "style", "s", "", "export page style name (default: notebook)")
	fs.StringVar(&f.assets, "assets", "", "directory with custom styles/{name}.css")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	addCommonFlags(fs, &f.common)
	addInputFlags(fs, &f.input)
	addOutputFlags(fs, &f.output)
	fs.StringVarP(&f.language, "language", "l", "", "code language (default: python)")
	fs.StringVar(&f.bibHeading, "bib-heading", "", "bibliography heading line (default: \"## References\")")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "overall timeout, e.g. 30s, 2m")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text, json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printBuildUsage(stderr)
			return nil, nil, errHelpShown
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	if f.common.quiet && f.common.verbose {
		return nil, nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrInvalidFlag)
	}
	if f.workers < 0 || f.workers > config.MaxWorkers {
		return nil, nil, fmt.Errorf("%w: --workers must be between 0 and %d, got %d", ErrInvalidFlag, config.MaxWorkers, f.workers)
	}

	return f, fs.Args(), nil
}

// resolveTimeout picks the --timeout flag, then NBGEN_TIMEOUT. Zero means none.
func resolveTimeout(flagValue string, env *envConfig) (time.Duration, error) {
	if flagValue == "" {
		return env.Timeout, nil
	}
	d, err := time.ParseDuration(flagValue)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: --timeout %q must be a positive duration", ErrInvalidFlag, flagValue)
	}
	return d, nil
}

// mergeFlags overlays explicitly set flag values onto cfg (CLI wins).
func mergeFlags(f *buildFlags, cfg *config.Config) {
	if f.input.path != "" {
		cfg.Input.Path = f.input.path
		if f.input.format == "" {
			// Re-infer from the new path unless a format is forced.
			cfg.Input.Format = ""
		}
	}
	if f.input.format != "" {
		cfg.Input.Format = f.input.format
	}
	if f.input.table != "" {
		cfg.Input.Table = f.input.table
	}
	if f.output.dir != "" {
		cfg.Output.Dir = f.output.dir
	}
	if f.output.name != "" {
		cfg.Output.Name = f.output.name
	}
	if f.output.html {
		cfg.Output.HTML = true
	}
	if f.output.pdf {
		cfg.Output.PDF = true
	}
	if f.output.style != "" {
		cfg.Output.Style = f.output.style
	}
	if f.output.assets != "" {
		cfg.Output.Assets = f.output.assets
	}
	if f.language != "" {
		cfg.Code.Language = f.language
	}
	if f.bibHeading != "" {
		cfg.Bibliography.Heading = f.bibHeading
	}
	if f.workers > 0 {
		cfg.Workers = f.workers
	}
	if f.logFormat != "" {
		cfg.Log.Format = f.logFormat
	}
	switch {
	case f.common.verbose:
		cfg.Log.Level = "debug"
	case f.common.quiet:
		cfg.Log.Level = "error"
	}
}
