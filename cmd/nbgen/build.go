package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	nbgen "github.com/alnah/go-nbgen"
	"github.com/alnah/go-nbgen/internal/assets"
	"github.com/alnah/go-nbgen/internal/codefmt"
	"github.com/alnah/go-nbgen/internal/config"
	"github.com/alnah/go-nbgen/internal/export"
	"github.com/alnah/go-nbgen/internal/fileutil"
	"github.com/alnah/go-nbgen/internal/logging"
	"github.com/alnah/go-nbgen/internal/notebook"
	"github.com/alnah/go-nbgen/internal/source"
)

// ErrWriteOutput reports a failure to write an HTML or PDF export.
var ErrWriteOutput = errors.New("failed to write output")

// buildSummary is what one build produced.
type buildSummary struct {
	Blocks    int
	Citations int
	Skipped   int
	Notebook  *notebook.WriteResult
	Exports   []string
}

// runBuild orchestrates one notebook build: config, records, assembly,
// notebook file, optional exports.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one input, got %d", ErrInvalidFlag, len(positional))
	}

	if len(positional) == 1 {
		flags.input.path = positional[0]
	}

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	cfg, err := loadBuildConfig(flags, envCfg)
	if err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout, envCfg)
	if err != nil {
		return err
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger, err := newLogger(cfg, env)
	if err != nil {
		return err
	}

	start := env.Now()
	summary, err := build(ctx, cfg, env, logger, timeout)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		printSummary(env, summary)
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "built in %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// loadBuildConfig loads the config file (flag, then NBGEN_CONFIG), applies
// env vars and flags, fills defaults and validates the result.
func loadBuildConfig(flags *buildFlags, envCfg *envConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the diagnostics logger writing to stderr.
func newLogger(cfg *config.Config, env *Environment) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	return logging.New(env.Stderr, level, format), nil
}

// build reads records, assembles the document and writes every output.
func build(ctx context.Context, cfg *config.Config, env *Environment, logger *slog.Logger, timeout time.Duration) (*buildSummary, error) {
	src, err := source.New(cfg.Input.Path, cfg.Input.Format, cfg.Input.Table)
	if err != nil {
		return nil, err
	}
	records, err := src.Read(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("records read", "path", cfg.Input.Path, "format", cfg.Input.Format, "count", len(records))

	formatter, err := codefmt.New(cfg.Code.Language)
	if err != nil {
		return nil, err
	}

	opts := []nbgen.Option{nbgen.WithLogger(logger)}
	if cfg.Bibliography.Heading != "" {
		opts = append(opts, nbgen.WithBibliographyHeading(cfg.Bibliography.Heading))
	}

	doc, err := nbgen.Build(ctx, records, formatter, cfg.Workers, opts...)
	if err != nil {
		return nil, err
	}

	nb := notebook.FromDocument(doc, formatter.Language())
	written, err := notebook.NewWriter(cfg.Output.Dir).Write(cfg.Output.Name, nb)
	if err != nil {
		return nil, err
	}
	logger.Debug("notebook written", "path", written.Path, "digest", written.Digest, "unchanged", written.Unchanged)

	summary := &buildSummary{
		Blocks:    len(doc.Blocks),
		Citations: len(doc.Citations),
		Skipped:   len(doc.Diagnostics),
		Notebook:  written,
	}

	if cfg.Output.HTML || cfg.Output.PDF {
		exports, err := exportDocument(ctx, doc, cfg, env, timeout)
		if err != nil {
			return nil, err
		}
		summary.Exports = exports
	}
	return summary, nil
}

// exportDocument writes the HTML and/or PDF renditions next to the notebook.
// A zero pdfTimeout uses the exporter default.
func exportDocument(ctx context.Context, doc *nbgen.Document, cfg *config.Config, env *Environment, pdfTimeout time.Duration) ([]string, error) {
	resolver, err := assets.NewResolver(cfg.Output.Assets)
	if err != nil {
		return nil, err
	}
	pageCSS, err := resolver.LoadStyle(cfg.Output.Style)
	if err != nil {
		return nil, err
	}

	htmlExp, err := export.NewHTMLExporter("", pageCSS)
	if err != nil {
		return nil, err
	}
	page, err := htmlExp.ToHTML(ctx, doc.Markdown(), cfg.Output.Name, filepath.Dir(cfg.Input.Path))
	if err != nil {
		return nil, err
	}

	base := filepath.Join(cfg.Output.Dir, cfg.Output.Name)
	var paths []string

	if cfg.Output.HTML {
		path := base + export.HTMLExtension
		if err := fileutil.WriteFileAtomic(path, []byte(page)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		paths = append(paths, path)
	}

	if cfg.Output.PDF {
		pdfExp := env.NewPDF(pdfTimeout)
		defer func() { _ = pdfExp.Close() }()

		pdf, err := pdfExp.ToPDF(ctx, page)
		if err != nil {
			return nil, err
		}
		path := base + export.PDFExtension
		if err := fileutil.WriteFileAtomic(path, pdf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// printSummary reports what was built on stdout.
func printSummary(env *Environment, s *buildSummary) {
	status := ""
	if s.Notebook.Unchanged {
		status = " (unchanged)"
	}
	fmt.Fprintf(env.Stdout, "%d blocks, %d citations, %d skipped -> %s%s\n",
		s.Blocks, s.Citations, s.Skipped, s.Notebook.Path, status)
	for _, p := range s.Exports {
		fmt.Fprintf(env.Stdout, "  -> %s\n", p)
	}
}
