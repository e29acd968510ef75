package nbgen

import "log/slog"

// Option configures an Assembler.
type Option func(*Assembler)

// assemblerConfig holds internal configuration for Assembler.
type assemblerConfig struct {
	bibHeading string
	preload    []Citation
}

// WithBibliographyHeading replaces the "## References" heading line.
// Panics if heading is empty (programmer error).
func WithBibliographyHeading(heading string) Option {
	if heading == "" {
		panic("nbgen: WithBibliographyHeading heading must not be empty")
	}
	return func(a *Assembler) {
		a.cfg.bibHeading = heading
	}
}

// WithPreloadedCitations seeds every run's registry with existing entries,
// so new sources continue numbering after them.
func WithPreloadedCitations(entries ...Citation) Option {
	return func(a *Assembler) {
		a.cfg.preload = append(a.cfg.preload, entries...)
	}
}

// WithLogger attaches a logger for skipped-record diagnostics.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.logger = l
		}
	}
}
