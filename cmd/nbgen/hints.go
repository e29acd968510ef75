package main

import (
	"context"
	"errors"

	nbgen "github.com/alnah/go-nbgen"
	"github.com/alnah/go-nbgen/internal/assets"
	"github.com/alnah/go-nbgen/internal/codefmt"
	"github.com/alnah/go-nbgen/internal/config"
	"github.com/alnah/go-nbgen/internal/export"
	"github.com/alnah/go-nbgen/internal/hints"
	"github.com/alnah/go-nbgen/internal/source"
)

// hintFor returns an actionable hint to print after err, or "".
func hintFor(err error, env *Environment) string {
	switch {
	case errors.Is(err, export.ErrBrowserConnect):
		return hints.ForBrowserConnect(env.Getenv)
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound()
	case errors.Is(err, source.ErrNoInput):
		return hints.ForNoInput()
	case errors.Is(err, nbgen.ErrMalformedUnit):
		return hints.ForMalformedUnit()
	case errors.Is(err, source.ErrMissingColumn):
		return hints.ForMissingColumn(source.ColumnAliases())
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.AvailableStyles())
	case errors.Is(err, codefmt.ErrUnsupportedLanguage):
		return hints.ForUnsupportedLanguage()
	}
	return ""
}
