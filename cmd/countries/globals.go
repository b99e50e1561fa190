package main

import (
	"context"
	"countries/cmd/countries/render"
	"countries/internal/country"
	"countries/internal/fetch"
	"countries/internal/flags"
	"errors"
	"io"

	"go.uber.org/zap"
)

type Globals struct {
	Dir    *country.Directory
	Source country.Source
	Out    io.Writer
	Render render.Renderer
	Flags  *flags.Prober
	Prompt Prompter
	Logger *zap.Logger
}

// LoadError hides the failure class behind the one message users see.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fetch.FailedMessage
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (g *Globals) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

// load fetches the countries once per process.
func (g *Globals) load(ctx context.Context) error {
	if g.Dir.State() == country.Loaded {
		return nil
	}

	if err := g.Dir.Load(ctx, g.Source); err != nil {
		g.logger().Warn("Loading countries failed",
			zap.Error(err),
			zap.Bool("network", errors.Is(err, fetch.ErrNetwork)),
			zap.Bool("decode", errors.Is(err, fetch.ErrDecode)))
		return &LoadError{Err: err}
	}

	g.logger().Debug("Countries loaded", zap.Int("count", g.Dir.Count()))
	return nil
}
