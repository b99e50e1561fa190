package main

import (
	"context"
	"countries/cmd/countries/render"
	"countries/internal/config"
	"countries/internal/country"
	"countries/internal/fetch"
	"countries/internal/flags"
	"countries/internal/logging"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type CLI struct {
	List    ListCmd    `cmd:"" aliases:"ls" help:"List countries"`
	Show    ShowCmd    `cmd:"" help:"Show country details"`
	Regions RegionsCmd `cmd:"" help:"List the regions available for filtering"`
	Charts  ChartsCmd  `cmd:"" help:"Show population and region charts"`
	Browse  BrowseCmd  `cmd:"" aliases:"b" help:"Browse countries interactively and pick favorites"`
	Version VersionCmd `cmd:"" help:"Print the version"`

	ConfigPath string `name:"config" help:"Path to config file"`
	URL        string `name:"url" help:"Country dataset URL"`
	Data       string `name:"data" short:"d" help:"Read countries from a local JSON file instead of the URL"`
	Verbose    bool   `short:"v" help:"Verbose logging"`

	globals *Globals `kong:"-"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	cfg, err := config.Load(viper.New(), c.ConfigPath)
	if err != nil {
		return err
	}
	c.applyFlags(&cfg)

	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		return err
	}

	query, err := cfg.Query()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	src, err := newSource(cfg, logger)
	if err != nil {
		return err
	}

	dir := country.NewDirectory()
	dir.SetQuery(query)

	c.globals = &Globals{
		Dir:    dir,
		Source: src,
		Out:    os.Stdout,
		Render: render.NewLipglossRendererAuto(os.Stdout),
		Flags:  flags.NewProber(cfg.FlagProbeLimit, logger),
		Prompt: huhPrompter{},
		Logger: logger,
	}
	ctx.Bind(c.globals)
	return nil
}

func (c *CLI) applyFlags(cfg *config.Config) {
	if c.URL != "" {
		cfg.URL = c.URL
	}
	if c.Data != "" {
		cfg.Data = c.Data
	}
	if c.Verbose {
		cfg.Verbose = true
	}
}

func newSource(cfg config.Config, logger *zap.Logger) (country.Source, error) {
	if cfg.Data == "" {
		return fetch.NewHTTPSource(cfg.URL, logger), nil
	}
	path, err := config.ExpandPath(cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid data path: %w", err)
	}
	return fetch.FileSource{Path: path}, nil
}

func main() {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("countries"),
		kong.Description("Browse, search and chart the countries of the world"),
		kong.UsageOnError(),
		kong.BindTo(runCtx, (*context.Context)(nil)),
	)
	err := ctx.Run()
	if cli.globals != nil {
		_ = cli.globals.Logger.Sync()
	}
	ctx.FatalIfErrorf(err)
}
