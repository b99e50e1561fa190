package main

import (
	"context"
	"countries/cmd/countries/render"
	"countries/internal/country"
	"countries/internal/util"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

type ListCmd struct {
	Search string `short:"s" help:"Only countries whose name contains this text"`
	Sort   string `help:"Sort order (alphabetical, population, region)"`
	Region string `short:"r" help:"Only countries in this region (implies --sort=region)"`
	Names  bool   `short:"n" help:"Output only country names (one per line)"`
	Format string `short:"f" enum:"table,json,yaml" default:"table" help:"Output format (table, json, yaml)"`
}

func (cmd *ListCmd) Run(ctx context.Context, g *Globals) error {
	if err := g.load(ctx); err != nil {
		return err
	}

	q, err := cmd.query(g.Dir)
	if err != nil {
		return err
	}
	g.Dir.SetQuery(q)
	countries := g.Dir.Visible()

	if cmd.Names {
		for _, c := range countries {
			fmt.Fprintln(g.Out, c.Name)
		}
		return nil
	}

	switch cmd.Format {
	case formatJSON:
		return writeJSON(g.Out, countries)
	case formatYAML:
		return writeYAML(g.Out, countries)
	default:
		view := render.NewCountryListView(countries, g.Dir.Favorites())
		assert.Success(fmt.Fprint(g.Out, g.Render.RenderCountryList(view)))
		return nil
	}
}

// query layers the flags over the configured query.
func (cmd *ListCmd) query(dir *country.Directory) (country.Query, error) {
	q := dir.Query()
	if cmd.Search != "" {
		q.Search = cmd.Search
	}
	if cmd.Sort != "" {
		sort, err := country.ParseSortOption(cmd.Sort)
		if err != nil {
			return country.Query{}, err
		}
		q.Sort = sort
	}
	if cmd.Region != "" {
		if err := validateRegion(dir, cmd.Region); err != nil {
			return country.Query{}, err
		}
		q.Region = cmd.Region
		if cmd.Sort == "" {
			q.Sort = country.SortRegion
		}
	}
	return q, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
