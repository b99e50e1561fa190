package main

import (
	"context"
	"countries/cmd/countries/render"
	"countries/internal/country"
	"countries/internal/util"
	"fmt"
)

type ChartsCmd struct {
	Format string `short:"f" enum:"table,json,yaml" default:"table" help:"Output format (table, json, yaml)"`
}

type chartsOutput struct {
	TopPopulation []country.PopulationEntry `json:"top_population" yaml:"top_population"`
	TopRegions    []country.RegionCount     `json:"top_regions" yaml:"top_regions"`
}

func (cmd *ChartsCmd) Run(ctx context.Context, g *Globals) error {
	if err := g.load(ctx); err != nil {
		return err
	}

	view := render.ChartsView{
		Population: g.Dir.TopPopulation(),
		Regions:    g.Dir.TopRegions(),
	}

	switch cmd.Format {
	case formatJSON:
		return writeJSON(g.Out, chartsOutput{TopPopulation: view.Population, TopRegions: view.Regions})
	case formatYAML:
		return writeYAML(g.Out, chartsOutput{TopPopulation: view.Population, TopRegions: view.Regions})
	default:
		assert.Success(fmt.Fprint(g.Out, g.Render.RenderCharts(view)))
		return nil
	}
}
