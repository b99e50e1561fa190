package main

import (
	"context"
	"fmt"
)

type RegionsCmd struct{}

func (cmd *RegionsCmd) Run(ctx context.Context, g *Globals) error {
	if err := g.load(ctx); err != nil {
		return err
	}
	for _, r := range g.Dir.Regions() {
		fmt.Fprintln(g.Out, r)
	}
	return nil
}
