package main

import "fmt"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type VersionCmd struct{}

func (cmd *VersionCmd) Run(g *Globals) error {
	fmt.Fprintf(g.Out, "countries %s\n", version)
	return nil
}
