package main

import (
	"context"
	"countries/cmd/countries/render"
	"countries/internal/country"
	"countries/internal/util"
	"fmt"
)

type ShowCmd struct {
	Names  []string `arg:"" name:"name" help:"Country names"`
	NoFlag bool     `name:"no-flag" help:"Skip checking the flag images"`
}

func (cmd *ShowCmd) Run(ctx context.Context, g *Globals) error {
	if err := g.load(ctx); err != nil {
		return err
	}

	found := make([]country.Country, 0, len(cmd.Names))
	for _, name := range cmd.Names {
		c, err := findCountry(g.Dir, name)
		if err != nil {
			if handleFindError(g.Out, err) {
				return nil
			}
			return err
		}
		found = append(found, c)
	}

	glyphs := cmd.flagGlyphs(ctx, g, found)
	for i, c := range found {
		if i > 0 {
			fmt.Fprintln(g.Out)
		}
		view := render.CountryDetailView{
			Country:   c,
			Favorite:  g.Dir.IsFavorite(c.Name),
			FlagGlyph: glyphs[c.Flag],
		}
		assert.Success(fmt.Fprint(g.Out, g.Render.RenderCountryDetail(view)))
	}
	return nil
}

func (cmd *ShowCmd) flagGlyphs(ctx context.Context, g *Globals, found []country.Country) map[string]string {
	glyphs := make(map[string]string)
	if cmd.NoFlag || g.Flags == nil {
		return glyphs
	}

	urls := make([]string, 0, len(found))
	for _, c := range found {
		if c.Flag != "" {
			urls = append(urls, c.Flag)
		}
	}
	for url, st := range g.Flags.ProbeAll(ctx, urls) {
		glyphs[url] = st.Glyph()
	}
	return glyphs
}
