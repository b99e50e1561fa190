package main

import (
	"context"
	"countries/cmd/countries/render"
	"countries/internal/ui"
	"countries/internal/util"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"go.uber.org/zap"
)

// BrowseCmd runs an interactive session. Favorites live only as long as
// the session.
type BrowseCmd struct{}

func (cmd *BrowseCmd) Run(ctx context.Context, g *Globals) error {
	if err := g.load(ctx); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		next, err := g.Prompt.Action(ctx)
		if err != nil {
			return handleFormError(err)
		}
		g.logger().Debug("Browse action", zap.String("action", string(next)))

		switch next {
		case actionList:
			cmd.list(g)
		case actionQuery:
			if err := cmd.query(ctx, g); err != nil {
				return handleFormError(err)
			}
		case actionToggle:
			if err := cmd.toggle(ctx, g); err != nil {
				return handleFormError(err)
			}
		case actionFavorites:
			cmd.favorites(g)
		case actionCharts:
			view := render.ChartsView{Population: g.Dir.TopPopulation(), Regions: g.Dir.TopRegions()}
			assert.Success(fmt.Fprint(g.Out, g.Render.RenderCharts(view)))
		default:
			return nil
		}
	}
}

func (cmd *BrowseCmd) list(g *Globals) {
	view := render.NewCountryListView(g.Dir.Visible(), g.Dir.Favorites())
	assert.Success(fmt.Fprint(g.Out, g.Render.RenderCountryList(view)))
}

func (cmd *BrowseCmd) favorites(g *Globals) {
	favs := g.Dir.Favorites()
	if len(favs) == 0 {
		fmt.Fprintln(g.Out, ui.NoFavoritesMessage)
		return
	}
	view := render.NewCountryListView(favs, favs)
	assert.Success(fmt.Fprint(g.Out, g.Render.RenderCountryList(view)))
}

func (cmd *BrowseCmd) query(ctx context.Context, g *Globals) error {
	q, err := g.Prompt.Query(ctx, g.Dir.Query(), g.Dir.Regions())
	if err != nil {
		return err
	}
	g.Dir.SetQuery(q)

	assert.Success(fmt.Fprint(g.Out, ui.RenderPanel("Browse countries", ui.QueryFields(g.Dir.Query()))))
	cmd.list(g)
	return nil
}

func (cmd *BrowseCmd) toggle(ctx context.Context, g *Globals) error {
	visible := g.Dir.Visible()
	if len(visible) == 0 {
		fmt.Fprintln(g.Out, "No countries found.")
		return nil
	}

	names := make([]string, len(visible))
	for i, c := range visible {
		names[i] = c.Name
	}

	name, err := g.Prompt.Country(ctx, names)
	if err != nil {
		return err
	}

	added, err := g.Dir.ToggleFavorite(name)
	if err != nil {
		return err
	}
	if added {
		fmt.Fprintf(g.Out, "Added to Favorites: %s\n", name)
	} else {
		fmt.Fprintf(g.Out, "Removed from Favorites: %s\n", name)
	}
	return nil
}

func handleFormError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
