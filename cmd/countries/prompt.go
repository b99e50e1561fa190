package main

import (
	"context"
	"countries/internal/country"
	"countries/internal/ui"
	"strings"

	"github.com/charmbracelet/huh"
)

type action string

const (
	actionList      action = "list"
	actionQuery     action = "query"
	actionToggle    action = "toggle"
	actionFavorites action = "favorites"
	actionCharts    action = "charts"
	actionQuit      action = "quit"
)

// Prompter asks the user for the next step of a browse session.
type Prompter interface {
	Action(ctx context.Context) (action, error)
	Query(ctx context.Context, current country.Query, regions []string) (country.Query, error)
	Country(ctx context.Context, names []string) (string, error)
}

type huhPrompter struct{}

func (huhPrompter) Action(ctx context.Context) (action, error) {
	choice := actionList
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[action]().
				Title("Countries").
				Options(
					huh.NewOption("List countries", actionList),
					huh.NewOption("Search and sort", actionQuery),
					huh.NewOption("Add to or remove from favorites", actionToggle),
					huh.NewOption("Favorites", actionFavorites),
					huh.NewOption("Charts", actionCharts),
					huh.NewOption("Quit", actionQuit),
				).
				Value(&choice),
		),
	).WithTheme(ui.Theme())

	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}
	return choice, nil
}

func (huhPrompter) Query(ctx context.Context, current country.Query, regions []string) (country.Query, error) {
	sort := current.Sort
	region := current.Region
	search := current.Search

	sortOptions := make([]huh.Option[country.SortOption], len(country.SortOptions))
	for i, o := range country.SortOptions {
		sortOptions[i] = huh.NewOption(o.Label(), o)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[country.SortOption]().
				Title("Sort").
				Options(sortOptions...).
				Value(&sort),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Region").
				Options(huh.NewOptions(regions...)...).
				Value(&region),
		).WithHideFunc(func() bool { return sort != country.SortRegion }),
		huh.NewGroup(
			huh.NewInput().
				Title("Search").
				Placeholder("Search").
				Value(&search),
		),
	).WithTheme(ui.Theme())

	if err := form.RunWithContext(ctx); err != nil {
		return current, err
	}
	return country.Query{Search: strings.TrimSpace(search), Region: region, Sort: sort}, nil
}

func (huhPrompter) Country(ctx context.Context, names []string) (string, error) {
	var name string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Country").
				Options(huh.NewOptions(names...)...).
				Height(12).
				Filtering(true).
				Value(&name),
		),
	).WithTheme(ui.Theme())

	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}
	return name, nil
}
