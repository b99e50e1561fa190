package render

import "countries/internal/country"

type Renderer interface {
	RenderCountryList(view CountryListView) string
	RenderCountryDetail(view CountryDetailView) string
	RenderCharts(view ChartsView) string
}

type CountryListView struct {
	Items []CountryListItem
}

type CountryListItem struct {
	Name       string
	Region     string
	Population int64
	Favorite   bool
}

func (v CountryListView) IsEmpty() bool {
	return len(v.Items) == 0
}

// NewCountryListView marks the items whose name is in favorites.
func NewCountryListView(countries []country.Country, favorites country.Favorites) CountryListView {
	items := make([]CountryListItem, len(countries))
	for i, c := range countries {
		items[i] = CountryListItem{
			Name:       c.Name,
			Region:     c.Region,
			Population: c.Population,
			Favorite:   favorites.Contains(c),
		}
	}
	return CountryListView{Items: items}
}

type CountryDetailView struct {
	Country   country.Country
	Favorite  bool
	FlagGlyph string
}

type ChartsView struct {
	Population []country.PopulationEntry
	Regions    []country.RegionCount
}

func (v ChartsView) IsEmpty() bool {
	return len(v.Population) == 0 && len(v.Regions) == 0
}
