package proptest

import (
	"countries/internal/country"
	"strings"

	"pgregory.net/rapid"
)

const (
	InvVisibleSubset       = "visible-subset"
	InvVisibleMatches      = "visible-matches-query"
	InvFavoritesUnique     = "favorites-unique"
	InvFavoritesKnown      = "favorites-known"
	InvChartBounded        = "chart-bounded"
	InvCountEqualsAllLen   = "count-equals-all"
	InvRegionsStartWithAll = "regions-start-worldwide"
)

// verifyDirectoryInvariants checks what must hold after any sequence of
// directory operations.
func verifyDirectoryInvariants(t *rapid.T, dir *country.Directory) {
	all := dir.All()
	if dir.Count() != len(all) {
		t.Fatalf("[%s] violated: Count()=%d but len(All())=%d", InvCountEqualsAllLen, dir.Count(), len(all))
	}

	q := dir.Query()
	visible := dir.Visible()
	assertSubset(t, visible, all)
	search := strings.ToLower(q.Search)
	for _, c := range visible {
		if !strings.Contains(strings.ToLower(c.Name), search) {
			t.Fatalf("[%s] violated: %q does not contain %q", InvVisibleMatches, c.Name, q.Search)
		}
		if q.Sort == country.SortRegion && q.Region != country.Worldwide && c.Region != q.Region {
			t.Fatalf("[%s] violated: %q is in %q, want %q", InvVisibleMatches, c.Name, c.Region, q.Region)
		}
	}

	favs := dir.Favorites()
	for _, f := range favs {
		if n := countNamed(favs, f.Name); n != 1 {
			t.Fatalf("[%s] violated: %q appears %d times", InvFavoritesUnique, f.Name, n)
		}
		if countNamed(all, f.Name) != 1 {
			t.Fatalf("[%s] violated: favorite %q is not loaded", InvFavoritesKnown, f.Name)
		}
	}

	if n := len(dir.TopPopulation()); n > country.ChartSize {
		t.Fatalf("[%s] violated: population chart has %d entries", InvChartBounded, n)
	}
	if n := len(dir.TopRegions()); n > country.ChartSize {
		t.Fatalf("[%s] violated: region chart has %d entries", InvChartBounded, n)
	}

	if regions := dir.Regions(); len(regions) == 0 || regions[0] != country.Worldwide {
		t.Fatalf("[%s] violated: got %v", InvRegionsStartWithAll, regions)
	}
}
