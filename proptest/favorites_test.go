package proptest

import (
	"countries/internal/country"
	"slices"
	"testing"

	"pgregory.net/rapid"
)

// Membership after a sequence of toggles is the parity of how often each
// country was toggled.
func TestProperty_Favorites_ToggleParity(t *testing.T) {
	RunBasic(t, typicalMinCountries, typicalMaxCountries, func(h *Harness) {
		ops := rapid.SliceOfN(rapid.SampledFrom(h.Countries), 0, 40).Draw(h.T, "toggles")

		var favs country.Favorites
		toggles := make(map[string]int)
		for _, c := range ops {
			favs = favs.Toggle(c)
			toggles[c.Name]++
		}

		for _, c := range h.Countries {
			want := toggles[c.Name]%2 == 1
			if favs.Contains(c) != want {
				h.T.Fatalf("%q toggled %d times, Contains=%v", c.Name, toggles[c.Name], favs.Contains(c))
			}
			if n := countNamed(favs, c.Name); n > 1 {
				h.T.Fatalf("%q appears %d times", c.Name, n)
			}
		}
	})
}

func TestProperty_Favorites_ToggleTwiceRestores(t *testing.T) {
	RunBasic(t, typicalMinCountries, typicalMaxCountries, func(h *Harness) {
		start := rapid.SliceOfDistinct(rapid.SampledFrom(h.Countries), func(c country.Country) string {
			return c.Name
		}).Draw(h.T, "start")
		favs := country.Favorites(start)
		c := rapid.SampledFrom(h.Countries).Draw(h.T, "country")

		got := favs.Toggle(c).Toggle(c)

		if favs.Contains(c) {
			// Removing and re-adding moves the country to the end.
			want := append(slices.DeleteFunc(slices.Clone(favs), c.SameAs), c)
			assertCountriesEqual(h.T, want, got)
			return
		}
		assertCountriesEqual(h.T, favs, got)
	})
}

func TestProperty_Favorites_ToggleDoesNotMutate(t *testing.T) {
	RunBasic(t, typicalMinCountries, typicalMaxCountries, func(h *Harness) {
		start := rapid.SliceOfDistinct(rapid.SampledFrom(h.Countries), func(c country.Country) string {
			return c.Name
		}).Draw(h.T, "start")
		favs := country.Favorites(start)
		before := slices.Clone(favs)

		_ = favs.Toggle(rapid.SampledFrom(h.Countries).Draw(h.T, "country"))

		assertCountriesEqual(h.T, before, favs)
	})
}
