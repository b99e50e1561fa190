package proptest

import (
	"countries/internal/country"
	"slices"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func assertCountriesEqual(t *rapid.T, expected, actual []country.Country) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("countries mismatch (-want +got):\n%s", diff)
	}
}

func assertSameNames(t *rapid.T, expected, actual []country.Country) {
	t.Helper()
	less := func(a, b string) bool { return a < b }
	if diff := cmp.Diff(names(expected), names(actual), cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("name set mismatch (-want +got):\n%s", diff)
	}
}

func assertSubset(t *rapid.T, subset, superset []country.Country) {
	t.Helper()
	super := make(map[string]bool)
	for _, c := range superset {
		super[c.Name] = true
	}
	for _, c := range subset {
		if !super[c.Name] {
			t.Fatalf("subset contains %q not in superset", c.Name)
		}
	}
}

func assertSortedBy(t *rapid.T, countries []country.Country, by country.SortOption) {
	t.Helper()
	for i := 0; i < len(countries)-1; i++ {
		a, b := countries[i], countries[i+1]
		var inOrder bool
		switch by {
		case country.SortPopulation:
			inOrder = a.Population >= b.Population
		case country.SortAlphabetical:
			inOrder = a.Name <= b.Name
		default:
			inOrder = true
		}
		if !inOrder {
			t.Fatalf("sort %s violated at positions %d, %d: %q, %q", by, i, i+1, a.Name, b.Name)
		}
	}
}

// assertRelativeOrder checks that the countries of got keep the order they
// have in base.
func assertRelativeOrder(t *rapid.T, base, got []country.Country) {
	t.Helper()
	pos := make(map[string]int, len(base))
	for i, c := range base {
		pos[c.Name] = i
	}
	for i := 0; i < len(got)-1; i++ {
		if pos[got[i].Name] > pos[got[i+1].Name] {
			t.Fatalf("order changed: %q before %q", got[i].Name, got[i+1].Name)
		}
	}
}

func names(countries []country.Country) []string {
	out := make([]string, len(countries))
	for i, c := range countries {
		out[i] = c.Name
	}
	return out
}

func countNamed(countries []country.Country, name string) int {
	return len(slices.DeleteFunc(slices.Clone(countries), func(c country.Country) bool {
		return c.Name != name
	}))
}
