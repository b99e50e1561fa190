package country

import "slices"

// Favorites is an ordered set of countries, distinct by name.
type Favorites []Country

// Toggle removes c when present, otherwise appends it. The receiver is
// never modified.
func (f Favorites) Toggle(c Country) Favorites {
	if f.Contains(c) {
		return slices.DeleteFunc(slices.Clone(f), c.SameAs)
	}
	next := make(Favorites, len(f), len(f)+1)
	copy(next, f)
	return append(next, c)
}

func (f Favorites) Contains(c Country) bool {
	return slices.ContainsFunc(f, c.SameAs)
}

func (f Favorites) Names() []string {
	names := make([]string, len(f))
	for i, c := range f {
		names[i] = c.Name
	}
	return names
}
