package country

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Worldwide is the region option meaning "no region restriction".
const Worldwide = "Worldwide"

var ErrUnknownSort = errors.New("unknown sort option")

type SortOption string

const (
	SortAlphabetical SortOption = "alphabetical"
	SortPopulation   SortOption = "population"
	SortRegion       SortOption = "region"
)

var SortOptions = []SortOption{SortAlphabetical, SortPopulation, SortRegion}

func ParseSortOption(s string) (SortOption, error) {
	opt := SortOption(strings.ToLower(strings.TrimSpace(s)))
	if opt == "" {
		return SortAlphabetical, nil
	}
	if !slices.Contains(SortOptions, opt) {
		return "", fmt.Errorf("%w: %q", ErrUnknownSort, s)
	}
	return opt, nil
}

// Label is the display name of the option.
func (o SortOption) Label() string {
	switch o {
	case SortPopulation:
		return "Population"
	case SortRegion:
		return "Region"
	default:
		return "Alphabetical"
	}
}

// Query is the transient filter state of a directory view.
type Query struct {
	Search string     `json:"search" yaml:"search"`
	Region string     `json:"region" yaml:"region"`
	Sort   SortOption `json:"sort" yaml:"sort"`
}

func DefaultQuery() Query {
	return Query{Region: Worldwide, Sort: SortAlphabetical}
}

func (q Query) Normalize() Query {
	if q.Region == "" {
		q.Region = Worldwide
	}
	if q.Sort == "" {
		q.Sort = SortAlphabetical
	}
	return q
}

func (q Query) regionFilterActive() bool {
	return q.Sort == SortRegion && q.Region != "" && q.Region != Worldwide
}

// Visible returns the countries to display for q. The input is never
// modified and the result is never nil.
func Visible(all []Country, q Query) []Country {
	results := make([]Country, 0, len(all))
	search := strings.ToLower(q.Search)

	for _, c := range all {
		if matches(c, q, search) {
			results = append(results, c)
		}
	}

	sortCountries(results, q.Sort)
	return results
}

func matches(c Country, q Query, search string) bool {
	if q.regionFilterActive() && c.Region != q.Region {
		return false
	}
	if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
		return false
	}
	return true
}

func sortCountries(countries []Country, by SortOption) {
	switch by {
	case SortAlphabetical:
		sort.SliceStable(countries, func(i, j int) bool {
			return countries[i].Name < countries[j].Name
		})
	case SortPopulation:
		sortByPopulation(countries)
	}
}

func sortByPopulation(countries []Country) {
	sort.SliceStable(countries, func(i, j int) bool {
		return countries[i].Population > countries[j].Population
	})
}

// Regions returns the region picker options: Worldwide followed by the
// sorted distinct regions of all.
func Regions(all []Country) []string {
	seen := make(map[string]bool)
	var regions []string
	for _, c := range all {
		if !seen[c.Region] {
			seen[c.Region] = true
			regions = append(regions, c.Region)
		}
	}
	sort.Strings(regions)
	return append([]string{Worldwide}, regions...)
}

// Find returns countries whose name contains query, case-insensitively. An
// exact (case-insensitive) name match wins over partial matches.
func Find(all []Country, query string) []Country {
	q := strings.ToLower(strings.TrimSpace(query))
	var partial []Country
	for _, c := range all {
		name := strings.ToLower(c.Name)
		if name == q {
			return []Country{c}
		}
		if strings.Contains(name, q) {
			partial = append(partial, c)
		}
	}
	return partial
}
