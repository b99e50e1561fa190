package country

import (
	"slices"
	"sort"
)

// ChartSize is the number of entries shown by each chart.
const ChartSize = 5

type PopulationEntry struct {
	Name       string `json:"name" yaml:"name"`
	Population int64  `json:"population" yaml:"population"`
}

type RegionCount struct {
	Region string `json:"region" yaml:"region"`
	Count  int    `json:"count" yaml:"count"`
}

// TopPopulation returns the ChartSize most populated countries.
func TopPopulation(all []Country) []PopulationEntry {
	return TopByPopulation(all, ChartSize)
}

// TopByPopulation returns the n most populated countries in descending
// order. Ties keep their load order.
func TopByPopulation(all []Country, n int) []PopulationEntry {
	sorted := slices.Clone(all)
	sortByPopulation(sorted)

	n = max(0, min(n, len(sorted)))
	entries := make([]PopulationEntry, n)
	for i, c := range sorted[:n] {
		entries[i] = PopulationEntry{Name: c.Name, Population: c.Population}
	}
	return entries
}

// RegionCounts partitions all by region.
func RegionCounts(all []Country) map[string]int {
	counts := make(map[string]int)
	for _, c := range all {
		counts[c.Region]++
	}
	return counts
}

// TopRegionsByCount returns the ChartSize regions with the most countries.
func TopRegionsByCount(all []Country) []RegionCount {
	return TopRegions(all, ChartSize)
}

// TopRegions picks the n regions with the highest country count (ties by
// region name) and returns them ordered by region name.
func TopRegions(all []Country, n int) []RegionCount {
	counts := RegionCounts(all)
	ranked := make([]RegionCount, 0, len(counts))
	for region, count := range counts {
		ranked = append(ranked, RegionCount{Region: region, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Region < ranked[j].Region
	})

	top := ranked[:max(0, min(n, len(ranked)))]
	sort.Slice(top, func(i, j int) bool {
		return top[i].Region < top[j].Region
	})
	return top
}
