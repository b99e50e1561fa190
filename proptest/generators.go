package proptest

import (
	"countries/internal/country"

	"pgregory.net/rapid"
)

const (
	minCountries        = 0
	maxCountries        = 30
	typicalMinCountries = 1
	typicalMaxCountries = 15
)

var (
	regionNames   = []string{"Africa", "Americas", "Antarctic", "Asia", "Europe", "Oceania", "Polar"}
	shortQueryGen = rapid.StringMatching(`[a-z]{1,3}`)
	queryGen      = rapid.StringMatching(`[a-zA-Z ]{0,6}`)
)

func nameGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Z][a-z]{1,8}( [A-Z][a-z]{1,8})?`)
}

func regionGen() *rapid.Generator[string] {
	return rapid.SampledFrom(regionNames)
}

func sortGen() *rapid.Generator[country.SortOption] {
	return rapid.SampledFrom(country.SortOptions)
}

type CountryGenOpt func(*countryGenConfig)

type countryGenConfig struct {
	name   *string
	region *string
}

func WithName(name string) CountryGenOpt {
	return func(c *countryGenConfig) {
		c.name = &name
	}
}

func WithRegion(region string) CountryGenOpt {
	return func(c *countryGenConfig) {
		c.region = &region
	}
}

func GenCountry(t *rapid.T, opts ...CountryGenOpt) country.Country {
	cfg := &countryGenConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var name, region string
	if cfg.name != nil {
		name = *cfg.name
	} else {
		name = nameGen().Draw(t, "name")
	}
	if cfg.region != nil {
		region = *cfg.region
	} else {
		region = regionGen().Draw(t, "region")
	}

	// Small populations make ties common, which is what the stability
	// checks need.
	pop := rapid.Int64Range(0, 50).Draw(t, "population")
	c := country.NewCountry(name, region, pop)
	if rapid.Bool().Draw(t, "hasCapital") {
		c = c.WithCapital(nameGen().Draw(t, "capital"))
	}
	if rapid.Bool().Draw(t, "hasArea") {
		c = c.WithArea(rapid.Float64Range(0, 1e7).Draw(t, "area"))
	}
	return c
}

func countryGen() *rapid.Generator[country.Country] {
	return rapid.Custom(func(t *rapid.T) country.Country {
		return GenCountry(t)
	})
}

// countriesGen yields datasets with unique names.
func countriesGen(minLen, maxLen int) *rapid.Generator[[]country.Country] {
	return rapid.SliceOfNDistinct(countryGen(), minLen, maxLen, func(c country.Country) string {
		return c.Name
	})
}

func queryOf(all []country.Country) *rapid.Generator[country.Query] {
	return rapid.Custom(func(t *rapid.T) country.Query {
		regions := country.Regions(all)
		return country.Query{
			Search: queryGen.Draw(t, "search"),
			Region: rapid.SampledFrom(regions).Draw(t, "region"),
			Sort:   sortGen().Draw(t, "sort"),
		}
	})
}

func malformedJSONGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(""),
		rapid.Just("{}"),
		rapid.Just(`{"name": "Chad"}`),
		rapid.Just("[{"),
		rapid.Just(`[{"name": "Chad", "population": "many"}]`),
		rapid.Just(`[{"name": "", "region": "Africa", "population": 1}]`),
		rapid.Just(`[{"name": "Chad", "region": "Africa", "population": -1}]`),
		rapid.Just(`[{"name": "Chad", "region": "Africa"}, {"name": "Chad", "region": "Africa"}]`),
		rapid.Just("<html>404</html>"),
		rapid.StringMatching(`[a-mo-zA-Z0-9{<"][a-z0-9 ,:{}"]{0,40}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(1, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			// Keep the input from accidentally being a valid empty array.
			bytes[0] = '{'
			return string(bytes)
		}),
	)
}
