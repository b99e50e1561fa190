package proptest

import (
	"context"
	"countries/internal/country"
	"testing"

	"pgregory.net/rapid"
)

type Harness struct {
	T         *rapid.T
	Countries []country.Country
}

func (h *Harness) GenCountry(opts ...CountryGenOpt) country.Country {
	return GenCountry(h.T, opts...)
}

func (h *Harness) GenQuery() country.Query {
	return queryOf(h.Countries).Draw(h.T, "query")
}

type DirectoryHarness struct {
	Harness
	Directory *country.Directory
}

// MustAddCountry appends a country with a fresh name and reloads the
// directory with the grown dataset.
func (h *DirectoryHarness) MustAddCountry(opts ...CountryGenOpt) country.Country {
	return h.AddCountry(h.T, opts...)
}

// AddCountry is MustAddCountry drawing from t, for use inside state
// machine actions.
func (h *DirectoryHarness) AddCountry(t *rapid.T, opts ...CountryGenOpt) country.Country {
	c := GenCountry(t, opts...)
	for _, existing := range h.Countries {
		if existing.SameAs(c) {
			t.Skip("generated a duplicate name")
		}
	}
	h.Countries = append(h.Countries, c)
	h.reload()
	return c
}

func (h *DirectoryHarness) reload() {
	src := country.SourceFunc(func(context.Context) ([]country.Country, error) {
		return h.Countries, nil
	})
	if err := h.Directory.Load(context.Background(), src); err != nil {
		h.T.Fatalf("failed to load directory: %v", err)
	}
}

func RunWithDirectory(t *testing.T, minLen, maxLen int, fn func(h *DirectoryHarness)) {
	rapid.Check(t, func(rt *rapid.T) {
		harness := &DirectoryHarness{
			Harness: Harness{
				T:         rt,
				Countries: countriesGen(minLen, maxLen).Draw(rt, "countries"),
			},
			Directory: country.NewDirectory(),
		}
		harness.reload()

		fn(harness)
	})
}

func RunBasic(t *testing.T, minLen, maxLen int, fn func(h *Harness)) {
	rapid.Check(t, func(rt *rapid.T) {
		harness := &Harness{
			T:         rt,
			Countries: countriesGen(minLen, maxLen).Draw(rt, "countries"),
		}

		fn(harness)
	})
}
