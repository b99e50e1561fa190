package country_test

import (
	"context"
	"countries/internal/country"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticSource(countries []country.Country) country.Source {
	return country.SourceFunc(func(context.Context) ([]country.Country, error) {
		return countries, nil
	})
}

func failingSource(err error) country.Source {
	return country.SourceFunc(func(context.Context) ([]country.Country, error) {
		return nil, err
	})
}

func newLoadedDirectory(t *testing.T) *country.Directory {
	t.Helper()
	d := country.NewDirectory()
	require.NoError(t, d.Load(context.Background(), staticSource(sampleCountries())))
	return d
}

func TestDirectory_Load(t *testing.T) {
	t.Run("starts not loaded and empty", func(t *testing.T) {
		d := country.NewDirectory()

		assert.Equal(t, country.NotLoaded, d.State())
		assert.Empty(t, d.All())
		assert.Equal(t, country.DefaultQuery(), d.Query())
	})

	t.Run("successful load replaces countries", func(t *testing.T) {
		d := newLoadedDirectory(t)

		assert.Equal(t, country.Loaded, d.State())
		assert.NoError(t, d.Err())
		assert.Equal(t, 3, d.Count())
	})

	t.Run("reload replaces countries wholesale", func(t *testing.T) {
		d := newLoadedDirectory(t)

		err := d.Load(context.Background(), staticSource([]country.Country{country.NewCountry("Fiji", "Oceania", 1)}))

		require.NoError(t, err)
		assert.Equal(t, []string{"Fiji"}, names(d.All()))
	})

	t.Run("failed load keeps previous countries", func(t *testing.T) {
		d := newLoadedDirectory(t)
		boom := errors.New("boom")

		err := d.Load(context.Background(), failingSource(boom))

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, country.Failed, d.State())
		assert.ErrorIs(t, d.Err(), boom)
		assert.Equal(t, 3, d.Count())
	})

	t.Run("nil dataset is treated as no countries", func(t *testing.T) {
		d := country.NewDirectory()

		require.NoError(t, d.Load(context.Background(), staticSource(nil)))

		assert.Equal(t, country.Loaded, d.State())
		assert.NotNil(t, d.All())
		assert.Empty(t, d.Visible())
	})

	t.Run("reports loading while fetch is in flight", func(t *testing.T) {
		d := country.NewDirectory()
		release := make(chan struct{})
		started := make(chan struct{})
		src := country.SourceFunc(func(context.Context) ([]country.Country, error) {
			close(started)
			<-release
			return sampleCountries(), nil
		})

		done := make(chan error, 1)
		go func() { done <- d.Load(context.Background(), src) }()

		<-started
		assert.Equal(t, country.Loading, d.State())
		close(release)
		require.NoError(t, <-done)
		assert.Equal(t, country.Loaded, d.State())
	})

	t.Run("concurrent loads share one fetch", func(t *testing.T) {
		d := country.NewDirectory()
		var calls atomic.Int32
		release := make(chan struct{})
		started := make(chan struct{})
		src := country.SourceFunc(func(context.Context) ([]country.Country, error) {
			if calls.Add(1) == 1 {
				close(started)
			}
			<-release
			return sampleCountries(), nil
		})

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, d.Load(context.Background(), src))
		}()
		<-started

		const followers = 5
		wg.Add(followers)
		for range followers {
			go func() {
				defer wg.Done()
				assert.NoError(t, d.Load(context.Background(), src))
			}()
		}

		close(release)
		wg.Wait()

		assert.LessOrEqual(t, calls.Load(), int32(1+followers))
		assert.Equal(t, 3, d.Count())
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		d := newLoadedDirectory(t)

		all := d.All()
		all[0].Name = "Mutated"

		_, err := d.Get("Aland")
		assert.NoError(t, err)
	})
}

func TestDirectory_Query(t *testing.T) {
	t.Run("visible applies current query", func(t *testing.T) {
		d := newLoadedDirectory(t)

		d.SetQuery(country.Query{Sort: country.SortPopulation})

		assert.Equal(t, []string{"Chad", "Benin", "Aland"}, names(d.Visible()))
	})

	t.Run("set query normalizes region", func(t *testing.T) {
		d := newLoadedDirectory(t)

		d.SetQuery(country.Query{Sort: country.SortRegion})

		assert.Equal(t, country.Worldwide, d.Query().Region)
		assert.Len(t, d.Visible(), 3)
	})

	t.Run("regions include worldwide", func(t *testing.T) {
		d := newLoadedDirectory(t)

		assert.Equal(t, []string{"Worldwide", "Africa", "Europe"}, d.Regions())
	})
}

func TestDirectory_ToggleFavorite(t *testing.T) {
	t.Run("adds then removes favorite", func(t *testing.T) {
		d := newLoadedDirectory(t)

		on, err := d.ToggleFavorite("Chad")
		require.NoError(t, err)
		assert.True(t, on)
		assert.True(t, d.IsFavorite("Chad"))

		on, err = d.ToggleFavorite("Chad")
		require.NoError(t, err)
		assert.False(t, on)
		assert.False(t, d.IsFavorite("Chad"))
		assert.Empty(t, d.Favorites())
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		d := newLoadedDirectory(t)

		for _, name := range []string{"Chad", "Aland", "Benin"} {
			_, err := d.ToggleFavorite(name)
			require.NoError(t, err)
		}

		assert.Equal(t, []string{"Chad", "Aland", "Benin"}, d.Favorites().Names())
	})

	t.Run("rejects unknown country", func(t *testing.T) {
		d := newLoadedDirectory(t)

		_, err := d.ToggleFavorite("Atlantis")

		assert.ErrorIs(t, err, country.ErrUnknownCountry)
		assert.Empty(t, d.Favorites())
	})

	t.Run("rejects toggle before load", func(t *testing.T) {
		d := country.NewDirectory()

		_, err := d.ToggleFavorite("Chad")

		assert.ErrorIs(t, err, country.ErrNotLoaded)
	})

	t.Run("favorite survives reload and can still be removed", func(t *testing.T) {
		d := newLoadedDirectory(t)
		_, err := d.ToggleFavorite("Chad")
		require.NoError(t, err)

		require.NoError(t, d.Load(context.Background(), staticSource([]country.Country{country.NewCountry("Fiji", "Oceania", 1)})))

		assert.True(t, d.IsFavorite("Chad"))
		on, err := d.ToggleFavorite("Chad")
		require.NoError(t, err)
		assert.False(t, on)
	})

	t.Run("does not change countries", func(t *testing.T) {
		d := newLoadedDirectory(t)

		_, err := d.ToggleFavorite("Chad")
		require.NoError(t, err)

		assert.Equal(t, []string{"Aland", "Benin", "Chad"}, names(d.All()))
	})
}

func TestDirectory_Charts(t *testing.T) {
	t.Run("charts ignore query state", func(t *testing.T) {
		d := newLoadedDirectory(t)
		d.SetQuery(country.Query{Search: "zzz", Sort: country.SortRegion, Region: "Europe"})

		assert.Len(t, d.TopPopulation(), 3)
		assert.Equal(t, []country.RegionCount{{Region: "Africa", Count: 2}, {Region: "Europe", Count: 1}}, d.TopRegions())
	})
}

func TestDirectory_ConcurrentAccess(t *testing.T) {
	d := newLoadedDirectory(t)

	const numGoroutines = 100
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()

			switch id % 4 {
			case 0:
				assert.Len(t, d.All(), 3)
			case 1:
				d.Visible()
			case 2:
				assert.Len(t, d.TopPopulation(), 3)
			case 3:
				d.Find("a")
			}
		}(i)
	}

	wg.Wait()
	assert.Equal(t, 3, d.Count())
}
