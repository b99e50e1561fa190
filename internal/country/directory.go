package country

import (
	"context"
	"errors"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound       = errors.New("country not found")
	ErrUnknownCountry = errors.New("country is not in the directory")
	ErrNotLoaded      = errors.New("countries have not been loaded")
)

// Source delivers the full country dataset.
type Source interface {
	Fetch(ctx context.Context) ([]Country, error)
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(ctx context.Context) ([]Country, error)

func (f SourceFunc) Fetch(ctx context.Context) ([]Country, error) {
	return f(ctx)
}

type LoadState int

const (
	NotLoaded LoadState = iota
	Loading
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "not loaded"
	}
}

// Directory owns the loaded countries, the session favorites and the
// current query. The country list is only ever replaced wholesale by Load.
type Directory struct {
	mu        sync.RWMutex
	all       []Country
	favorites Favorites
	query     Query
	state     LoadState
	err       error

	loads singleflight.Group
}

func NewDirectory() *Directory {
	return &Directory{
		all:   []Country{},
		query: DefaultQuery(),
	}
}

// Load fetches the dataset from src. Callers arriving while a fetch is in
// flight share its result. A failed load keeps the previous countries.
func (d *Directory) Load(ctx context.Context, src Source) error {
	_, err, _ := d.loads.Do("load", func() (any, error) {
		d.mu.Lock()
		d.state = Loading
		d.mu.Unlock()

		countries, err := src.Fetch(ctx)
		d.complete(countries, err)
		return nil, err
	})
	return err
}

func (d *Directory) complete(countries []Country, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err != nil {
		d.state = Failed
		d.err = err
		return
	}

	if countries == nil {
		countries = []Country{}
	}
	d.all = slices.Clone(countries)
	d.state = Loaded
	d.err = nil
}

func (d *Directory) State() LoadState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// Err returns the error of the last failed load.
func (d *Directory) Err() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.err
}

func (d *Directory) All() []Country {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.all)
}

func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.all)
}

func (d *Directory) Get(name string) (Country, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.getUnlocked(name)
}

func (d *Directory) getUnlocked(name string) (Country, error) {
	i := slices.IndexFunc(d.all, func(c Country) bool { return c.Name == name })
	if i < 0 {
		return Country{}, ErrNotFound
	}
	return d.all[i], nil
}

func (d *Directory) Find(query string) []Country {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Find(d.all, query)
}

func (d *Directory) Query() Query {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.query
}

func (d *Directory) SetQuery(q Query) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.query = q.Normalize()
}

// Visible applies the current query to the loaded countries.
func (d *Directory) Visible() []Country {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Visible(d.all, d.query)
}

func (d *Directory) Regions() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Regions(d.all)
}

func (d *Directory) TopPopulation() []PopulationEntry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return TopPopulation(d.all)
}

func (d *Directory) TopRegions() []RegionCount {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return TopRegionsByCount(d.all)
}

func (d *Directory) Favorites() Favorites {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.favorites)
}

func (d *Directory) IsFavorite(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.favorites.Contains(Country{Name: name})
}

// ToggleFavorite flips the favorite membership of the named country and
// reports whether it is now a favorite. Favorites that have already been
// added can always be removed, even after a reload dropped the country.
func (d *Directory) ToggleFavorite(name string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	probe := Country{Name: name}
	if d.favorites.Contains(probe) {
		d.favorites = d.favorites.Toggle(probe)
		return false, nil
	}

	c, err := d.getUnlocked(name)
	if err != nil {
		if len(d.all) == 0 && d.state != Loaded {
			return false, ErrNotLoaded
		}
		return false, ErrUnknownCountry
	}
	d.favorites = d.favorites.Toggle(c)
	return true, nil
}
