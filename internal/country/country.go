package country

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyName          = errors.New("country name cannot be empty")
	ErrEmptyRegion        = errors.New("country region cannot be empty")
	ErrNegativePopulation = errors.New("country population cannot be negative")
	ErrNegativeArea       = errors.New("country area cannot be negative")
	ErrDuplicateName      = errors.New("duplicate country name")
)

// Country is one record of the dataset. Two countries are the same entity
// iff their names are equal.
type Country struct {
	Name       string   `json:"name" yaml:"name"`
	Capital    *string  `json:"capital,omitempty" yaml:"capital,omitempty"`
	Languages  []string `json:"languages" yaml:"languages"`
	Population int64    `json:"population" yaml:"population"`
	Flag       string   `json:"flag" yaml:"flag"`
	Region     string   `json:"region" yaml:"region"`
	Area       *float64 `json:"area,omitempty" yaml:"area,omitempty"`
}

func NewCountry(name, region string, population int64) Country {
	return Country{
		Name:       name,
		Region:     region,
		Population: population,
		Languages:  []string{},
	}
}

func (c Country) WithCapital(capital string) Country {
	newC := c
	newC.Capital = &capital
	return newC
}

func (c Country) WithArea(area float64) Country {
	newC := c
	newC.Area = &area
	return newC
}

func (c Country) WithLanguages(languages ...string) Country {
	newC := c
	newC.Languages = append([]string{}, languages...)
	return newC
}

func (c Country) WithFlag(url string) Country {
	newC := c
	newC.Flag = url
	return newC
}

// SameAs reports whether c and other are the same entity.
func (c Country) SameAs(other Country) bool {
	return c.Name == other.Name
}

// CapitalOr returns the capital, or fallback when it is unknown.
func (c Country) CapitalOr(fallback string) string {
	if c.Capital == nil {
		return fallback
	}
	return *c.Capital
}

func (c Country) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(c.Region) == "" {
		return fmt.Errorf("%w: %q", ErrEmptyRegion, c.Name)
	}
	if c.Population < 0 {
		return fmt.Errorf("%w: %q has %d", ErrNegativePopulation, c.Name, c.Population)
	}
	if c.Area != nil && *c.Area < 0 {
		return fmt.Errorf("%w: %q has %g", ErrNegativeArea, c.Name, *c.Area)
	}
	return nil
}

// ValidateAll checks every country and rejects duplicate names.
func ValidateAll(countries []Country) error {
	seen := make(map[string]bool, len(countries))
	for i, c := range countries {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("country %d: %w", i, err)
		}
		if seen[c.Name] {
			return fmt.Errorf("country %d: %w: %q", i, ErrDuplicateName, c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}
