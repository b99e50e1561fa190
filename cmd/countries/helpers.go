package main

import (
	"countries/internal/country"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

type AmbiguousMatchError struct {
	Query   string
	Matches []country.Country
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("multiple countries match %q", e.Query)
}

func (e *AmbiguousMatchError) WriteMatches(w io.Writer) {
	fmt.Fprintln(w, "Multiple countries match. Please be more specific:")
	for _, c := range e.Matches {
		fmt.Fprintf(w, "  - %s (%s)\n", c.Name, c.Region)
	}
}

func handleFindError(w io.Writer, err error) bool {
	var ambErr *AmbiguousMatchError
	if errors.As(err, &ambErr) {
		ambErr.WriteMatches(w)
		return true
	}
	return false
}

func findCountry(dir *country.Directory, query string) (country.Country, error) {
	matches := dir.Find(query)
	if len(matches) == 0 {
		return country.Country{}, fmt.Errorf("no country found matching: %s", query)
	}
	if len(matches) > 1 {
		return country.Country{}, &AmbiguousMatchError{Query: query, Matches: matches}
	}
	return matches[0], nil
}

var errUnknownRegion = errors.New("unknown region")

func validateRegion(dir *country.Directory, region string) error {
	regions := dir.Regions()
	if slices.Contains(regions, region) {
		return nil
	}
	return fmt.Errorf("%w %q (available: %s)", errUnknownRegion, region, strings.Join(regions, ", "))
}
