// Package artist holds the artist value type and the derived display list
// shown by the Artists screen.
package artist

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Artist is a library artist as seen by the browser.
type Artist struct {
	ID   int64
	Name string
}

// Display derives the list to render from the source artists.
//
// A non-empty query keeps the artists whose name contains it, ignoring case,
// in source order. Without a query the source order is kept when ascending,
// otherwise artists are sorted by name descending. The input is never mutated.
func Display(artists []Artist, query string, ascending bool) []Artist {
	if query != "" {
		return Filter(artists, query)
	}
	if ascending {
		return artists
	}
	return SortedDescending(artists)
}

// Filter returns the artists whose name contains query, ignoring case.
// Both sides are case folded, so final sigma matches capital sigma.
func Filter(artists []Artist, query string) []Artist {
	fold := cases.Fold()
	needle := fold.String(query)
	result := make([]Artist, 0, len(artists))
	for _, a := range artists {
		if strings.Contains(fold.String(a.Name), needle) {
			result = append(result, a)
		}
	}
	return result
}

// SortedDescending returns a copy of artists ordered by name, Z to A.
// Artists sharing a name keep their relative order.
func SortedDescending(artists []Artist) []Artist {
	result := slices.Clone(artists)
	slices.SortStableFunc(result, func(a, b Artist) int {
		return strings.Compare(b.Name, a.Name)
	})
	return result
}

// IndexOf returns the position of the artist with the given ID, or -1.
func IndexOf(artists []Artist, id int64) int {
	return slices.IndexFunc(artists, func(a Artist) bool { return a.ID == id })
}
