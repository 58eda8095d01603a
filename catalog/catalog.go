// Package catalog keeps the session's movies in insertion order and moves
// them to and from CSV files.
package catalog

import (
	"iter"
	"slices"
	"strings"

	"movieShelf/movie"

	"golang.org/x/text/cases"
)

type Catalog struct {
	movies []*movie.Movie
}

func New() *Catalog {
	return &Catalog{movies: make([]*movie.Movie, 0)}
}

// Add appends m. Titles are not deduplicated.
func (c *Catalog) Add(m *movie.Movie) {
	c.movies = append(c.movies, m)
}

func (c *Catalog) AddAll(movies []*movie.Movie) {
	c.movies = append(c.movies, movies...)
}

func (c *Catalog) Len() int {
	return len(c.movies)
}

func (c *Catalog) IsEmpty() bool {
	return len(c.movies) == 0
}

// All returns the movies in insertion order. The slice is a copy; the
// movies are shared.
func (c *Catalog) All() []*movie.Movie {
	return slices.Clone(c.movies)
}

// FindByTitle returns every movie whose title equals query, ignoring case.
func (c *Catalog) FindByTitle(query string) []*movie.Movie {
	fold := cases.Fold()
	want := fold.String(query)

	var matches []*movie.Movie
	for _, m := range c.movies {
		if fold.String(m.Title) == want {
			matches = append(matches, m)
		}
	}
	return matches
}

// Sorted yields the movies by title, ignoring case, with ties kept in
// insertion order. The order is computed each time the sequence is ranged
// over and the catalog itself is not reordered.
func (c *Catalog) Sorted() iter.Seq[*movie.Movie] {
	return func(yield func(*movie.Movie) bool) {
		for _, m := range SortByTitle(c.movies) {
			if !yield(m) {
				return
			}
		}
	}
}

// SortByTitle returns a sorted copy of movies.
func SortByTitle(movies []*movie.Movie) []*movie.Movie {
	fold := cases.Fold()
	keys := make(map[*movie.Movie]string, len(movies))
	for _, m := range movies {
		keys[m] = fold.String(m.Title)
	}

	sorted := slices.Clone(movies)
	slices.SortStableFunc(sorted, func(a, b *movie.Movie) int {
		return strings.Compare(keys[a], keys[b])
	})
	return sorted
}
