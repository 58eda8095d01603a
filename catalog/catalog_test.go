package catalog

import (
	"testing"

	"movieShelf/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMovie(t *testing.T, title string) *movie.Movie {
	t.Helper()
	m, err := movie.New(title, "Drama", "2000", "100", "7.5", "Someone")
	require.NoError(t, err)
	return m
}

func titles(movies []*movie.Movie) []string {
	out := make([]string, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.Title)
	}
	return out
}

func sortedTitles(c *Catalog) []string {
	var out []string
	for m := range c.Sorted() {
		out = append(out, m.Title)
	}
	return out
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	c := New()
	assert.True(t, c.IsEmpty())

	c.Add(newMovie(t, "Zodiac"))
	c.Add(newMovie(t, "Amelie"))
	c.Add(newMovie(t, "Zodiac"))

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"Zodiac", "Amelie", "Zodiac"}, titles(c.All()))
}

func TestAllReturnsCopy(t *testing.T) {
	c := New()
	c.Add(newMovie(t, "One"))

	all := c.All()
	all[0] = newMovie(t, "Other")

	assert.Equal(t, []string{"One"}, titles(c.All()))
}

func TestFindByTitle(t *testing.T) {
	c := New()
	matrix := newMovie(t, "the matrix")
	c.Add(newMovie(t, "The Matrix Reloaded"))
	c.Add(matrix)

	got := c.FindByTitle("The Matrix")
	require.Len(t, got, 1)
	assert.Same(t, matrix, got[0])

	assert.Empty(t, c.FindByTitle("Matrix"))
	assert.Empty(t, c.FindByTitle("the matrix "))
}

func TestFindByTitleReturnsAllDuplicates(t *testing.T) {
	c := New()
	first := newMovie(t, "Heat")
	second := newMovie(t, "HEAT")
	c.Add(first)
	c.Add(newMovie(t, "Ronin"))
	c.Add(second)

	got := c.FindByTitle("heat")
	require.Len(t, got, 2)
	assert.Same(t, first, got[0])
	assert.Same(t, second, got[1])
}

func TestFindByTitleFoldsUnicode(t *testing.T) {
	c := New()
	c.Add(newMovie(t, "ÉLITE"))
	c.Add(newMovie(t, "Ζορμπάς"))

	assert.Len(t, c.FindByTitle("élite"), 1)
	assert.Len(t, c.FindByTitle("ΖΟΡΜΠΆΣ"), 1)
}

func TestSortedIsCaseInsensitive(t *testing.T) {
	c := New()
	for _, title := range []string{"Beta", "alpha", "Gamma"} {
		c.Add(newMovie(t, title))
	}

	assert.Equal(t, []string{"alpha", "Beta", "Gamma"}, sortedTitles(c))
	assert.Equal(t, []string{"Beta", "alpha", "Gamma"}, titles(c.All()))
}

func TestSortedIsStable(t *testing.T) {
	c := New()
	first := newMovie(t, "heat")
	second := newMovie(t, "Heat")
	c.Add(newMovie(t, "Zulu"))
	c.Add(first)
	c.Add(second)

	var got []*movie.Movie
	for m := range c.Sorted() {
		got = append(got, m)
	}
	require.Len(t, got, 3)
	assert.Same(t, first, got[0])
	assert.Same(t, second, got[1])
}

func TestSortedIsRestartable(t *testing.T) {
	c := New()
	c.Add(newMovie(t, "b"))
	c.Add(newMovie(t, "a"))

	seq := c.Sorted()
	for m := range seq {
		assert.Equal(t, "a", m.Title)
		break
	}

	c.Add(newMovie(t, "0"))

	var again []string
	for m := range seq {
		again = append(again, m.Title)
	}
	assert.Equal(t, []string{"0", "a", "b"}, again)
}

func TestSortedEmpty(t *testing.T) {
	assert.Empty(t, sortedTitles(New()))
}
