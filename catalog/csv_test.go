package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"movieShelf/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func fixtures(t *testing.T) []*movie.Movie {
	t.Helper()
	rows := [][6]string{
		{"The Matrix", "Sci-Fi", "1999", "136", "8.7", "Lana Wachowski, Lilly Wachowski"},
		{`Dr. Strangelove or: How I Learned to Stop Worrying and Love the "Bomb"`, "Comedy", "1964", "95", "8.4", "Stanley Kubrick"},
		{"Multi\nLine", "Drama", "2001", "90", "6", "Nobody"},
		{"Heat", "Crime", "1995", "170", "8.3", "Michael Mann"},
		{"A\rB", "Carriage\r", "2010", "100", "7.1", "Line1\r\nLine2"},
	}

	movies := make([]*movie.Movie, 0, len(rows))
	for _, r := range rows {
		m, err := movie.New(r[0], r[1], r[2], r[3], r[4], r[5])
		require.NoError(t, err)
		movies = append(movies, m)
	}
	return movies
}

func TestExportImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	want := fixtures(t)

	require.NoError(t, Export(path, want))

	result, err := Import(path)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, result.Movies, len(want))
	for i := range want {
		assert.Equal(t, *want[i], *result.Movies[i])
	}
}

func TestExportEmptyWritesHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	require.NoError(t, CreateEmpty(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Title,Genre,Year,Runtime,Score,Director\n", string(data))

	result, err := Import(path)
	require.NoError(t, err)
	assert.Empty(t, result.Movies)
	assert.Equal(t, 0, result.Skipped)
}

func TestExportFormatsNumbers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	m, err := movie.New("Up", "Animation", "2009", "96", "8", "Pete Docter")
	require.NoError(t, err)

	require.NoError(t, Export(path, []*movie.Movie{m}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Up,Animation,2009,96,8.0,Pete Docter", lines[1])
}

func TestExportOverwrites(t *testing.T) {
	path := writeFile(t, "movies.csv", strings.Repeat("old content\n", 100))

	require.NoError(t, Export(path, fixtures(t)[:1]))

	result, err := Import(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"The Matrix"}, titles(result.Movies))
}

func TestExportWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "movies.csv")

	err := Export(path, fixtures(t))
	require.ErrorIs(t, err, ErrWrite)

	var fe *FileError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, path, fe.Path)
}

func TestImportFileNotFound(t *testing.T) {
	result, err := Import(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestImportDirectory(t *testing.T) {
	_, err := Import(t.TempDir())
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestImportMissingColumn(t *testing.T) {
	path := writeFile(t, "movies.csv",
		"Title,Genre,Year,Runtime,Score\n"+
			"Heat,Crime,1995,170,8.3\n")

	result, err := Import(path)
	assert.Nil(t, result)
	require.ErrorIs(t, err, ErrMissingColumn)

	var ce *ColumnError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []string{"Director"}, ce.Missing)
}

func TestImportHeaderIsCaseSensitive(t *testing.T) {
	path := writeFile(t, "movies.csv", "title,genre,year,runtime,score,director\n")

	_, err := Import(path)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestImportEmptyFile(t *testing.T) {
	path := writeFile(t, "movies.csv", "")

	_, err := Import(path)
	var ce *ColumnError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, Header, ce.Missing)
}

func TestImportSkipsInvalidRows(t *testing.T) {
	path := writeFile(t, "movies.csv",
		"Title,Genre,Year,Runtime,Score,Director\n"+
			"Heat,Crime,1995,170,8.3,Michael Mann\n"+
			"Bad,Crime,nineteen,100,5,Someone\n"+
			"Ronin,Action,1998,122,7.2,John Frankenheimer\n")

	result, err := Import(path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []string{"Heat", "Ronin"}, titles(result.Movies))
}

func TestImportSkipsShortRows(t *testing.T) {
	path := writeFile(t, "movies.csv",
		"Title,Genre,Year,Runtime,Score,Director\n"+
			"Heat,Crime,1995\n"+
			"Ronin,Action,1998,122,7.2,John Frankenheimer\n")

	result, err := Import(path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []string{"Ronin"}, titles(result.Movies))
}

func TestImportSkipsBadQuoting(t *testing.T) {
	path := writeFile(t, "movies.csv",
		"Title,Genre,Year,Runtime,Score,Director\n"+
			"Heat,Crime,1995,170,8.3,Michael Mann\n"+
			"Ron\"in,Action,1998,122,7.2,John Frankenheimer\n"+
			"\"Up\"x,Animation,2009,96,8.3,Pete Docter\n"+
			"Alien,Horror,1979,117,8.5,Ridley Scott\n")

	result, err := Import(path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, []string{"Heat", "Alien"}, titles(result.Movies))
}

func TestImportLocatesColumnsByName(t *testing.T) {
	path := writeFile(t, "movies.csv",
		"\ufeffDirector,Score,Notes,Runtime,Year,Genre,Title\r\n"+
			"Michael Mann,8.3,great,170,1995,Crime,Heat\r\n")

	result, err := Import(path)
	require.NoError(t, err)
	require.Len(t, result.Movies, 1)

	want := movie.Movie{Title: "Heat", Genre: "Crime", Year: 1995, Runtime: 170, Score: 8.3, Director: "Michael Mann"}
	assert.Equal(t, want, *result.Movies[0])
}

func TestImportRejectsBinary(t *testing.T) {
	png := "\x89PNG\r\n\x1a\n" + strings.Repeat("\x00", 64)
	path := writeFile(t, "poster.csv", png)

	result, err := Import(path)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNotText)
}
