package catalog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"movieShelf/movie"

	"github.com/h2non/filetype"
	"github.com/sirupsen/logrus"
)

// Header is the column row written on export. Import locates the same
// names in any order.
var Header = []string{"Title", "Genre", "Year", "Runtime", "Score", "Director"}

// filetype needs at most this many bytes to recognise a format.
const sniffLen = 262

// Result is the outcome of a successful import.
type Result struct {
	Movies  []*movie.Movie
	Skipped int
}

// Import reads movies from the CSV file at path. Rows with unparseable
// numbers, too few columns or broken quoting are skipped and counted. No
// catalog is modified.
func Import(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Kind: ErrFileNotFound, Err: err}
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.IsDir() {
		return nil, &FileError{Op: "open", Path: path, Kind: ErrFileNotFound, Err: errors.New("is a directory")}
	}

	br := bufio.NewReader(f)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, &FileError{Op: "read", Path: path, Kind: ErrFileNotFound, Err: err}
	}
	if len(head) > 0 {
		if kind, _ := filetype.Match(head); kind != filetype.Unknown {
			logrus.WithFields(logrus.Fields{"path": path, "mime": kind.MIME.Value}).Warn("refusing binary import file")
			return nil, &FileError{Op: "import", Path: path, Kind: ErrNotText}
		}
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ColumnError{Path: path, Missing: append([]string(nil), Header...)}
	}
	if err != nil {
		return nil, &FileError{Op: "read header", Path: path, Kind: ErrMissingColumn, Err: err}
	}

	columns, err := locateColumns(path, header)
	if err != nil {
		return nil, err
	}

	result := &Result{Movies: make([]*movie.Movie, 0)}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				logrus.WithFields(logrus.Fields{"path": path, "line": parseErr.Line}).Warnf("skipping malformed row: %v", parseErr.Err)
				result.Skipped++
				continue
			}
			return nil, &FileError{Op: "read", Path: path, Kind: ErrFileNotFound, Err: err}
		}

		m, err := columns.build(record)
		if err != nil {
			line, _ := r.FieldPos(0)
			logrus.WithFields(logrus.Fields{"path": path, "line": line}).Warnf("skipping invalid row: %v", err)
			result.Skipped++
			continue
		}
		result.Movies = append(result.Movies, m)
	}

	logrus.WithFields(logrus.Fields{
		"path":     path,
		"imported": len(result.Movies),
		"skipped":  result.Skipped,
	}).Info("catalog imported")

	return result, nil
}

// Export writes movies to path in the given order, replacing any existing
// file. A failed write may leave a partial file behind.
func Export(path string, movies []*movie.Movie) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &FileError{Op: "create", Path: path, Kind: ErrWrite, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &FileError{Op: "close", Path: path, Kind: ErrWrite, Err: cerr}
		}
	}()

	w := csv.NewWriter(f)

	if err := w.Write(Header); err != nil {
		return &FileError{Op: "write", Path: path, Kind: ErrWrite, Err: err}
	}
	for _, m := range movies {
		if err := w.Write(row(m)); err != nil {
			return &FileError{Op: "write", Path: path, Kind: ErrWrite, Err: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return &FileError{Op: "write", Path: path, Kind: ErrWrite, Err: err}
	}

	logrus.WithFields(logrus.Fields{"path": path, "exported": len(movies)}).Info("catalog exported")
	return nil
}

// CreateEmpty writes a header-only catalog file.
func CreateEmpty(path string) error {
	return Export(path, nil)
}

func row(m *movie.Movie) []string {
	fields := movie.Fields()
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = m.Value(f)
	}
	return out
}

// columnIndex maps each movie field to its position in the file.
type columnIndex map[movie.Field]int

func locateColumns(path string, header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}

	columns := make(columnIndex, len(Header))
	var missing []string
	for i, name := range Header {
		pos, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		columns[movie.Field(i+1)] = pos
	}
	if len(missing) > 0 {
		return nil, &ColumnError{Path: path, Missing: missing}
	}
	return columns, nil
}

func (c columnIndex) build(record []string) (*movie.Movie, error) {
	values := make([]string, 0, movie.FieldCount)
	for _, f := range movie.Fields() {
		pos := c[f]
		if pos >= len(record) {
			return nil, errors.New("row has too few columns")
		}
		values = append(values, record[pos])
	}
	return movie.New(values[0], values[1], values[2], values[3], values[4], values[5])
}
