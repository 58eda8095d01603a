// Package movie holds the movie record and its field-level editing rules.
package movie

import (
	"fmt"
	"strconv"
	"strings"
)

type Movie struct {
	Title    string  `json:"title"`
	Genre    string  `json:"genre"`
	Year     int     `json:"year"`
	Runtime  int     `json:"runtime"`
	Score    float64 `json:"score"`
	Director string  `json:"director"`
}

// New builds a Movie from raw text. The year, runtime and score are parsed;
// nothing is returned if any of them is rejected.
func New(title, genre, yearText, runtimeText, scoreText, director string) (*Movie, error) {
	year, err := parseInt(FieldYear, yearText)
	if err != nil {
		return nil, err
	}
	runtime, err := parseInt(FieldRuntime, runtimeText)
	if err != nil {
		return nil, err
	}
	score, err := parseScore(scoreText)
	if err != nil {
		return nil, err
	}

	return &Movie{
		Title:    text(title),
		Genre:    text(genre),
		Year:     year,
		Runtime:  runtime,
		Score:    score,
		Director: text(director),
	}, nil
}

// Update sets a single field from text. Numeric fields are parsed first so a
// rejected value leaves the movie unchanged.
func (m *Movie) Update(f Field, value string) error {
	switch f {
	case FieldTitle:
		m.Title = text(value)
	case FieldGenre:
		m.Genre = text(value)
	case FieldYear:
		year, err := parseInt(f, value)
		if err != nil {
			return err
		}
		m.Year = year
	case FieldRuntime:
		runtime, err := parseInt(f, value)
		if err != nil {
			return err
		}
		m.Runtime = runtime
	case FieldScore:
		score, err := parseScore(value)
		if err != nil {
			return err
		}
		m.Score = score
	case FieldDirector:
		m.Director = text(value)
	default:
		return &FieldError{Field: strconv.Itoa(int(f)), Value: value, Err: ErrUnknownField}
	}
	return nil
}

// UpdateByName is Update keyed by a field identifier such as "score".
func (m *Movie) UpdateByName(name, value string) error {
	f, err := ParseField(name)
	if err != nil {
		return err
	}
	return m.Update(f, value)
}

// Value returns the text form of a field, as written to CSV.
func (m *Movie) Value(f Field) string {
	switch f {
	case FieldTitle:
		return m.Title
	case FieldGenre:
		return m.Genre
	case FieldYear:
		return strconv.Itoa(m.Year)
	case FieldRuntime:
		return strconv.Itoa(m.Runtime)
	case FieldScore:
		return FormatScore(m.Score)
	case FieldDirector:
		return m.Director
	}
	return ""
}

func (m *Movie) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", m.Title)
	fmt.Fprintf(&b, "Genre: %s\n", m.Genre)
	fmt.Fprintf(&b, "Year: %d\n", m.Year)
	fmt.Fprintf(&b, "Runtime: %d minutes\n", m.Runtime)
	fmt.Fprintf(&b, "Score: %s\n", FormatScore(m.Score))
	fmt.Fprintf(&b, "Director: %s", m.Director)
	return b.String()
}

// Summary is the one-line form used in listings.
func (m *Movie) Summary() string {
	return fmt.Sprintf("%s (%d) - %s, %d min, %s/10, dir. %s",
		m.Title, m.Year, m.Genre, m.Runtime, FormatScore(m.Score), m.Director)
}

// FormatScore renders a score without losing precision. Whole numbers keep a
// trailing ".0" so scores always read as decimals.
func FormatScore(score float64) string {
	s := strconv.FormatFloat(score, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

func parseInt(f Field, text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &FieldError{Field: f.Name(), Value: text, Err: ErrInvalidNumericField}
	}
	return n, nil
}

func parseScore(text string) (float64, error) {
	score, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &FieldError{Field: FieldScore.Name(), Value: text, Err: ErrInvalidNumericField}
	}
	return score, nil
}

// text stores CRLF line breaks as LF, which is how a CSV reader hands them
// back.
func text(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
