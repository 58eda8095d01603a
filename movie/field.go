package movie

import "strings"

// Field identifies one editable attribute of a Movie. The numeric values
// match the 1-based choices shown in the update menu.
type Field int

const (
	FieldTitle Field = iota + 1
	FieldGenre
	FieldYear
	FieldRuntime
	FieldScore
	FieldDirector
)

// FieldCount is the number of editable fields.
const FieldCount = 6

var fieldNames = map[Field]string{
	FieldTitle:    "title",
	FieldGenre:    "genre",
	FieldYear:     "year",
	FieldRuntime:  "runtime",
	FieldScore:    "score",
	FieldDirector: "director",
}

func Fields() []Field {
	return []Field{FieldTitle, FieldGenre, FieldYear, FieldRuntime, FieldScore, FieldDirector}
}

func (f Field) Valid() bool {
	return f >= FieldTitle && f <= FieldDirector
}

// Name returns the lower-case identifier used by ParseField.
func (f Field) Name() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return ""
}

// String returns the label shown to the user.
func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldGenre:
		return "Genre"
	case FieldYear:
		return "Year"
	case FieldRuntime:
		return "Runtime"
	case FieldScore:
		return "Score"
	case FieldDirector:
		return "Director"
	}
	return "Unknown"
}

// ParseField maps an identifier such as "runtime" or "Director" to a Field.
func ParseField(name string) (Field, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for f, n := range fieldNames {
		if n == key {
			return f, nil
		}
	}
	return 0, &FieldError{Field: name, Value: "", Err: ErrUnknownField}
}
