// Package session drives one interactive run of the movie catalog: it reads
// main menu choices from a Prompter and applies them to a Catalog until the
// user confirms exit.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movieShelf/catalog"
	"movieShelf/movie"
	"movieShelf/utils"

	"github.com/sirupsen/logrus"
)

const (
	WelcomeTitle = "Welcome to the Movie Shelf!"
	WelcomeBody  = "To start, you can import movies from an external CSV file or add them one at a time from the menu below."
)

type Session struct {
	prompter Prompter
	catalog  *catalog.Catalog
	baseDir  string

	state   State
	welcome bool

	// update flow
	target *movie.Movie
	field  movie.Field
}

type Option func(*Session)

// WithBaseDir resolves relative import and export paths against dir.
func WithBaseDir(dir string) Option {
	return func(s *Session) {
		s.baseDir = dir
	}
}

func New(p Prompter, c *catalog.Catalog, opts ...Option) *Session {
	if c == nil {
		c = catalog.New()
	}
	s := &Session{
		prompter: p,
		catalog:  c,
		state:    MainMenu,
		welcome:  true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Session) State() State {
	return s.state
}

// Run loops until the user confirms exit. Nothing is saved on the way out.
func (s *Session) Run(ctx context.Context) error {
	logrus.Info("session started")

	for s.state != Terminated {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := s.step()
		if err != nil {
			logrus.WithField("state", s.state).WithError(err).Warn("session aborted")
			return err
		}
		if next != s.state {
			logrus.WithFields(logrus.Fields{"from": s.state, "to": next}).Debug("state change")
		}
		s.state = next
	}

	logrus.WithField("movies", s.catalog.Len()).Info("session terminated")
	return nil
}

func (s *Session) step() (State, error) {
	switch s.state {
	case MainMenu:
		return s.mainMenu()
	case AddMovie:
		return s.addMovie()
	case UpdateMovie:
		return s.selectTarget()
	case UpdateSelectField:
		return s.selectField()
	case UpdateEnterValue:
		return s.enterValue()
	case SearchMovies:
		return s.notify("Search Movies", "Searching is not available yet.")
	case ImportCSV:
		return s.importCSV()
	case ExportCSV:
		return s.exportCSV()
	case ConfirmExit:
		return s.confirmExit()
	case Terminated:
		return Terminated, nil
	}
	return MainMenu, nil
}

func (s *Session) mainMenu() (State, error) {
	s.target = nil
	s.field = 0

	title, body := "Main Menu", fmt.Sprintf("Movies in catalog: %d\n\nChoose an option:", s.catalog.Len())
	if s.welcome {
		title, body = WelcomeTitle, WelcomeBody
		s.welcome = false
	}
	s.prompter.Screen(title, body)

	actions := Actions()
	options := make([]string, len(actions))
	for i, a := range actions {
		options[i] = a.String()
	}

	choice, err := s.prompter.Menu(options)
	if err != nil {
		return Terminated, err
	}

	action, err := ActionFromChoice(choice)
	if err != nil {
		return s.fail(err)
	}
	return action.next(), nil
}

func (s *Session) addMovie() (State, error) {
	s.prompter.Screen("Add a Movie", "Please enter the movie details:")

	questions := []string{"Title", "Genre", "Year", "Runtime (minutes)", "Score (out of 10)", "Director"}
	answers := make([]string, len(questions))
	for i, q := range questions {
		answer, err := s.prompter.String(q)
		if err != nil {
			return Terminated, err
		}
		answers[i] = answer
	}

	m, err := movie.New(answers[0], answers[1], answers[2], answers[3], answers[4], answers[5])
	if err != nil {
		return s.fail(err)
	}

	s.catalog.Add(m)
	logrus.WithField("title", m.Title).Info("movie added")
	return s.notify("Movie Added", m.Details())
}

// selectTarget lists the catalog and asks which movie to edit.
func (s *Session) selectTarget() (State, error) {
	if s.catalog.IsEmpty() {
		return s.notify("Update a Movie", "There are no movies in the catalog yet.")
	}

	var lines []string
	for m := range s.catalog.Sorted() {
		lines = append(lines, m.Summary())
	}
	s.prompter.Screen("Update a Movie", strings.Join(lines, "\n"))

	title, err := s.prompter.String("Enter the title of the movie to update")
	if err != nil {
		return Terminated, err
	}

	matches := s.catalog.FindByTitle(title)
	if len(matches) == 0 {
		return s.notify("Movie Not Found", fmt.Sprintf("No movie titled '%s' was found.", title))
	}
	if len(matches) > 1 {
		logrus.WithFields(logrus.Fields{"title": title, "matches": len(matches)}).Warn("duplicate titles, editing the first match")
	}

	s.target = matches[0]
	return UpdateSelectField, nil
}

func (s *Session) selectField() (State, error) {
	s.prompter.Screen("Update "+s.target.Title, s.target.Details()+"\n\nWhich field would you like to update?")

	fields := movie.Fields()
	options := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		options = append(options, f.String())
	}
	options = append(options, "Cancel")

	choice, err := s.prompter.Menu(options)
	if err != nil {
		return Terminated, err
	}
	if choice == len(options) {
		return s.notify("Update Cancelled", "No changes were made.")
	}

	f := movie.Field(choice)
	if !f.Valid() {
		return s.fail(fmt.Errorf("%w: %d", ErrInvalidMenuSelection, choice))
	}
	s.field = f
	return UpdateEnterValue, nil
}

func (s *Session) enterValue() (State, error) {
	value, err := s.prompter.String(fmt.Sprintf("New %s (currently %s)", s.field, s.target.Value(s.field)))
	if err != nil {
		return Terminated, err
	}

	if err := s.target.Update(s.field, value); err != nil {
		return s.fail(err)
	}

	logrus.WithFields(logrus.Fields{"title": s.target.Title, "field": s.field.Name()}).Info("movie updated")
	return s.notify("Movie Updated", s.target.Details())
}

func (s *Session) importCSV() (State, error) {
	s.prompter.Screen("Import from CSV", "Enter the path of the CSV file to import.")

	path, err := s.askPath()
	if err != nil {
		return Terminated, err
	}
	if path == "" {
		return s.notify("Import Cancelled", "No file path was entered.")
	}

	if !utils.FileExists(path) {
		create, err := s.prompter.YesNo(fmt.Sprintf("The file '%s' does not exist. Create a new empty catalog file there?", path))
		if err != nil {
			return Terminated, err
		}
		if !create {
			return s.notify("Import Cancelled", "No file was imported.")
		}
		if err := catalog.CreateEmpty(path); err != nil {
			return s.fail(err)
		}
		return s.notify("File Created", fmt.Sprintf("Created empty catalog file '%s'.", path))
	}

	result, err := catalog.Import(path)
	if err != nil {
		return s.fail(err)
	}

	s.catalog.AddAll(result.Movies)

	body := fmt.Sprintf("Successfully imported %d movies from '%s'.", len(result.Movies), path)
	if result.Skipped > 0 {
		body += fmt.Sprintf("\nSkipped %d invalid rows.", result.Skipped)
	}
	return s.notify("Import Complete", body)
}

func (s *Session) exportCSV() (State, error) {
	if s.catalog.IsEmpty() {
		return s.notify("Error", "There are no movies to export.")
	}

	s.prompter.Screen("Export to CSV", fmt.Sprintf("%d movies will be exported. Enter the path of the CSV file to write.", s.catalog.Len()))

	path, err := s.askPath()
	if err != nil {
		return Terminated, err
	}
	if path == "" {
		return s.notify("Export Cancelled", "No file path was entered.")
	}

	if utils.FileExists(path) {
		overwrite, err := s.prompter.YesNo(fmt.Sprintf("The file '%s' already exists. Overwrite it?", path))
		if err != nil {
			return Terminated, err
		}
		if !overwrite {
			return s.notify("Export Cancelled", "The existing file was left unchanged.")
		}
	}

	movies := s.catalog.All()
	if err := catalog.Export(path, movies); err != nil {
		return s.fail(err)
	}
	return s.notify("Export Complete", fmt.Sprintf("Successfully exported %d movies to '%s'.", len(movies), path))
}

func (s *Session) confirmExit() (State, error) {
	s.prompter.Screen("Exit", "Movies that were not exported to a CSV file will be lost.")

	quit, err := s.prompter.YesNo("Are you sure you want to exit?")
	if err != nil {
		return Terminated, err
	}
	if quit {
		return Terminated, nil
	}
	return MainMenu, nil
}

func (s *Session) askPath() (string, error) {
	var input string
	var err error
	if pp, ok := s.prompter.(PathPrompter); ok {
		input, err = pp.Path("File path", s.baseDir)
	} else {
		input, err = s.prompter.String("File path")
	}
	if err != nil {
		return "", err
	}
	path, err := utils.ResolvePath(input, s.baseDir)
	if err != nil {
		logrus.WithError(err).Warn("could not expand path")
		return strings.TrimSpace(input), nil
	}
	return path, nil
}

// notify shows a message and waits for acknowledgement before returning to
// the main menu.
func (s *Session) notify(title, body string) (State, error) {
	s.prompter.Screen(title, body)
	if err := s.prompter.Continue(); err != nil {
		return Terminated, err
	}
	return MainMenu, nil
}

func (s *Session) fail(err error) (State, error) {
	logrus.WithField("state", s.state).WithError(err).Info("action failed")
	return s.notify("Error", Describe(err))
}

// Describe turns a domain error into the message shown to the user.
func Describe(err error) string {
	var colErr *catalog.ColumnError
	switch {
	case errors.Is(err, movie.ErrInvalidNumericField):
		return "Invalid input for numeric fields. " + capitalize(err.Error()) + "."
	case errors.Is(err, movie.ErrUnknownField):
		return "Invalid field. " + capitalize(err.Error()) + "."
	case errors.As(err, &colErr):
		return "Missing column in CSV: " + strings.Join(colErr.Missing, ", ")
	case errors.Is(err, catalog.ErrMissingColumn):
		return "The CSV header could not be read: " + err.Error()
	case errors.Is(err, catalog.ErrFileNotFound):
		return "The file could not be read: " + err.Error()
	case errors.Is(err, catalog.ErrNotText):
		return "The file is not a CSV file: " + err.Error()
	case errors.Is(err, catalog.ErrWrite):
		return "Error writing to file: " + err.Error()
	case errors.Is(err, ErrInvalidMenuSelection):
		return "Invalid menu selection. Please choose one of the listed options."
	}
	return err.Error()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
