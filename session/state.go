package session

import (
	"errors"
	"fmt"
)

// ErrInvalidMenuSelection indicates a main menu choice outside the listed actions.
var ErrInvalidMenuSelection = errors.New("invalid menu selection")

// Action is a main menu entry. Values are the 1-based menu numbers.
type Action int

const (
	ActionAdd Action = iota + 1
	ActionUpdate
	ActionSearch
	ActionImport
	ActionExport
	ActionExit
)

func Actions() []Action {
	return []Action{ActionAdd, ActionUpdate, ActionSearch, ActionImport, ActionExport, ActionExit}
}

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "Add a Movie"
	case ActionUpdate:
		return "Update a Movie"
	case ActionSearch:
		return "Search Movies"
	case ActionImport:
		return "Import from CSV"
	case ActionExport:
		return "Export to CSV"
	case ActionExit:
		return "Exit"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ActionFromChoice converts a 1-based menu number into an Action.
func ActionFromChoice(choice int) (Action, error) {
	a := Action(choice)
	if a < ActionAdd || a > ActionExit {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMenuSelection, choice)
	}
	return a, nil
}

// State is a step of the session state machine.
type State int

const (
	MainMenu State = iota
	AddMovie
	UpdateMovie
	UpdateSelectField
	UpdateEnterValue
	SearchMovies
	ImportCSV
	ExportCSV
	ConfirmExit
	Terminated
)

func (s State) String() string {
	switch s {
	case MainMenu:
		return "MainMenu"
	case AddMovie:
		return "AddMovie"
	case UpdateMovie:
		return "UpdateMovie"
	case UpdateSelectField:
		return "UpdateMovie/SelectField"
	case UpdateEnterValue:
		return "UpdateMovie/EnterValue"
	case SearchMovies:
		return "SearchMovies"
	case ImportCSV:
		return "ImportCSV"
	case ExportCSV:
		return "ExportCSV"
	case ConfirmExit:
		return "ConfirmExit"
	case Terminated:
		return "Terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// next returns the state that handles a.
func (a Action) next() State {
	switch a {
	case ActionAdd:
		return AddMovie
	case ActionUpdate:
		return UpdateMovie
	case ActionSearch:
		return SearchMovies
	case ActionImport:
		return ImportCSV
	case ActionExport:
		return ExportCSV
	case ActionExit:
		return ConfirmExit
	}
	return MainMenu
}
