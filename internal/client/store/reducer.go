// Package store is the single in-memory holder of client application state.
// All mutation flows through the pure Reduce function; the Store applies it
// under a serializing lock so readers always see a consistent snapshot.
package store

import "github.com/capnote/capnote/internal/client/models"

// State is the full client application state.
type State struct {
	User            *models.User
	IsAuthenticated bool
	IsLoading       bool
	Settings        models.AppSettings
	Notes           []models.Note
	Payments        []models.Payment
	SelectedTag     string
}

// InitialState is the state before auth resolution: loading, signed out,
// default settings, empty collections.
func InitialState() State {
	return State{
		IsLoading: true,
		Settings:  models.DefaultSettings(),
	}
}

// Reduce applies an action to a state and returns the next state. It is pure
// and total: no I/O, no panics for well-formed actions, and unknown action
// types return the input state unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetUser:
		s.User = a.User
		s.IsAuthenticated = a.User != nil
		s.IsLoading = false
		return s

	case SetLoading:
		s.IsLoading = a.Loading
		return s

	case SetSettings:
		s.Settings = a.Patch.Apply(s.Settings)
		return s

	case SetNotes:
		s.Notes = a.Notes
		return s

	case AddNote:
		s.Notes = append([]models.Note{a.Note}, s.Notes...)
		return s

	case UpdateNote:
		s.Notes = replaceNote(s.Notes, a.Note)
		return s

	case DeleteNote:
		s.Notes = removeNote(s.Notes, a.ID)
		return s

	case SetPayments:
		s.Payments = a.Payments
		return s

	case AddPayment:
		payments := make([]models.Payment, 0, len(s.Payments)+1)
		payments = append(payments, s.Payments...)
		s.Payments = append(payments, a.Payment)
		return s

	case UpdatePayment:
		s.Payments = replacePayment(s.Payments, a.Payment)
		return s

	case DeletePayment:
		s.Payments = removePayment(s.Payments, a.ID)
		return s

	case SetSelectedTag:
		s.SelectedTag = a.Tag
		return s

	case ToggleTheme:
		// Two-way flip, not a three-state cycle: light goes dark, anything
		// else (dark or system) goes light.
		if s.Settings.Theme == models.ThemeLight {
			s.Settings.Theme = models.ThemeDark
		} else {
			s.Settings.Theme = models.ThemeLight
		}
		return s

	case SignOut:
		next := InitialState()
		next.IsLoading = false
		next.Settings = s.Settings
		return next

	default:
		return s
	}
}

// replaceNote swaps the note with a matching id, preserving its position.
// The input slice is never mutated; when nothing matches it is returned as is.
func replaceNote(notes []models.Note, n models.Note) []models.Note {
	for i := range notes {
		if notes[i].ID == n.ID {
			out := make([]models.Note, len(notes))
			copy(out, notes)
			out[i] = n
			return out
		}
	}
	return notes
}

func removeNote(notes []models.Note, id string) []models.Note {
	for i := range notes {
		if notes[i].ID == id {
			out := make([]models.Note, 0, len(notes)-1)
			out = append(out, notes[:i]...)
			return append(out, notes[i+1:]...)
		}
	}
	return notes
}

func replacePayment(payments []models.Payment, p models.Payment) []models.Payment {
	for i := range payments {
		if payments[i].ID == p.ID {
			out := make([]models.Payment, len(payments))
			copy(out, payments)
			out[i] = p
			return out
		}
	}
	return payments
}

func removePayment(payments []models.Payment, id string) []models.Payment {
	for i := range payments {
		if payments[i].ID == id {
			out := make([]models.Payment, 0, len(payments)-1)
			out = append(out, payments[:i]...)
			return append(out, payments[i+1:]...)
		}
	}
	return payments
}
