package store

import "github.com/capnote/capnote/internal/client/models"

// Action is a state transition request. The set of actions is closed: every
// action type lives in this file and carries its payload as struct fields.
type Action interface {
	isAction()
}

// SetUser replaces the current user. A nil user means signed out; a non-nil
// user marks the session authenticated. Either way the loading phase ends.
type SetUser struct {
	User *models.User
}

// SetLoading replaces only the loading flag.
type SetLoading struct {
	Loading bool
}

// SetSettings shallow-merges a partial settings update.
type SetSettings struct {
	Patch models.SettingsPatch
}

// SetNotes replaces the notes collection wholesale. The caller supplies the
// complete authoritative list; nothing is merged or deduplicated.
type SetNotes struct {
	Notes []models.Note
}

// AddNote prepends a note: newest first.
type AddNote struct {
	Note models.Note
}

// UpdateNote replaces the note with a matching id in place. No-op when the id
// is unknown.
type UpdateNote struct {
	Note models.Note
}

// DeleteNote removes the note with the given id. No-op when absent.
type DeleteNote struct {
	ID string
}

// SetPayments replaces the payments collection wholesale.
type SetPayments struct {
	Payments []models.Payment
}

// AddPayment appends a payment: chronological order, unlike notes.
type AddPayment struct {
	Payment models.Payment
}

// UpdatePayment replaces the payment with a matching id in place.
type UpdatePayment struct {
	Payment models.Payment
}

// DeletePayment removes the payment with the given id. No-op when absent.
type DeletePayment struct {
	ID string
}

// SetSelectedTag replaces the active tag filter. An empty tag clears it.
type SetSelectedTag struct {
	Tag string
}

// ToggleTheme flips the theme between light and dark.
type ToggleTheme struct{}

// SignOut resets to the initial signed-out state, keeping settings.
type SignOut struct{}

func (SetUser) isAction()        {}
func (SetLoading) isAction()     {}
func (SetSettings) isAction()    {}
func (SetNotes) isAction()       {}
func (AddNote) isAction()        {}
func (UpdateNote) isAction()     {}
func (DeleteNote) isAction()     {}
func (SetPayments) isAction()    {}
func (AddPayment) isAction()     {}
func (UpdatePayment) isAction()  {}
func (DeletePayment) isAction()  {}
func (SetSelectedTag) isAction() {}
func (ToggleTheme) isAction()    {}
func (SignOut) isAction()        {}
