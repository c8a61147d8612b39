package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/capnote/capnote/internal/client/models"
	"github.com/capnote/capnote/internal/client/remote"
	"github.com/capnote/capnote/internal/logging"
)

func nopLogger() logging.Logger {
	return logging.NewZerologLogger(zerolog.Nop())
}

// fakeClient implements remote.Client for unit tests. Results and errors
// are injected per method; Last* fields capture the arguments of the most
// recent call.
type fakeClient struct {
	CloseErr error

	SignUpRet string
	SignUpErr error
	SignInRet string
	SignInErr error

	AuthenticateErr error
	InvalidateErr   error

	CurrentUserRet *models.User
	CurrentUserErr error

	NotesRet    []models.Note
	NotesErr    error
	NoteRet     *models.Note
	NoteErr     error
	PaymentsRet []models.Payment
	PaymentsErr error
	PaymentRet  *models.Payment
	PaymentErr  error

	ChecklistsRet []models.Checklist
	ChecklistsErr error
	ChecklistRet  *models.Checklist
	ChecklistErr  error

	EventsRet []models.CalendarEvent
	EventsErr error
	EventRet  *models.CalendarEvent
	EventErr  error

	DeleteErr     error
	MarkSyncedErr error

	LastEmail    string
	LastPassword string
	LastToken    string

	LastTag          string
	LastNote         models.Note
	LastPayment      models.Payment
	LastChecklist    models.Checklist
	LastEvent        models.CalendarEvent
	LastDeletedID    string
	LastNoteID       string
	LastFrom, LastTo time.Time
	LastSyncedID     string
	LastExternalID   string

	InvalidateCalls int
}

var _ remote.Client = (*fakeClient)(nil)

func (f *fakeClient) Close(ctx context.Context) error { return f.CloseErr }

func (f *fakeClient) SignUp(ctx context.Context, email, password string) (string, error) {
	f.LastEmail, f.LastPassword = email, password
	return f.SignUpRet, f.SignUpErr
}

func (f *fakeClient) SignIn(ctx context.Context, email, password string) (string, error) {
	f.LastEmail, f.LastPassword = email, password
	return f.SignInRet, f.SignInErr
}

func (f *fakeClient) Authenticate(ctx context.Context, token string) error {
	f.LastToken = token
	return f.AuthenticateErr
}

func (f *fakeClient) Invalidate(ctx context.Context) error {
	f.InvalidateCalls++
	return f.InvalidateErr
}

func (f *fakeClient) CurrentUser(ctx context.Context) (*models.User, error) {
	return f.CurrentUserRet, f.CurrentUserErr
}

func (f *fakeClient) ListNotes(ctx context.Context) ([]models.Note, error) {
	return f.NotesRet, f.NotesErr
}

func (f *fakeClient) ListNotesByTag(ctx context.Context, tag string) ([]models.Note, error) {
	f.LastTag = tag
	return f.NotesRet, f.NotesErr
}

func (f *fakeClient) CreateNote(ctx context.Context, n models.Note) (*models.Note, error) {
	f.LastNote = n
	return f.NoteRet, f.NoteErr
}

func (f *fakeClient) UpdateNote(ctx context.Context, n models.Note) (*models.Note, error) {
	f.LastNote = n
	return f.NoteRet, f.NoteErr
}

func (f *fakeClient) DeleteNote(ctx context.Context, id string) error {
	f.LastDeletedID = id
	return f.DeleteErr
}

func (f *fakeClient) ListPayments(ctx context.Context) ([]models.Payment, error) {
	return f.PaymentsRet, f.PaymentsErr
}

func (f *fakeClient) ListPaymentsDueBetween(ctx context.Context, from, to time.Time) ([]models.Payment, error) {
	f.LastFrom, f.LastTo = from, to
	return f.PaymentsRet, f.PaymentsErr
}

func (f *fakeClient) CreatePayment(ctx context.Context, p models.Payment) (*models.Payment, error) {
	f.LastPayment = p
	return f.PaymentRet, f.PaymentErr
}

func (f *fakeClient) UpdatePayment(ctx context.Context, p models.Payment) (*models.Payment, error) {
	f.LastPayment = p
	return f.PaymentRet, f.PaymentErr
}

func (f *fakeClient) DeletePayment(ctx context.Context, id string) error {
	f.LastDeletedID = id
	return f.DeleteErr
}

func (f *fakeClient) ListChecklists(ctx context.Context, noteID string) ([]models.Checklist, error) {
	f.LastNoteID = noteID
	return f.ChecklistsRet, f.ChecklistsErr
}

func (f *fakeClient) CreateChecklist(ctx context.Context, c models.Checklist) (*models.Checklist, error) {
	f.LastChecklist = c
	return f.ChecklistRet, f.ChecklistErr
}

func (f *fakeClient) UpdateChecklist(ctx context.Context, c models.Checklist) (*models.Checklist, error) {
	f.LastChecklist = c
	return f.ChecklistRet, f.ChecklistErr
}

func (f *fakeClient) DeleteChecklist(ctx context.Context, id string) error {
	f.LastDeletedID = id
	return f.DeleteErr
}

func (f *fakeClient) ListCalendarEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	return f.EventsRet, f.EventsErr
}

func (f *fakeClient) CreateCalendarEvent(ctx context.Context, e models.CalendarEvent) (*models.CalendarEvent, error) {
	f.LastEvent = e
	return f.EventRet, f.EventErr
}

func (f *fakeClient) MarkEventSynced(ctx context.Context, id, externalID string) error {
	f.LastSyncedID, f.LastExternalID = id, externalID
	return f.MarkSyncedErr
}
