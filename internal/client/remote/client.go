// Package remote is the boundary to the hosted backend service. The Client
// interface is the only surface the rest of the client sees; the shipped
// implementation speaks to SurrealDB, tests substitute fakes.
package remote

import (
	"context"
	"errors"
	"time"

	"github.com/capnote/capnote/internal/client/models"
)

// ErrNotAuthenticated is returned when a call requires a signed-in session
// and none is active.
var ErrNotAuthenticated = errors.New("not authenticated")

// Client is the remote data/auth boundary. Every call is a single round
// trip: no retries, no timeout beyond what the transport and ctx provide.
// Expected failures come back as errors carrying the service's message.
type Client interface {
	Close(ctx context.Context) error

	// Auth. SignUp and SignIn return the session token.
	SignUp(ctx context.Context, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, token string) error
	Invalidate(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)

	// Notes, ordered by creation time descending.
	ListNotes(ctx context.Context) ([]models.Note, error)
	ListNotesByTag(ctx context.Context, tag string) ([]models.Note, error)
	CreateNote(ctx context.Context, n models.Note) (*models.Note, error)
	UpdateNote(ctx context.Context, n models.Note) (*models.Note, error)
	DeleteNote(ctx context.Context, id string) error

	// Payments, ordered by due date ascending.
	ListPayments(ctx context.Context) ([]models.Payment, error)
	// ListPaymentsDueBetween returns unpaid payments with from <= due_date <= to,
	// both bounds inclusive.
	ListPaymentsDueBetween(ctx context.Context, from, to time.Time) ([]models.Payment, error)
	CreatePayment(ctx context.Context, p models.Payment) (*models.Payment, error)
	UpdatePayment(ctx context.Context, p models.Payment) (*models.Payment, error)
	DeletePayment(ctx context.Context, id string) error

	// Checklist items of one note, ordered by creation time ascending.
	ListChecklists(ctx context.Context, noteID string) ([]models.Checklist, error)
	CreateChecklist(ctx context.Context, c models.Checklist) (*models.Checklist, error)
	UpdateChecklist(ctx context.Context, c models.Checklist) (*models.Checklist, error)
	DeleteChecklist(ctx context.Context, id string) error

	// Calendar events, ordered by event date ascending.
	ListCalendarEvents(ctx context.Context) ([]models.CalendarEvent, error)
	CreateCalendarEvent(ctx context.Context, e models.CalendarEvent) (*models.CalendarEvent, error)
	// MarkEventSynced is idempotent: it sets the sync flag and stores the
	// external calendar event id.
	MarkEventSynced(ctx context.Context, id, externalID string) error
}
