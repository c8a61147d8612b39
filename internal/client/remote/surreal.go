package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/surrealdb/surrealdb.go"
	sdb "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/capnote/capnote/internal/client/models"
	"github.com/capnote/capnote/internal/logging"
)

// Options carries the connection parameters for a SurrealDB backend.
type Options struct {
	// EndpointURL is the ws:// or wss:// address of the database node.
	EndpointURL string
	Namespace   string
	Database    string
	// Access names the record access method used for sign-up and sign-in.
	Access string
}

// SurrealClient implements Client on top of a SurrealDB connection.
type SurrealClient struct {
	db     *surrealdb.DB
	opts   Options
	logger logging.Logger
}

var _ Client = (*SurrealClient)(nil)

// Dial connects to the endpoint and selects the configured namespace and
// database. The returned client is not authenticated yet.
func Dial(ctx context.Context, opts Options, logger logging.Logger) (*SurrealClient, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, opts.EndpointURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", opts.EndpointURL, err)
	}
	if err := db.Use(ctx, opts.Namespace, opts.Database); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("selecting namespace: %w", err)
	}
	logger.Debug(ctx, "connected to backend", "endpoint", opts.EndpointURL)
	return &SurrealClient{db: db, opts: opts, logger: logger}, nil
}

func (c *SurrealClient) Close(ctx context.Context) error {
	return c.db.Close(ctx)
}

// accountCredentials matches the record access SIGNIN and SIGNUP
// expressions, which read $email and $pass.
type accountCredentials struct {
	Namespace string `json:"NS"`
	Database  string `json:"DB"`
	Access    string `json:"AC"`
	Email     string `json:"email"`
	Password  string `json:"pass"`
}

func (c *SurrealClient) credentials(email, password string) *accountCredentials {
	return &accountCredentials{
		Namespace: c.opts.Namespace,
		Database:  c.opts.Database,
		Access:    c.opts.Access,
		Email:     email,
		Password:  password,
	}
}

func (c *SurrealClient) SignUp(ctx context.Context, email, password string) (string, error) {
	token, err := c.db.SignUp(ctx, c.credentials(email, password))
	if err != nil {
		return "", fmt.Errorf("signing up: %w", err)
	}
	return token, nil
}

func (c *SurrealClient) SignIn(ctx context.Context, email, password string) (string, error) {
	token, err := c.db.SignIn(ctx, c.credentials(email, password))
	if err != nil {
		return "", fmt.Errorf("signing in: %w", err)
	}
	return token, nil
}

func (c *SurrealClient) Authenticate(ctx context.Context, token string) error {
	if err := c.db.Authenticate(ctx, token); err != nil {
		return fmt.Errorf("authenticating session: %w", err)
	}
	return nil
}

func (c *SurrealClient) Invalidate(ctx context.Context) error {
	if err := c.db.Invalidate(ctx); err != nil {
		return fmt.Errorf("invalidating session: %w", err)
	}
	return nil
}

func (c *SurrealClient) CurrentUser(ctx context.Context) (*models.User, error) {
	rows, err := queryRows[userRecord](ctx, c.db, "SELECT * FROM $auth;", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching current user: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotAuthenticated
	}
	u := rows[0].toModel()
	return &u, nil
}

func (c *SurrealClient) ListNotes(ctx context.Context) ([]models.Note, error) {
	rows, err := queryRows[noteRecord](ctx, c.db,
		"SELECT * FROM notes ORDER BY created_at DESC;", nil)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return mapRecords(rows, noteRecord.toModel), nil
}

func (c *SurrealClient) ListNotesByTag(ctx context.Context, tag string) ([]models.Note, error) {
	rows, err := queryRows[noteRecord](ctx, c.db,
		"SELECT * FROM notes WHERE tag = $tag ORDER BY created_at DESC;",
		map[string]any{"tag": tag})
	if err != nil {
		return nil, fmt.Errorf("listing notes by tag: %w", err)
	}
	return mapRecords(rows, noteRecord.toModel), nil
}

func (c *SurrealClient) CreateNote(ctx context.Context, note models.Note) (*models.Note, error) {
	rec, err := surrealdb.Create[noteRecord](ctx, c.db, tableNotes, noteFromModel(note))
	if err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}
	created := rec.toModel()
	return &created, nil
}

func (c *SurrealClient) UpdateNote(ctx context.Context, note models.Note) (*models.Note, error) {
	rec, err := surrealdb.Update[noteRecord](ctx, c.db,
		sdb.NewRecordID(tableNotes, note.ID), noteFromModel(note))
	if err != nil {
		return nil, fmt.Errorf("updating note: %w", err)
	}
	updated := rec.toModel()
	return &updated, nil
}

func (c *SurrealClient) DeleteNote(ctx context.Context, id string) error {
	_, err := surrealdb.Delete[noteRecord](ctx, c.db, sdb.NewRecordID(tableNotes, id))
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	return nil
}

func (c *SurrealClient) ListPayments(ctx context.Context) ([]models.Payment, error) {
	rows, err := queryRows[paymentRecord](ctx, c.db,
		"SELECT * FROM payments ORDER BY due_date ASC;", nil)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	return mapRecords(rows, paymentRecord.toModel), nil
}

func (c *SurrealClient) ListPaymentsDueBetween(ctx context.Context, from, to time.Time) ([]models.Payment, error) {
	rows, err := queryRows[paymentRecord](ctx, c.db,
		"SELECT * FROM payments WHERE is_paid = false AND due_date >= $from AND due_date <= $to ORDER BY due_date ASC;",
		map[string]any{
			"from": sdb.CustomDateTime{Time: from},
			"to":   sdb.CustomDateTime{Time: to},
		})
	if err != nil {
		return nil, fmt.Errorf("listing due payments: %w", err)
	}
	return mapRecords(rows, paymentRecord.toModel), nil
}

func (c *SurrealClient) CreatePayment(ctx context.Context, payment models.Payment) (*models.Payment, error) {
	rec, err := surrealdb.Create[paymentRecord](ctx, c.db, tablePayments, paymentFromModel(payment))
	if err != nil {
		return nil, fmt.Errorf("creating payment: %w", err)
	}
	created := rec.toModel()
	return &created, nil
}

func (c *SurrealClient) UpdatePayment(ctx context.Context, payment models.Payment) (*models.Payment, error) {
	rec, err := surrealdb.Update[paymentRecord](ctx, c.db,
		sdb.NewRecordID(tablePayments, payment.ID), paymentFromModel(payment))
	if err != nil {
		return nil, fmt.Errorf("updating payment: %w", err)
	}
	updated := rec.toModel()
	return &updated, nil
}

func (c *SurrealClient) DeletePayment(ctx context.Context, id string) error {
	_, err := surrealdb.Delete[paymentRecord](ctx, c.db, sdb.NewRecordID(tablePayments, id))
	if err != nil {
		return fmt.Errorf("deleting payment: %w", err)
	}
	return nil
}

func (c *SurrealClient) ListChecklists(ctx context.Context, noteID string) ([]models.Checklist, error) {
	rows, err := queryRows[checklistRecord](ctx, c.db,
		"SELECT * FROM checklists WHERE note_id = $note ORDER BY created_at ASC;",
		map[string]any{"note": noteID})
	if err != nil {
		return nil, fmt.Errorf("listing checklists: %w", err)
	}
	return mapRecords(rows, checklistRecord.toModel), nil
}

func (c *SurrealClient) CreateChecklist(ctx context.Context, item models.Checklist) (*models.Checklist, error) {
	rec, err := surrealdb.Create[checklistRecord](ctx, c.db,
		tableChecklists, checklistFromModel(item, time.Now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("creating checklist item: %w", err)
	}
	created := rec.toModel()
	return &created, nil
}

func (c *SurrealClient) UpdateChecklist(ctx context.Context, item models.Checklist) (*models.Checklist, error) {
	rows, err := queryRows[checklistRecord](ctx, c.db,
		"UPDATE $id MERGE { title: $title, is_done: $done };",
		map[string]any{
			"id":    sdb.NewRecordID(tableChecklists, item.ID),
			"title": item.Title,
			"done":  item.IsDone,
		})
	if err != nil {
		return nil, fmt.Errorf("updating checklist item: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("updating checklist item: no record %s", item.ID)
	}
	updated := rows[0].toModel()
	return &updated, nil
}

func (c *SurrealClient) DeleteChecklist(ctx context.Context, id string) error {
	_, err := surrealdb.Delete[checklistRecord](ctx, c.db, sdb.NewRecordID(tableChecklists, id))
	if err != nil {
		return fmt.Errorf("deleting checklist item: %w", err)
	}
	return nil
}

func (c *SurrealClient) ListCalendarEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	rows, err := queryRows[eventRecord](ctx, c.db,
		"SELECT * FROM calendar_events ORDER BY event_date ASC;", nil)
	if err != nil {
		return nil, fmt.Errorf("listing calendar events: %w", err)
	}
	return mapRecords(rows, eventRecord.toModel), nil
}

func (c *SurrealClient) CreateCalendarEvent(ctx context.Context, event models.CalendarEvent) (*models.CalendarEvent, error) {
	rec, err := surrealdb.Create[eventRecord](ctx, c.db, tableCalendarEvents, eventFromModel(event))
	if err != nil {
		return nil, fmt.Errorf("creating calendar event: %w", err)
	}
	created := rec.toModel()
	return &created, nil
}

func (c *SurrealClient) MarkEventSynced(ctx context.Context, id, externalID string) error {
	_, err := queryRows[eventRecord](ctx, c.db,
		"UPDATE $id MERGE { is_synced_with_google: true, google_event_id: $ext };",
		map[string]any{
			"id":  sdb.NewRecordID(tableCalendarEvents, id),
			"ext": externalID,
		})
	if err != nil {
		return fmt.Errorf("marking event synced: %w", err)
	}
	return nil
}

// queryRows runs a single statement and returns the rows of its first result.
func queryRows[T any](ctx context.Context, db *surrealdb.DB, sql string, vars map[string]any) ([]T, error) {
	res, err := surrealdb.Query[[]T](ctx, db, sql, vars)
	if err != nil {
		return nil, err
	}
	if res == nil || len(*res) == 0 {
		return nil, nil
	}
	return (*res)[0].Result, nil
}

func mapRecords[R, M any](rows []R, f func(R) M) []M {
	out := make([]M, 0, len(rows))
	for _, r := range rows {
		out = append(out, f(r))
	}
	return out
}
