package remote

import (
	"fmt"
	"time"

	"github.com/capnote/capnote/internal/client/models"
	sdb "github.com/surrealdb/surrealdb.go/pkg/models"
)

// Collection names on the remote service.
const (
	tableNotes          = "notes"
	tablePayments       = "payments"
	tableChecklists     = "checklists"
	tableCalendarEvents = "calendar_events"
	tableUsers          = "user"
)

// Wire records mirror the domain entities with the SDK's id and datetime
// types. The id field stays nil on create so the service assigns it.

type noteRecord struct {
	ID           *sdb.RecordID       `json:"id,omitempty"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Tag          string              `json:"tag"`
	TagColor     string              `json:"tag_color"`
	IsPinned     bool                `json:"is_pinned"`
	ReminderTime *sdb.CustomDateTime `json:"reminder_time,omitempty"`
	CreatedAt    sdb.CustomDateTime  `json:"created_at"`
	UpdatedAt    sdb.CustomDateTime  `json:"updated_at"`
}

type paymentRecord struct {
	ID           *sdb.RecordID       `json:"id,omitempty"`
	Title        string              `json:"title"`
	Amount       float64             `json:"amount"`
	DueDate      sdb.CustomDateTime  `json:"due_date"`
	IsPaid       bool                `json:"is_paid"`
	Recurrence   string              `json:"recurrence"`
	ReminderTime *sdb.CustomDateTime `json:"reminder_time,omitempty"`
	Notes        string              `json:"notes,omitempty"`
	ReceiptPath  string              `json:"receipt_path,omitempty"`
	ReceiptURL   string              `json:"receipt_url,omitempty"`
}

type checklistRecord struct {
	ID        *sdb.RecordID      `json:"id,omitempty"`
	NoteID    string             `json:"note_id"`
	Title     string             `json:"title"`
	IsDone    bool               `json:"is_done"`
	CreatedAt sdb.CustomDateTime `json:"created_at"`
}

type eventRecord struct {
	ID                 *sdb.RecordID      `json:"id,omitempty"`
	LinkedNoteID       string             `json:"linked_note_id,omitempty"`
	LinkedPaymentID    string             `json:"linked_payment_id,omitempty"`
	EventType          string             `json:"event_type"`
	EventDate          sdb.CustomDateTime `json:"event_date"`
	IsSyncedWithGoogle bool               `json:"is_synced_with_google"`
	GoogleEventID      string             `json:"google_event_id,omitempty"`
}

type userRecord struct {
	ID              *sdb.RecordID `json:"id,omitempty"`
	Email           string        `json:"email"`
	PinCode         string        `json:"pin_code,omitempty"`
	ThemePreference string        `json:"theme_preference,omitempty"`
}

// recordID renders the id part of a record id as the opaque string the domain
// entities carry.
func recordID(rid *sdb.RecordID) string {
	if rid == nil {
		return ""
	}
	if s, ok := rid.ID.(string); ok {
		return s
	}
	return fmt.Sprint(rid.ID)
}

func optTime(t *time.Time) *sdb.CustomDateTime {
	if t == nil {
		return nil
	}
	return &sdb.CustomDateTime{Time: *t}
}

func optModelTime(t *sdb.CustomDateTime) *time.Time {
	if t == nil {
		return nil
	}
	return &t.Time
}

func noteFromModel(n models.Note) noteRecord {
	return noteRecord{
		Title:        n.Title,
		Description:  n.Description,
		Tag:          n.Tag,
		TagColor:     n.TagColor,
		IsPinned:     n.IsPinned,
		ReminderTime: optTime(n.ReminderTime),
		CreatedAt:    sdb.CustomDateTime{Time: n.CreatedAt},
		UpdatedAt:    sdb.CustomDateTime{Time: n.UpdatedAt},
	}
}

func (r noteRecord) toModel() models.Note {
	return models.Note{
		ID:           recordID(r.ID),
		Title:        r.Title,
		Description:  r.Description,
		Tag:          r.Tag,
		TagColor:     r.TagColor,
		IsPinned:     r.IsPinned,
		ReminderTime: optModelTime(r.ReminderTime),
		CreatedAt:    r.CreatedAt.Time,
		UpdatedAt:    r.UpdatedAt.Time,
	}
}

func paymentFromModel(p models.Payment) paymentRecord {
	return paymentRecord{
		Title:        p.Title,
		Amount:       p.Amount,
		DueDate:      sdb.CustomDateTime{Time: p.DueDate},
		IsPaid:       p.IsPaid,
		Recurrence:   string(p.Recurrence),
		ReminderTime: optTime(p.ReminderTime),
		Notes:        p.Notes,
		ReceiptPath:  p.ReceiptPath,
		ReceiptURL:   p.ReceiptURL,
	}
}

func (r paymentRecord) toModel() models.Payment {
	return models.Payment{
		ID:           recordID(r.ID),
		Title:        r.Title,
		Amount:       r.Amount,
		DueDate:      r.DueDate.Time,
		IsPaid:       r.IsPaid,
		Recurrence:   models.Recurrence(r.Recurrence),
		ReminderTime: optModelTime(r.ReminderTime),
		Notes:        r.Notes,
		ReceiptPath:  r.ReceiptPath,
		ReceiptURL:   r.ReceiptURL,
	}
}

func checklistFromModel(c models.Checklist, createdAt time.Time) checklistRecord {
	return checklistRecord{
		NoteID:    c.NoteID,
		Title:     c.Title,
		IsDone:    c.IsDone,
		CreatedAt: sdb.CustomDateTime{Time: createdAt},
	}
}

func (r checklistRecord) toModel() models.Checklist {
	return models.Checklist{
		ID:     recordID(r.ID),
		NoteID: r.NoteID,
		Title:  r.Title,
		IsDone: r.IsDone,
	}
}

func eventFromModel(e models.CalendarEvent) eventRecord {
	return eventRecord{
		LinkedNoteID:       e.LinkedNoteID,
		LinkedPaymentID:    e.LinkedPaymentID,
		EventType:          string(e.EventType),
		EventDate:          sdb.CustomDateTime{Time: e.EventDate},
		IsSyncedWithGoogle: e.IsSyncedWithGoogle,
		GoogleEventID:      e.GoogleEventID,
	}
}

func (r eventRecord) toModel() models.CalendarEvent {
	return models.CalendarEvent{
		ID:                 recordID(r.ID),
		LinkedNoteID:       r.LinkedNoteID,
		LinkedPaymentID:    r.LinkedPaymentID,
		EventType:          models.EventType(r.EventType),
		EventDate:          r.EventDate.Time,
		IsSyncedWithGoogle: r.IsSyncedWithGoogle,
		GoogleEventID:      r.GoogleEventID,
	}
}

func (r userRecord) toModel() models.User {
	return models.User{
		ID:              recordID(r.ID),
		Email:           r.Email,
		PinCode:         r.PinCode,
		ThemePreference: models.Theme(r.ThemePreference),
	}
}
