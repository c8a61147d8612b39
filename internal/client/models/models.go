// Package models defines the CapNote domain entities. The remote service is
// the system of record; instances held by the store are transient local copies.
package models

import "time"

// Recurrence classifies how a payment repeats.
type Recurrence string

const (
	RecurrenceOnce    Recurrence = "once"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

// Theme is the UI theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// EventType discriminates what a calendar event is linked to.
type EventType string

const (
	EventTypeNote    EventType = "note"
	EventTypePayment EventType = "payment"
)

// Note is a tagged note. TagColor holds the canonical hex value of a palette
// entry; unknown values resolve to the palette default at presentation time.
type Note struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Tag          string     `json:"tag"`
	TagColor     string     `json:"tag_color"`
	IsPinned     bool       `json:"is_pinned"`
	ReminderTime *time.Time `json:"reminder_time,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Payment is a payment reminder. Amount is a currency-agnostic non-negative
// number. ReceiptPath/ReceiptURL reference an uploaded receipt object, if any.
type Payment struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Amount       float64    `json:"amount"`
	DueDate      time.Time  `json:"due_date"`
	IsPaid       bool       `json:"is_paid"`
	Recurrence   Recurrence `json:"recurrence"`
	ReminderTime *time.Time `json:"reminder_time,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	ReceiptPath  string     `json:"receipt_path,omitempty"`
	ReceiptURL   string     `json:"receipt_url,omitempty"`
}

// Checklist is a single checklist item belonging to a note. Referential
// integrity of NoteID is the server's responsibility.
type Checklist struct {
	ID     string `json:"id"`
	NoteID string `json:"note_id"`
	Title  string `json:"title"`
	IsDone bool   `json:"is_done"`
}

// CalendarEvent links a note or a payment (per EventType, mutually exclusive)
// to a date, optionally mirrored to an external calendar.
type CalendarEvent struct {
	ID                 string    `json:"id"`
	LinkedNoteID       string    `json:"linked_note_id,omitempty"`
	LinkedPaymentID    string    `json:"linked_payment_id,omitempty"`
	EventType          EventType `json:"event_type"`
	EventDate          time.Time `json:"event_date"`
	IsSyncedWithGoogle bool      `json:"is_synced_with_google"`
	GoogleEventID      string    `json:"google_event_id,omitempty"`
}

// User is the authenticated account.
type User struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	PinCode         string `json:"pin_code,omitempty"`
	ThemePreference Theme  `json:"theme_preference"`
}

// Tag is a derived aggregate: a distinct note tag with its color and usage count.
type Tag struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// Receipt references an uploaded receipt object by storage path and public URL.
type Receipt struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}
