package services

import (
	"context"
	"fmt"
	"time"

	"github.com/capnote/capnote/internal/client/models"
	"github.com/capnote/capnote/internal/client/remote"
	"github.com/capnote/capnote/internal/logging"
)

type CalendarService struct {
	client remote.Client
	logger logging.Logger
}

func NewCalendarService(client remote.Client, logger logging.Logger) *CalendarService {
	return &CalendarService{client: client, logger: logger}
}

// List returns all events, soonest first.
func (s *CalendarService) List(ctx context.Context) ([]models.CalendarEvent, error) {
	return s.client.ListCalendarEvents(ctx)
}

// AddNoteEvent puts a note's reminder on the calendar.
func (s *CalendarService) AddNoteEvent(ctx context.Context, noteID string, at time.Time) (*models.CalendarEvent, error) {
	if noteID == "" {
		return nil, fmt.Errorf("invalid event: missing note id")
	}
	return s.client.CreateCalendarEvent(ctx, models.CalendarEvent{
		LinkedNoteID: noteID,
		EventType:    models.EventTypeNote,
		EventDate:    at,
	})
}

// AddPaymentEvent puts a payment's due date on the calendar.
func (s *CalendarService) AddPaymentEvent(ctx context.Context, paymentID string, at time.Time) (*models.CalendarEvent, error) {
	if paymentID == "" {
		return nil, fmt.Errorf("invalid event: missing payment id")
	}
	return s.client.CreateCalendarEvent(ctx, models.CalendarEvent{
		LinkedPaymentID: paymentID,
		EventType:       models.EventTypePayment,
		EventDate:       at,
	})
}

// MarkSynced records the external calendar's id for an event. Repeating the
// call with the same arguments is harmless.
func (s *CalendarService) MarkSynced(ctx context.Context, id, externalID string) error {
	if id == "" {
		return fmt.Errorf("invalid event: missing id")
	}
	return s.client.MarkEventSynced(ctx, id, externalID)
}
