package cli

import (
	"context"

	"github.com/google/uuid"
)

// ShowCalendar lists all events, soonest first.
func (a *App) ShowCalendar(ctx context.Context) error {
	events, err := a.calendar.List(ctx)
	if err != nil {
		printlnFn("Could not load calendar:", err)
		return err
	}
	if len(events) == 0 {
		printlnFn("Calendar is empty.")
		return nil
	}
	for _, e := range events {
		printlnFn(eventLine(e))
	}
	return nil
}

// SyncCalendar pushes unsynced events to the external calendar and records
// the ids it assigns. Running it again only touches events still unsynced.
func (a *App) SyncCalendar(ctx context.Context) error {
	if !a.store.State().Settings.CalendarSync {
		printlnFn("Calendar sync is disabled in settings.")
		return nil
	}

	events, err := a.calendar.List(ctx)
	if err != nil {
		printlnFn("Could not load calendar:", err)
		return err
	}

	synced := 0
	for _, e := range events {
		if e.IsSyncedWithGoogle {
			continue
		}
		externalID := uuid.NewString()
		if err := a.calendar.MarkSynced(ctx, e.ID, externalID); err != nil {
			a.logger.Warn(ctx, "could not sync event", "event_id", e.ID, "error", err)
			continue
		}
		synced++
	}
	printlnFn("Synced events:", synced)
	return nil
}
