package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/capnote/capnote/internal/client/models"
	"github.com/capnote/capnote/internal/client/search"
	"github.com/capnote/capnote/internal/client/services"
	"github.com/capnote/capnote/internal/client/store"
	"github.com/capnote/capnote/internal/sharex"
)

const reminderLayout = "02/01/2006 15:04"

// ShowNotes refreshes the notes collection from the backend and prints it.
// An active tag filter narrows the query.
func (a *App) ShowNotes(ctx context.Context) error {
	state := a.store.State()

	var (
		notes []models.Note
		err   error
	)
	if state.SelectedTag != "" {
		notes, err = a.notes.ListByTag(ctx, state.SelectedTag)
	} else {
		notes, err = a.notes.List(ctx)
	}
	if err != nil {
		printlnFn("Could not load notes:", err)
		return err
	}

	a.store.Dispatch(store.SetNotes{Notes: notes})
	if len(notes) == 0 {
		printlnFn("No notes.")
		return nil
	}
	for _, n := range notes {
		printlnFn(noteLine(n))
	}
	return nil
}

// AddNote interactively collects a note and stores it. With calendar sync
// enabled, a reminder also lands on the calendar.
func (a *App) AddNote(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Başlık", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Açıklama", os.Stdout)
	if err != nil {
		return err
	}
	tag, err := getSimpleText(a.reader, "Etiket", os.Stdout)
	if err != nil {
		return err
	}
	color, err := getSimpleText(a.reader, "Etiket rengi (boş = varsayılan)", os.Stdout)
	if err != nil {
		return err
	}
	reminder, err := a.readOptionalTime("Hatırlatma (" + reminderLayout + ", boş = yok)")
	if err != nil {
		return err
	}

	note, err := a.notes.Create(ctx, services.NoteInput{
		Title:        title,
		Description:  description,
		Tag:          tag,
		TagColor:     color,
		ReminderTime: reminder,
	})
	if err != nil {
		printlnFn("Could not create note:", err)
		return err
	}

	a.store.Dispatch(store.AddNote{Note: *note})

	if reminder != nil && a.store.State().Settings.CalendarSync {
		if _, err := a.calendar.AddNoteEvent(ctx, note.ID, *reminder); err != nil {
			a.logger.Warn(ctx, "could not add calendar event", "note_id", note.ID, "error", err)
		}
	}

	printlnFn("Not eklendi:", note.ID)
	return nil
}

func (a *App) DeleteNote(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Not ID", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.notes.Delete(ctx, id); err != nil {
		printlnFn("Could not delete note:", err)
		return err
	}
	a.store.Dispatch(store.DeleteNote{ID: id})
	printlnFn("Not silindi.")
	return nil
}

func (a *App) TogglePin(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Not ID", os.Stdout)
	if err != nil {
		return err
	}
	note, ok := a.findNote(id)
	if !ok {
		printlnFn("Not bulunamadı:", id)
		return nil
	}
	updated, err := a.notes.TogglePin(ctx, note)
	if err != nil {
		printlnFn("Could not update note:", err)
		return err
	}
	a.store.Dispatch(store.UpdateNote{Note: *updated})
	return nil
}

// SearchNotes filters the already-loaded notes by a case-insensitive term.
func (a *App) SearchNotes(ctx context.Context) error {
	term, err := getSimpleText(a.reader, "Ara", os.Stdout)
	if err != nil {
		return err
	}
	matches := search.Notes(a.store.State().Notes, term)
	if len(matches) == 0 {
		printlnFn("No matches.")
		return nil
	}
	for _, n := range matches {
		printlnFn(noteLine(n))
	}
	return nil
}

// ShowTags aggregates tags over the loaded notes.
func (a *App) ShowTags(ctx context.Context) error {
	tags := search.CollectTags(a.store.State().Notes)
	if len(tags) == 0 {
		printlnFn("No tags.")
		return nil
	}
	for _, t := range tags {
		printlnFn(fmt.Sprintf("#%s (%d)", t.Name, t.Count))
	}
	return nil
}

// SelectTag sets or clears the tag filter and refreshes the list.
func (a *App) SelectTag(ctx context.Context, tag string) error {
	a.store.Dispatch(store.SetSelectedTag{Tag: tag})
	return a.ShowNotes(ctx)
}

// ShareNote prints a WhatsApp share link for a note.
func (a *App) ShareNote(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Not ID", os.Stdout)
	if err != nil {
		return err
	}
	note, ok := a.findNote(id)
	if !ok {
		printlnFn("Not bulunamadı:", id)
		return nil
	}
	printlnFn(sharex.NoteURL(note, a.store.State().Settings.DefaultPhone))
	return nil
}

func (a *App) findNote(id string) (models.Note, bool) {
	for _, n := range a.store.State().Notes {
		if n.ID == id {
			return n, true
		}
	}
	return models.Note{}, false
}

// readOptionalTime reads a timestamp in reminderLayout, empty means none.
func (a *App) readOptionalTime(prompt string) (*time.Time, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(reminderLayout, raw, time.Local)
	if err != nil {
		printlnFn("Tarih anlaşılamadı:", raw)
		return nil, err
	}
	return &t, nil
}
