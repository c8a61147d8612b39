package services

import (
	"context"
	"fmt"
	"time"

	"github.com/capnote/capnote/internal/client/models"
	"github.com/capnote/capnote/internal/client/remote"
	"github.com/capnote/capnote/internal/client/tags"
	"github.com/capnote/capnote/internal/logging"
)

// NoteInput is what the user supplies when creating or editing a note.
type NoteInput struct {
	Title        string `validate:"required,max=200"`
	Description  string
	Tag          string `validate:"required,max=50"`
	TagColor     string
	IsPinned     bool
	ReminderTime *time.Time
}

type NotesService struct {
	client remote.Client
	logger logging.Logger
	now    func() time.Time
}

func NewNotesService(client remote.Client, logger logging.Logger) *NotesService {
	return &NotesService{client: client, logger: logger, now: time.Now}
}

func (s *NotesService) List(ctx context.Context) ([]models.Note, error) {
	return s.client.ListNotes(ctx)
}

func (s *NotesService) ListByTag(ctx context.Context, tag string) ([]models.Note, error) {
	return s.client.ListNotesByTag(ctx, tag)
}

// Create stores a new note. An unrecognized tag color falls back to the
// default palette entry.
func (s *NotesService) Create(ctx context.Context, in NoteInput) (*models.Note, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid note: %w", err)
	}
	now := s.now().UTC()
	note := models.Note{
		Title:        in.Title,
		Description:  in.Description,
		Tag:          in.Tag,
		TagColor:     tags.Resolve(in.TagColor).Value,
		IsPinned:     in.IsPinned,
		ReminderTime: in.ReminderTime,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.client.CreateNote(ctx, note)
}

// Update replaces the stored note and bumps its updated_at stamp.
func (s *NotesService) Update(ctx context.Context, note models.Note) (*models.Note, error) {
	if note.ID == "" {
		return nil, fmt.Errorf("invalid note: missing id")
	}
	note.TagColor = tags.Resolve(note.TagColor).Value
	note.UpdatedAt = s.now().UTC()
	return s.client.UpdateNote(ctx, note)
}

func (s *NotesService) TogglePin(ctx context.Context, note models.Note) (*models.Note, error) {
	note.IsPinned = !note.IsPinned
	return s.Update(ctx, note)
}

func (s *NotesService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("invalid note: missing id")
	}
	return s.client.DeleteNote(ctx, id)
}
