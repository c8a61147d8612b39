package services

import (
	"context"
	"fmt"

	"github.com/capnote/capnote/internal/client/models"
	"github.com/capnote/capnote/internal/client/remote"
	"github.com/capnote/capnote/internal/logging"
)

type ChecklistsService struct {
	client remote.Client
	logger logging.Logger
}

func NewChecklistsService(client remote.Client, logger logging.Logger) *ChecklistsService {
	return &ChecklistsService{client: client, logger: logger}
}

// List returns the items of one note, oldest first.
func (s *ChecklistsService) List(ctx context.Context, noteID string) ([]models.Checklist, error) {
	if noteID == "" {
		return nil, fmt.Errorf("invalid checklist: missing note id")
	}
	return s.client.ListChecklists(ctx, noteID)
}

func (s *ChecklistsService) Add(ctx context.Context, noteID, title string) (*models.Checklist, error) {
	if noteID == "" {
		return nil, fmt.Errorf("invalid checklist: missing note id")
	}
	if title == "" {
		return nil, fmt.Errorf("invalid checklist: missing title")
	}
	return s.client.CreateChecklist(ctx, models.Checklist{NoteID: noteID, Title: title})
}

func (s *ChecklistsService) Toggle(ctx context.Context, item models.Checklist) (*models.Checklist, error) {
	item.IsDone = !item.IsDone
	return s.client.UpdateChecklist(ctx, item)
}

func (s *ChecklistsService) Rename(ctx context.Context, item models.Checklist, title string) (*models.Checklist, error) {
	if title == "" {
		return nil, fmt.Errorf("invalid checklist: missing title")
	}
	item.Title = title
	return s.client.UpdateChecklist(ctx, item)
}

func (s *ChecklistsService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("invalid checklist: missing id")
	}
	return s.client.DeleteChecklist(ctx, id)
}
