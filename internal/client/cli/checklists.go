package cli

import (
	"context"
	"os"
)

// ShowChecklist lists a note's checklist items, oldest first.
func (a *App) ShowChecklist(ctx context.Context) error {
	noteID, err := getSimpleText(a.reader, "Not ID", os.Stdout)
	if err != nil {
		return err
	}
	items, err := a.checklists.List(ctx, noteID)
	if err != nil {
		printlnFn("Could not load checklist:", err)
		return err
	}
	if len(items) == 0 {
		printlnFn("Checklist is empty.")
		return nil
	}
	for _, item := range items {
		printlnFn(checklistLine(item))
	}
	return nil
}

func (a *App) AddChecklistItem(ctx context.Context) error {
	noteID, err := getSimpleText(a.reader, "Not ID", os.Stdout)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Madde", os.Stdout)
	if err != nil {
		return err
	}
	item, err := a.checklists.Add(ctx, noteID, title)
	if err != nil {
		printlnFn("Could not add item:", err)
		return err
	}
	printlnFn("Eklendi:", item.ID)
	return nil
}

func (a *App) ToggleChecklistItem(ctx context.Context) error {
	noteID, err := getSimpleText(a.reader, "Not ID", os.Stdout)
	if err != nil {
		return err
	}
	itemID, err := getSimpleText(a.reader, "Madde ID", os.Stdout)
	if err != nil {
		return err
	}
	items, err := a.checklists.List(ctx, noteID)
	if err != nil {
		printlnFn("Could not load checklist:", err)
		return err
	}
	for _, item := range items {
		if item.ID == itemID {
			updated, err := a.checklists.Toggle(ctx, item)
			if err != nil {
				printlnFn("Could not update item:", err)
				return err
			}
			printlnFn(checklistLine(*updated))
			return nil
		}
	}
	printlnFn("Madde bulunamadı:", itemID)
	return nil
}
