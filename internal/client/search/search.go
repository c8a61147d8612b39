// Package search implements the client-side search predicates.
//
// Matching is a case-insensitive substring test over a fixed field set per
// entity. A blank query is not a filter: the input is returned unchanged.
package search

import (
	"strings"

	"github.com/capnote/capnote/internal/client/models"
)

// Notes filters notes by term across title, description and tag.
func Notes(notes []models.Note, term string) []models.Note {
	if strings.TrimSpace(term) == "" {
		return notes
	}
	t := strings.ToLower(term)
	result := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), t) ||
			strings.Contains(strings.ToLower(n.Description), t) ||
			strings.Contains(strings.ToLower(n.Tag), t) {
			result = append(result, n)
		}
	}
	return result
}

// Payments filters payments by term across title and the free-text notes.
func Payments(payments []models.Payment, term string) []models.Payment {
	if strings.TrimSpace(term) == "" {
		return payments
	}
	t := strings.ToLower(term)
	result := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		if strings.Contains(strings.ToLower(p.Title), t) ||
			(p.Notes != "" && strings.Contains(strings.ToLower(p.Notes), t)) {
			result = append(result, p)
		}
	}
	return result
}

// CollectTags aggregates the distinct tags used by notes, keeping the color of
// the first occurrence and counting usages. Untagged notes are skipped.
func CollectTags(notes []models.Note) []models.Tag {
	index := map[string]int{}
	result := []models.Tag{}
	for _, n := range notes {
		if n.Tag == "" {
			continue
		}
		if i, ok := index[n.Tag]; ok {
			result[i].Count++
			continue
		}
		index[n.Tag] = len(result)
		result = append(result, models.Tag{Name: n.Tag, Color: n.TagColor, Count: 1})
	}
	return result
}
