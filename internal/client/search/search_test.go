package search

import (
	"testing"

	"github.com/capnote/capnote/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func sampleNotes() []models.Note {
	return []models.Note{
		{ID: "1", Title: "Market listesi", Description: "süt, ekmek", Tag: "Alışveriş", TagColor: "#3B82F6"},
		{ID: "2", Title: "Toplantı", Description: "pazartesi 10:00", Tag: "İş", TagColor: "#10B981"},
		{ID: "3", Title: "Kitap önerileri", Description: "dune", Tag: "Alışveriş", TagColor: "#3B82F6"},
	}
}

func TestNotes(t *testing.T) {
	notes := sampleNotes()

	t.Run("empty query returns input unchanged", func(t *testing.T) {
		got := Notes(notes, "")
		assert.Equal(t, notes, got)
	})

	t.Run("whitespace query returns input unchanged", func(t *testing.T) {
		got := Notes(notes, "   \t")
		assert.Equal(t, notes, got)
	})

	t.Run("case-insensitive title match", func(t *testing.T) {
		got := Notes(notes, "MARKET")
		assert.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("description match", func(t *testing.T) {
		got := Notes(notes, "pazartesi")
		assert.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("tag match preserves order", func(t *testing.T) {
		got := Notes(notes, "alışveriş")
		assert.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Notes(notes, "yok"))
	})
}

func TestPayments(t *testing.T) {
	payments := []models.Payment{
		{ID: "1", Title: "Kira", Notes: "ev sahibi"},
		{ID: "2", Title: "Elektrik"},
	}

	t.Run("blank query returns input unchanged", func(t *testing.T) {
		assert.Equal(t, payments, Payments(payments, " "))
	})

	t.Run("title match", func(t *testing.T) {
		got := Payments(payments, "elektrik")
		assert.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("notes match", func(t *testing.T) {
		got := Payments(payments, "Sahibi")
		assert.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	})
}

func TestCollectTags(t *testing.T) {
	got := CollectTags(sampleNotes())
	assert.Equal(t, []models.Tag{
		{Name: "Alışveriş", Color: "#3B82F6", Count: 2},
		{Name: "İş", Color: "#10B981", Count: 1},
	}, got)

	assert.Empty(t, CollectTags([]models.Note{{Title: "untagged"}}))
}
