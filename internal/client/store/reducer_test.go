package store

import (
	"fmt"
	"testing"

	"github.com/capnote/capnote/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func note(id string) models.Note {
	return models.Note{ID: id, Title: "note " + id}
}

func payment(id string) models.Payment {
	return models.Payment{ID: id, Title: "payment " + id}
}

func TestReduceIsPure(t *testing.T) {
	s := InitialState()
	s.Notes = []models.Note{note("1"), note("2")}

	actions := []Action{
		SetUser{User: &models.User{ID: "u1", Email: "a@b.co"}},
		SetLoading{Loading: true},
		AddNote{Note: note("3")},
		UpdateNote{Note: note("2")},
		DeleteNote{ID: "1"},
		AddPayment{Payment: payment("p")},
		ToggleTheme{},
		SignOut{},
	}

	for _, a := range actions {
		t.Run(fmt.Sprintf("%T", a), func(t *testing.T) {
			before := s
			first := Reduce(s, a)
			second := Reduce(s, a)
			assert.Equal(t, first, second, "same state and action must reduce identically")
			assert.Equal(t, before, s, "input state must not be mutated")
		})
	}
}

func TestSetUser(t *testing.T) {
	s := InitialState()
	require.True(t, s.IsLoading)

	u := &models.User{ID: "u1", Email: "a@b.co", ThemePreference: models.ThemeSystem}
	s = Reduce(s, SetUser{User: u})
	assert.Equal(t, u, s.User)
	assert.True(t, s.IsAuthenticated)
	assert.False(t, s.IsLoading, "auth resolution ends the loading phase")

	s = Reduce(s, SetUser{User: nil})
	assert.Nil(t, s.User)
	assert.False(t, s.IsAuthenticated)
	assert.False(t, s.IsLoading)
}

func TestSetLoading(t *testing.T) {
	s := Reduce(InitialState(), SetLoading{Loading: false})
	assert.False(t, s.IsLoading)
	only := Reduce(s, SetLoading{Loading: true})
	s.IsLoading = true
	assert.Equal(t, s, only, "SetLoading must touch nothing else")
}

func TestAddNotePrepends(t *testing.T) {
	s := InitialState()
	for i := 1; i <= 4; i++ {
		s = Reduce(s, AddNote{Note: note(fmt.Sprint(i))})
	}
	require.Len(t, s.Notes, 4)
	// newest first
	assert.Equal(t, []string{"4", "3", "2", "1"},
		[]string{s.Notes[0].ID, s.Notes[1].ID, s.Notes[2].ID, s.Notes[3].ID})
}

func TestAddPaymentAppends(t *testing.T) {
	s := InitialState()
	for i := 1; i <= 4; i++ {
		s = Reduce(s, AddPayment{Payment: payment(fmt.Sprint(i))})
	}
	require.Len(t, s.Payments, 4)
	// chronological: oldest first
	assert.Equal(t, []string{"1", "2", "3", "4"},
		[]string{s.Payments[0].ID, s.Payments[1].ID, s.Payments[2].ID, s.Payments[3].ID})
}

func TestUpdatePreservesPosition(t *testing.T) {
	s := InitialState()
	s.Notes = []models.Note{note("1"), note("2"), note("3"), note("4"), note("5")}

	updated := note("3")
	updated.Title = "değişti"
	s = Reduce(s, UpdateNote{Note: updated})

	require.Len(t, s.Notes, 5)
	assert.Equal(t, "değişti", s.Notes[2].Title)
	assert.Equal(t, "2", s.Notes[1].ID)
	assert.Equal(t, "4", s.Notes[3].ID)

	s.Payments = []models.Payment{payment("a"), payment("b"), payment("c")}
	up := payment("b")
	up.IsPaid = true
	s = Reduce(s, UpdatePayment{Payment: up})
	assert.True(t, s.Payments[1].IsPaid)
	assert.Equal(t, "a", s.Payments[0].ID)
	assert.Equal(t, "c", s.Payments[2].ID)
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	s := InitialState()
	s.Notes = []models.Note{note("1")}

	got := Reduce(s, UpdateNote{Note: note("missing")})
	assert.Equal(t, s, got)
}

func TestDelete(t *testing.T) {
	s := InitialState()
	s.Notes = []models.Note{note("1"), note("2"), note("3")}
	s.Payments = []models.Payment{payment("a"), payment("b")}

	s2 := Reduce(s, DeleteNote{ID: "2"})
	require.Len(t, s2.Notes, 2)
	assert.Equal(t, "1", s2.Notes[0].ID)
	assert.Equal(t, "3", s2.Notes[1].ID)

	s3 := Reduce(s2, DeletePayment{ID: "a"})
	require.Len(t, s3.Payments, 1)
	assert.Equal(t, "b", s3.Payments[0].ID)

	t.Run("unknown id is a no-op", func(t *testing.T) {
		got := Reduce(s, DeleteNote{ID: "zzz"})
		assert.Equal(t, s, got)
		got = Reduce(s, DeletePayment{ID: "zzz"})
		assert.Equal(t, s, got)
	})
}

func TestSetCollectionsReplaceWholesale(t *testing.T) {
	s := InitialState()
	s.Notes = []models.Note{note("old")}

	fresh := []models.Note{note("a"), note("b")}
	s = Reduce(s, SetNotes{Notes: fresh})
	assert.Equal(t, fresh, s.Notes)

	pays := []models.Payment{payment("p1")}
	s = Reduce(s, SetPayments{Payments: pays})
	assert.Equal(t, pays, s.Payments)
}

func TestSetSelectedTag(t *testing.T) {
	s := Reduce(InitialState(), SetSelectedTag{Tag: "İş"})
	assert.Equal(t, "İş", s.SelectedTag)
	s = Reduce(s, SetSelectedTag{})
	assert.Empty(t, s.SelectedTag)
}

func TestToggleTheme(t *testing.T) {
	tests := []struct {
		from models.Theme
		want models.Theme
	}{
		{models.ThemeLight, models.ThemeDark},
		{models.ThemeDark, models.ThemeLight},
		// system does not cycle: the flip treats anything non-light as dark-ish
		{models.ThemeSystem, models.ThemeLight},
	}
	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			s := InitialState()
			s.Settings.Theme = tt.from
			s = Reduce(s, ToggleTheme{})
			assert.Equal(t, tt.want, s.Settings.Theme)
		})
	}
}

func TestSignOutKeepsSettings(t *testing.T) {
	s := InitialState()
	s.User = &models.User{ID: "u1"}
	s.IsAuthenticated = true
	s.IsLoading = false
	s.Notes = []models.Note{note("1")}
	s.Payments = []models.Payment{payment("p")}
	s.SelectedTag = "İş"
	s.Settings.Theme = models.ThemeDark
	s.Settings.DefaultPhone = "905551112233"

	settingsBefore := s.Settings
	s = Reduce(s, SignOut{})

	assert.Nil(t, s.User)
	assert.False(t, s.IsAuthenticated)
	assert.False(t, s.IsLoading)
	assert.Empty(t, s.Notes)
	assert.Empty(t, s.Payments)
	assert.Empty(t, s.SelectedTag)
	assert.Equal(t, settingsBefore, s.Settings, "settings survive sign-out")
}

func TestUnknownActionReturnsStateUnchanged(t *testing.T) {
	type mystery struct{ Action }
	s := InitialState()
	s.Notes = []models.Note{note("1")}
	assert.Equal(t, s, Reduce(s, mystery{}))
}
