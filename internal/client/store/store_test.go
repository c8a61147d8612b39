package store

import (
	"sync"
	"testing"

	"github.com/capnote/capnote/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchAndState(t *testing.T) {
	s := New(InitialState())

	s.Dispatch(AddNote{Note: models.Note{ID: "1", Title: "a"}})
	s.Dispatch(AddNote{Note: models.Note{ID: "2", Title: "b"}})

	st := s.State()
	require.Len(t, st.Notes, 2)
	assert.Equal(t, "2", st.Notes[0].ID)
}

func TestSnapshotIsStable(t *testing.T) {
	s := New(InitialState())
	s.Dispatch(AddNote{Note: models.Note{ID: "1"}})

	snap := s.State()
	s.Dispatch(AddNote{Note: models.Note{ID: "2"}})
	s.Dispatch(DeleteNote{ID: "1"})

	require.Len(t, snap.Notes, 1)
	assert.Equal(t, "1", snap.Notes[0].ID, "earlier snapshot must not move")
}

func TestSubscribers(t *testing.T) {
	s := New(InitialState())

	var prevTheme, nextTheme models.Theme
	calls := 0
	s.Subscribe(func(prev, next State) {
		calls++
		prevTheme = prev.Settings.Theme
		nextTheme = next.Settings.Theme
	})

	s.Dispatch(ToggleTheme{})
	assert.Equal(t, 1, calls)
	assert.Equal(t, models.ThemeSystem, prevTheme)
	assert.Equal(t, models.ThemeLight, nextTheme)
}

func TestNilStorePanics(t *testing.T) {
	var s *Store
	assert.Panics(t, func() { s.Dispatch(SignOut{}) })
	assert.Panics(t, func() { _ = s.State() })
	assert.Panics(t, func() { s.Subscribe(func(State, State) {}) })
}

func TestConcurrentDispatches(t *testing.T) {
	s := New(InitialState())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(AddPayment{Payment: models.Payment{ID: "p"}})
		}()
	}
	wg.Wait()

	assert.Len(t, s.State().Payments, 50, "every dispatch must be applied exactly once")
}
