package cli

import (
	"context"
	"errors"
	"os"

	"github.com/capnote/capnote/internal/client/models"
	"github.com/capnote/capnote/internal/client/pinlock"
	"github.com/capnote/capnote/internal/client/services"
	"github.com/capnote/capnote/internal/client/store"
)

const maxPINAttempts = 3

// bootstrap loads persisted settings into the store, arranges for settings
// changes to be written back, enforces the PIN gate and tries to restore the
// saved session. It returns false when the PIN gate refused entry.
func (a *App) bootstrap(ctx context.Context) bool {
	settings := a.loadSettings()
	a.store.Subscribe(a.persistSettings)

	if settings.PinLock && !a.unlockWithPIN() {
		printlnFn("Too many wrong PIN attempts.")
		return false
	}

	user, err := a.auth.Restore(ctx)
	switch {
	case err == nil:
		a.store.Dispatch(store.SetUser{User: user})
		printlnFn("Welcome back, " + user.Email)
	case errors.Is(err, services.ErrNoSession):
		a.store.Dispatch(store.SetLoading{Loading: false})
	default:
		a.logger.Warn(ctx, "session restore failed", "error", err)
		a.store.Dispatch(store.SetLoading{Loading: false})
	}
	return true
}

func (a *App) loadSettings() models.AppSettings {
	settings, err := a.local.LoadSettings()
	if err != nil {
		a.logger.Warn(context.Background(), "could not load settings", "error", err)
		settings = models.DefaultSettings()
	}
	a.store.Dispatch(store.SetSettings{Patch: models.SettingsPatch{
		Theme:         &settings.Theme,
		Notifications: &settings.Notifications,
		DefaultPhone:  &settings.DefaultPhone,
		CalendarSync:  &settings.CalendarSync,
		PinLock:       &settings.PinLock,
	}})
	return settings
}

// persistSettings writes settings back whenever a dispatch changed them.
func (a *App) persistSettings(prev, next store.State) {
	if prev.Settings == next.Settings {
		return
	}
	if err := a.local.SaveSettings(next.Settings); err != nil {
		a.logger.Warn(context.Background(), "could not save settings", "error", err)
	}
}

func (a *App) unlockWithPIN() bool {
	hash, err := a.local.LoadPINHash()
	if err != nil {
		a.logger.Warn(context.Background(), "could not load PIN", "error", err)
		return true
	}
	if len(hash) == 0 {
		// lock enabled but no PIN stored, nothing to check against
		return true
	}

	for attempt := 0; attempt < maxPINAttempts; attempt++ {
		pin, err := getPassword(os.Stdout, "Enter PIN: ")
		if err != nil {
			return false
		}
		if pinlock.Verify(hash, string(pin)) {
			return true
		}
		printlnFn("Wrong PIN.")
	}
	return false
}
