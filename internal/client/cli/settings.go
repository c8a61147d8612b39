package cli

import (
	"context"
	"fmt"
	"os"
	"unicode"

	"github.com/capnote/capnote/internal/client/models"
	"github.com/capnote/capnote/internal/client/pinlock"
	"github.com/capnote/capnote/internal/client/store"
)

// ShowSettings prints the current preferences.
func (a *App) ShowSettings(ctx context.Context) error {
	s := a.store.State().Settings
	printlnFn("Tema:          ", string(s.Theme))
	printlnFn("Bildirimler:   ", onOff(s.Notifications.Enabled))
	printlnFn("  Sabah:       ", onOff(s.Notifications.PaymentMorning))
	printlnFn("  30 dk önce:  ", onOff(s.Notifications.Payment30Min))
	printlnFn("  Özel mesaj:  ", onOff(s.Notifications.CustomMessages))
	printlnFn("Takvim eşitleme:", onOff(s.CalendarSync))
	printlnFn("PIN kilidi:    ", onOff(s.PinLock))
	if s.DefaultPhone != "" {
		printlnFn("Telefon:       ", s.DefaultPhone)
	}
	return nil
}

// ToggleTheme cycles the theme: light becomes dark, anything else becomes
// light. The subscriber persists the change.
func (a *App) ToggleTheme(ctx context.Context) error {
	a.store.Dispatch(store.ToggleTheme{})
	printlnFn("Tema:", string(a.store.State().Settings.Theme))
	return nil
}

// SetPIN collects a new PIN, stores its hash and enables the lock. An empty
// PIN disables the lock and removes the hash.
func (a *App) SetPIN(ctx context.Context) error {
	pin, err := getPassword(os.Stdout, fmt.Sprintf("Yeni PIN (%d hane, boş = kaldır): ", pinlock.PINLength))
	if err != nil {
		return err
	}

	enabled := len(pin) > 0
	if enabled {
		if !validPIN(string(pin)) {
			printlnFn(fmt.Sprintf("PIN %d haneli olmalı.", pinlock.PINLength))
			return nil
		}
		hash, err := pinlock.Hash(string(pin))
		if err != nil {
			return err
		}
		if err := a.local.SavePINHash(hash); err != nil {
			printlnFn("Could not save PIN:", err)
			return err
		}
	} else {
		if err := a.local.ClearPINHash(); err != nil {
			a.logger.Warn(ctx, "could not clear PIN", "error", err)
		}
	}

	a.store.Dispatch(store.SetSettings{Patch: models.SettingsPatch{PinLock: &enabled}})
	if enabled {
		printlnFn("PIN kilidi açık.")
	} else {
		printlnFn("PIN kilidi kapalı.")
	}
	return nil
}

func validPIN(pin string) bool {
	if len(pin) != pinlock.PINLength {
		return false
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func onOff(b bool) string {
	if b {
		return "açık"
	}
	return "kapalı"
}
