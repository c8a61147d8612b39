package cli

import (
	"context"
	"os"

	"github.com/capnote/capnote/internal/client/services"
	"github.com/capnote/capnote/internal/client/store"
)

// Register prompts for credentials and creates a new account. Backend auth
// errors are shown in their user-facing Turkish form.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "E-posta", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Şifre: ")
	if err != nil {
		return err
	}

	user, err := a.auth.SignUp(ctx, email, string(password))
	if err != nil {
		printlnFn(services.TranslateAuthError(err))
		return err
	}

	a.store.Dispatch(store.SetUser{User: user})
	printlnFn("Hesap oluşturuldu: " + user.Email)
	return nil
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "E-posta", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Şifre: ")
	if err != nil {
		return err
	}

	user, err := a.auth.SignIn(ctx, email, string(password))
	if err != nil {
		printlnFn(services.TranslateAuthError(err))
		return err
	}

	a.store.Dispatch(store.SetUser{User: user})
	printlnFn("Giriş başarılı: " + user.Email)
	return nil
}

// Logout ends the session. Collections are cleared but settings stay.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		a.logger.Warn(ctx, "sign-out incomplete", "error", err)
	}
	a.store.Dispatch(store.SignOut{})
	printlnFn("Çıkış yapıldı.")
	return nil
}
