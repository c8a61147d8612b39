// Package services holds the client-side use cases. Each service wraps the
// remote boundary with input validation and the bookkeeping the views need,
// so commands never talk to the backend directly.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/capnote/capnote/internal/client/localstore"
	"github.com/capnote/capnote/internal/client/models"
	"github.com/capnote/capnote/internal/client/remote"
	"github.com/capnote/capnote/internal/logging"
	"github.com/capnote/capnote/internal/validatex"
)

// ErrNoSession is returned by Restore when no usable saved session exists.
var ErrNoSession = errors.New("no saved session")

// Credential validation failures, surfaced verbatim to the user.
var (
	ErrInvalidEmail    = errors.New("Geçerli bir e-posta adresi girin")
	ErrPasswordTooWeak = errors.New("Şifre en az 6 karakter olmalı")
)

func checkCredentials(email, password string) error {
	if !validatex.Email(email) {
		return ErrInvalidEmail
	}
	if !validatex.Password(password) {
		return ErrPasswordTooWeak
	}
	return nil
}

type AuthService struct {
	client remote.Client
	local  *localstore.Store
	logger logging.Logger
}

func NewAuthService(client remote.Client, local *localstore.Store, logger logging.Logger) *AuthService {
	return &AuthService{client: client, local: local, logger: logger}
}

// SignUp registers a new account and leaves the connection authenticated.
// The session token is persisted so the next start can restore it.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	if err := checkCredentials(email, password); err != nil {
		return nil, err
	}
	token, err := s.client.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.finishSignIn(ctx, token)
}

// SignIn authenticates an existing account and persists the session token.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	if err := checkCredentials(email, password); err != nil {
		return nil, err
	}
	token, err := s.client.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.finishSignIn(ctx, token)
}

func (s *AuthService) finishSignIn(ctx context.Context, token string) (*models.User, error) {
	if err := s.local.SaveSession(localstore.Session{Token: token}); err != nil {
		s.logger.Warn(ctx, "could not persist session", "error", err)
	}
	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return user, nil
}

// Restore resumes the saved session, if any. An expired or rejected token
// is discarded and ErrNoSession is returned.
func (s *AuthService) Restore(ctx context.Context) (*models.User, error) {
	session, err := s.local.LoadSession()
	if err != nil {
		if errors.Is(err, localstore.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("reading saved session: %w", err)
	}
	if tokenExpired(session.Token) {
		_ = s.local.ClearSession()
		return nil, ErrNoSession
	}
	if err := s.client.Authenticate(ctx, session.Token); err != nil {
		_ = s.local.ClearSession()
		return nil, ErrNoSession
	}
	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return user, nil
}

// SignOut invalidates the server session and drops the saved token. The
// local token is cleared even when the server call fails.
func (s *AuthService) SignOut(ctx context.Context) error {
	err := s.client.Invalidate(ctx)
	if clearErr := s.local.ClearSession(); clearErr != nil && err == nil {
		err = clearErr
	}
	return err
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification happens server-side on Authenticate.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return true
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
