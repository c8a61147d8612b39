package localstore

import (
	"errors"

	"github.com/capnote/capnote/internal/client/models"
	"github.com/google/uuid"
)

const (
	settingsKey = "settings"
	sessionKey  = "session"
	clientIDKey = "client_id"
	pinKey      = "pin"
)

// SaveSettings persists the app settings. Called on every settings change;
// the stored value survives sign-out.
func (s *Store) SaveSettings(settings models.AppSettings) error {
	return s.Save(settingsKey, settings)
}

// LoadSettings returns the persisted settings, or the defaults when nothing
// was stored yet.
func (s *Store) LoadSettings() (models.AppSettings, error) {
	settings := models.DefaultSettings()
	err := s.Load(settingsKey, &settings)
	if errors.Is(err, ErrNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.DefaultSettings(), err
	}
	return settings, nil
}

// Session is the locally cached auth session.
type Session struct {
	Token string `json:"token"`
}

func (s *Store) SaveSession(sess Session) error {
	return s.Save(sessionKey, sess)
}

// LoadSession returns the cached session. ErrNotFound is propagated so
// callers can tell "never signed in" from a read failure.
func (s *Store) LoadSession() (Session, error) {
	var sess Session
	err := s.Load(sessionKey, &sess)
	return sess, err
}

func (s *Store) ClearSession() error {
	return s.Delete(sessionKey)
}

// ClientID returns the persistent client instance id, generating and storing
// one on first call. Used to tag log output.
func (s *Store) ClientID() (string, error) {
	var id string
	err := s.Load(clientIDKey, &id)
	if err == nil && id != "" {
		return id, nil
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		return "", err
	}
	id = uuid.NewString()
	if err := s.Save(clientIDKey, id); err != nil {
		return "", err
	}
	return id, nil
}

// SavePINHash stores the bcrypt hash guarding the local PIN lock.
func (s *Store) SavePINHash(hash []byte) error {
	return s.Save(pinKey, hash)
}

// LoadPINHash returns the stored PIN hash, or nil when no PIN was set.
func (s *Store) LoadPINHash() ([]byte, error) {
	var hash []byte
	err := s.Load(pinKey, &hash)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return hash, err
}

func (s *Store) ClearPINHash() error {
	return s.Delete(pinKey)
}
