// Package auth implements the dashboard's deliberately simple login: a
// seeded user list, a linear exact-match credential scan and a single
// active session record whose presence gates the protected views. There is
// no hashing, lockout or rate limiting; the storage layer is the trust
// boundary, as in the system this replaces.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/soyticz12/HRIS/internal/model"
	"github.com/soyticz12/HRIS/internal/storage"
)

var (
	ErrBadCredentials   = errors.New("invalid username or password")
	ErrNoSession        = errors.New("not logged in")
	ErrPasswordFields   = errors.New("all password fields are required")
	ErrPasswordTooShort = errors.New("new password must be at least 8 characters")
	ErrPasswordMismatch = errors.New("new password and confirmation do not match")
	ErrWrongPassword    = errors.New("current password is incorrect")
)

const SessionCookie = "hris_session"

type Service struct {
	mu     sync.Mutex
	store  storage.Store
	logger *log.Logger

	initialAdmin model.StoredUser
}

func NewService(store storage.Store, initialAdmin model.StoredUser, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	if initialAdmin.Username == "" {
		initialAdmin = model.StoredUser{Username: "admin", Password: "admin123", Role: model.RoleAdmin}
	}
	if initialAdmin.Role == "" {
		initialAdmin.Role = model.RoleAdmin
	}
	return &Service{store: store, logger: logger, initialAdmin: initialAdmin}
}

func (s *Service) loadUsers() ([]model.StoredUser, error) {
	raw, ok, err := s.store.Read(storage.KeyUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var users []model.StoredUser
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, nil
	}
	return users, nil
}

func (s *Service) saveUsers(users []model.StoredUser) error {
	b, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("auth: encode users: %w", err)
	}
	return s.store.Write(storage.KeyUsers, b)
}

// ensureSeededLocked writes the initial admin account the first time the
// user store is touched. An existing store is left alone.
func (s *Service) ensureSeededLocked() ([]model.StoredUser, error) {
	_, ok, err := s.store.Read(storage.KeyUsers)
	if err != nil {
		return nil, err
	}
	if ok {
		return s.loadUsers()
	}
	users := []model.StoredUser{s.initialAdmin}
	if err := s.saveUsers(users); err != nil {
		return nil, err
	}
	s.logger.Printf("[auth] seeded initial admin account %q", s.initialAdmin.Username)
	return users, nil
}

// EnsureSeeded is the exported hook used at startup and by the ops CLI.
func (s *Service) EnsureSeeded() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.ensureSeededLocked()
	return err
}

func newToken() string {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// Login scans the stored users for an exact username+password match and,
// on success, replaces the active session record.
func (s *Service) Login(username, password string) (model.Session, error) {
	username = strings.TrimSpace(username)

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.ensureSeededLocked()
	if err != nil {
		return model.Session{}, err
	}

	for _, u := range users {
		if u.Username == username && u.Password == password {
			sess := model.Session{Username: u.Username, Role: u.Role, Token: newToken()}
			b, err := json.Marshal(sess)
			if err != nil {
				return model.Session{}, fmt.Errorf("auth: encode session: %w", err)
			}
			if err := s.store.Write(storage.KeySession, b); err != nil {
				return model.Session{}, err
			}
			s.logger.Printf("[auth] %s logged in", u.Username)
			return sess, nil
		}
	}
	return model.Session{}, ErrBadCredentials
}

// Logout removes the session record outright.
func (s *Service) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Delete(storage.KeySession)
}

// CurrentSession returns the active session, or ErrNoSession when the
// record is absent or unreadable.
func (s *Service) CurrentSession() (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentSessionLocked()
}

func (s *Service) currentSessionLocked() (model.Session, error) {
	raw, ok, err := s.store.Read(storage.KeySession)
	if err != nil {
		return model.Session{}, err
	}
	if !ok {
		return model.Session{}, ErrNoSession
	}
	var sess model.Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.Username == "" {
		return model.Session{}, ErrNoSession
	}
	return sess, nil
}

// ChangePassword applies the settings-page rules: every field present, the
// new password at least 8 characters and confirmed, and the current
// password correct for the logged-in user.
func (s *Service) ChangePassword(current, next, confirm string) error {
	if current == "" || next == "" || confirm == "" {
		return ErrPasswordFields
	}
	if len(next) < 8 {
		return ErrPasswordTooShort
	}
	if next != confirm {
		return ErrPasswordMismatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.currentSessionLocked()
	if err != nil {
		return err
	}
	users, err := s.ensureSeededLocked()
	if err != nil {
		return err
	}
	for i, u := range users {
		if u.Username == sess.Username {
			if u.Password != current {
				return ErrWrongPassword
			}
			users[i].Password = next
			return s.saveUsers(users)
		}
	}
	return ErrNoSession
}
