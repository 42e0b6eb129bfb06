// Package settings persists the per-device preference blob behind the
// settings page.
package settings

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/soyticz12/HRIS/internal/model"
	"github.com/soyticz12/HRIS/internal/storage"
)

type Service struct {
	mu    sync.Mutex
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Get returns the saved preferences, or the first-run defaults when
// nothing (or garbage) is stored.
func (s *Service) Get() (model.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.store.Read(storage.KeyPrefs)
	if err != nil {
		return model.Preferences{}, err
	}
	if !ok {
		return model.DefaultPreferences(), nil
	}
	var p model.Preferences
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.DefaultPreferences(), nil
	}
	if p.Theme == "" {
		p.Theme = model.ThemeSystem
	}
	return p, nil
}

// Put replaces the preference blob. Following the system theme forces the
// stored theme to "system", matching the settings page behavior.
func (s *Service) Put(p model.Preferences) (model.Preferences, error) {
	switch p.Theme {
	case model.ThemeLight, model.ThemeDark, model.ThemeSystem:
	default:
		p.Theme = model.ThemeSystem
	}
	if p.UseSystem {
		p.Theme = model.ThemeSystem
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.Marshal(p)
	if err != nil {
		return model.Preferences{}, fmt.Errorf("settings: encode: %w", err)
	}
	if err := s.store.Write(storage.KeyPrefs, b); err != nil {
		return model.Preferences{}, err
	}
	return p, nil
}

// RemoveAvatar drops only the stored avatar image.
func (s *Service) RemoveAvatar() (model.Preferences, error) {
	p, err := s.Get()
	if err != nil {
		return model.Preferences{}, err
	}
	p.AvatarData = ""
	return s.Put(p)
}
