// Package bulletin is the dashboard announcement board.
package bulletin

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/soyticz12/HRIS/internal/ident"
	"github.com/soyticz12/HRIS/internal/model"
	"github.com/soyticz12/HRIS/internal/storage"
)

var (
	ErrTitleRequired   = errors.New("bulletin title is required")
	ErrMessageRequired = errors.New("bulletin message is required")
	ErrNotFound        = errors.New("bulletin not found")
)

// Filter selects which bulletins List returns.
type Filter string

const (
	FilterAll    Filter = "all"
	FilterUnread Filter = "unread"
	FilterPinned Filter = "pinned"
)

type Service struct {
	mu     sync.Mutex
	store  storage.Store
	logger *log.Logger
}

func NewService(store storage.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{store: store, logger: logger}
}

// seed returns the demo posts written the first time an empty board is
// read, matching the dashboard's first-run state.
func seed(now time.Time) []model.Bulletin {
	return []model.Bulletin{
		{
			ID:        ident.New("BUL"),
			Title:     "Welcome to the HRIS Dashboard",
			Message:   "Check announcements here. Pin important items so everyone sees them.",
			CreatedAt: now,
			Author:    "System",
			Priority:  model.PriorityNormal,
			Pinned:    true,
		},
		{
			ID:        ident.New("BUL"),
			Title:     "Payroll cutoff today",
			Message:   "Please finalize payroll computations before 3:00 PM.",
			CreatedAt: now,
			Author:    "Finance",
			Priority:  model.PriorityImportant,
		},
	}
}

func (s *Service) load(now time.Time) ([]model.Bulletin, error) {
	raw, ok, err := s.store.Read(storage.KeyBulletins)
	if err != nil {
		return nil, err
	}
	if ok {
		var items []model.Bulletin
		if err := json.Unmarshal(raw, &items); err != nil || items == nil {
			return []model.Bulletin{}, nil
		}
		return items, nil
	}

	items := seed(now)
	if err := s.save(items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) save(items []model.Bulletin) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("bulletin: encode: %w", err)
	}
	return s.store.Write(storage.KeyBulletins, b)
}

// Post publishes a new bulletin at the top of the board. Urgent posts are
// pinned automatically; a blank author falls back to "Admin".
func (s *Service) Post(title, message, author string, priority model.BulletinPriority, now time.Time) (model.Bulletin, error) {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	if title == "" {
		return model.Bulletin{}, ErrTitleRequired
	}
	if message == "" {
		return model.Bulletin{}, ErrMessageRequired
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = "Admin"
	}
	switch priority {
	case model.PriorityNormal, model.PriorityImportant, model.PriorityUrgent:
	default:
		priority = model.PriorityNormal
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(now)
	if err != nil {
		return model.Bulletin{}, err
	}

	b := model.Bulletin{
		ID:        ident.New("BUL"),
		Title:     title,
		Message:   message,
		CreatedAt: now,
		Author:    author,
		Priority:  priority,
		Pinned:    priority == model.PriorityUrgent,
	}
	items = append([]model.Bulletin{b}, items...)
	if err := s.save(items); err != nil {
		return model.Bulletin{}, err
	}
	return b, nil
}

func (s *Service) update(id string, now time.Time, fn func(*model.Bulletin)) (model.Bulletin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(now)
	if err != nil {
		return model.Bulletin{}, err
	}
	for i := range items {
		if items[i].ID == id {
			fn(&items[i])
			if err := s.save(items); err != nil {
				return model.Bulletin{}, err
			}
			return items[i], nil
		}
	}
	return model.Bulletin{}, ErrNotFound
}

func (s *Service) TogglePin(id string, now time.Time) (model.Bulletin, error) {
	return s.update(id, now, func(b *model.Bulletin) { b.Pinned = !b.Pinned })
}

func (s *Service) ToggleRead(id string, now time.Time) (model.Bulletin, error) {
	return s.update(id, now, func(b *model.Bulletin) { b.Read = !b.Read })
}

func (s *Service) MarkAllRead(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(now)
	if err != nil {
		return err
	}
	for i := range items {
		items[i].Read = true
	}
	return s.save(items)
}

func (s *Service) Remove(id string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(now)
	if err != nil {
		return err
	}
	for i, b := range items {
		if b.ID == id {
			items = append(items[:i], items[i+1:]...)
			return s.save(items)
		}
	}
	return ErrNotFound
}

// Clear empties the board (an empty array, not a deleted key: a cleared
// board must not re-seed on the next read).
func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save([]model.Bulletin{})
}

// List returns the board filtered and searched, pinned posts first, newest
// first within each group.
func (s *Service) List(filter Filter, query string, now time.Time) ([]model.Bulletin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(now)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	out := []model.Bulletin{}
	for _, b := range items {
		switch filter {
		case FilterUnread:
			if b.Read {
				continue
			}
		case FilterPinned:
			if !b.Pinned {
				continue
			}
		}
		if query != "" {
			hay := strings.ToLower(b.Title + " " + b.Message + " " + b.Author)
			if !strings.Contains(hay, query) {
				continue
			}
		}
		out = append(out, b)
	}

	// Stable partition: pinned first, original (newest-first) order kept
	// within each group.
	pinned := []model.Bulletin{}
	rest := []model.Bulletin{}
	for _, b := range out {
		if b.Pinned {
			pinned = append(pinned, b)
		} else {
			rest = append(rest, b)
		}
	}
	return append(pinned, rest...), nil
}

// Counts reports the stats shown next to the board filters.
type Counts struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
	Pinned int `json:"pinned"`
}

func (s *Service) Stats(now time.Time) (Counts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(now)
	if err != nil {
		return Counts{}, err
	}
	c := Counts{Total: len(items)}
	for _, b := range items {
		if !b.Read {
			c.Unread++
		}
		if b.Pinned {
			c.Pinned++
		}
	}
	return c, nil
}
