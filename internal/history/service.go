// Package history owns the submitted acknowledgement-receipt days. Entries
// are upserted by calendar day and never mutated afterwards except for
// their approval metadata.
package history

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
	ErrNotFound      = errors.New("history entry not found")
	ErrBadApproval   = errors.New("approval status must be pending, approved or rejected")
	ErrEmptyApprover = errors.New("approver name is required")
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

// wireEntry is the persisted shape. Fields older builds never wrote are
// optional here and defaulted by Normalize.
type wireEntry struct {
	ID             string          `json:"id"`
	DayKey         string          `json:"dayKey"`
	SubmittedAt    time.Time       `json:"submittedAt"`
	Tasks          json.RawMessage `json:"tasks"`
	Approver       string          `json:"approver"`
	ApprovalStatus string          `json:"approvalStatus"`
	EmployeeID     string          `json:"employeeId"`
	EmployeeEmail  string          `json:"employeeEmail"`
	EmployeeName   string          `json:"employeeName"`
}

// Normalize decodes a persisted history blob defensively. Anything that is
// not a JSON array becomes an empty history; entries missing approval
// fields get the documented defaults; a malformed tasks field becomes an
// empty snapshot. Decoding never fails.
func Normalize(raw []byte) []model.HistoryEntry {
	out := []model.HistoryEntry{}
	if len(raw) == 0 {
		return out
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return out
	}
	for _, item := range items {
		var w wireEntry
		if err := json.Unmarshal(item, &w); err != nil {
			continue
		}

		e := model.HistoryEntry{
			ID:            w.ID,
			DayKey:        w.DayKey,
			SubmittedAt:   w.SubmittedAt,
			Tasks:         []model.TaskEntry{},
			EmployeeID:    w.EmployeeID,
			EmployeeEmail: w.EmployeeEmail,
			EmployeeName:  w.EmployeeName,
		}

		var tasks []model.TaskEntry
		if len(w.Tasks) > 0 && json.Unmarshal(w.Tasks, &tasks) == nil && tasks != nil {
			e.Tasks = tasks
		}

		e.Approver = w.Approver
		if strings.TrimSpace(e.Approver) == "" {
			e.Approver = model.UnsetApprover
		}

		e.ApprovalStatus = model.ApprovalStatus(w.ApprovalStatus)
		if e.ApprovalStatus != model.ApprovalApproved && e.ApprovalStatus != model.ApprovalRejected {
			e.ApprovalStatus = model.ApprovalPending
		}

		out = append(out, e)
	}
	return out
}

func (s *Service) load() ([]model.HistoryEntry, error) {
	raw, ok, err := s.store.Read(storage.KeyHistory)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.HistoryEntry{}, nil
	}
	return Normalize(raw), nil
}

func (s *Service) save(entries []model.HistoryEntry) error {
	b, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("history: encode: %w", err)
	}
	return s.store.Write(storage.KeyHistory, b)
}

// List returns the history in stored order (newest submission first, since
// fresh days are prepended). Callers sort for presentation.
func (s *Service) List() ([]model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Service) Get(id string) (model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return model.HistoryEntry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return model.HistoryEntry{}, ErrNotFound
}

// Upsert inserts the entry, replacing in place any existing entry with the
// same day key. New days are prepended.
func (s *Service) Upsert(entry model.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	for i, e := range entries {
		if e.DayKey == entry.DayKey {
			entries[i] = entry
			return s.save(entries)
		}
	}
	entries = append([]model.HistoryEntry{entry}, entries...)
	return s.save(entries)
}

// UpsertDay records a day submission. Resubmitting an already-known day
// keeps the entry's identity and approval metadata and only replaces the
// task snapshot and submission time; a first submission mints a fresh id
// with the documented defaults.
func (s *Service) UpsertDay(dayKey string, tasks []model.TaskEntry, submittedAt time.Time) (model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return model.HistoryEntry{}, err
	}

	for i, e := range entries {
		if e.DayKey == dayKey {
			e.Tasks = tasks
			e.SubmittedAt = submittedAt
			entries[i] = e
			if err := s.save(entries); err != nil {
				return model.HistoryEntry{}, err
			}
			return e, nil
		}
	}

	entry := model.HistoryEntry{
		ID:             ident.New("ARH"),
		DayKey:         dayKey,
		SubmittedAt:    submittedAt,
		Tasks:          tasks,
		Approver:       model.UnsetApprover,
		ApprovalStatus: model.ApprovalPending,
	}
	entries = append([]model.HistoryEntry{entry}, entries...)
	if err := s.save(entries); err != nil {
		return model.HistoryEntry{}, err
	}
	return entry, nil
}

// SetApproval records the sign-off decision for one submitted day.
func (s *Service) SetApproval(id, approver string, status model.ApprovalStatus) (model.HistoryEntry, error) {
	if !model.ValidApprovalStatus(status) {
		return model.HistoryEntry{}, ErrBadApproval
	}
	approver = strings.TrimSpace(approver)
	if approver == "" && status != model.ApprovalPending {
		return model.HistoryEntry{}, ErrEmptyApprover
	}
	if approver == "" {
		approver = model.UnsetApprover
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return model.HistoryEntry{}, err
	}
	for i, e := range entries {
		if e.ID == id {
			e.Approver = approver
			e.ApprovalStatus = status
			entries[i] = e
			if err := s.save(entries); err != nil {
				return model.HistoryEntry{}, err
			}
			return e, nil
		}
	}
	return model.HistoryEntry{}, ErrNotFound
}
