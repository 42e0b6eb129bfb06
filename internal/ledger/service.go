// Package ledger tracks the live, pre-submission task timers and turns
// them into immutable history snapshots on day submission.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/soyticz12/HRIS/internal/history"
	"github.com/soyticz12/HRIS/internal/ident"
	"github.com/soyticz12/HRIS/internal/model"
	"github.com/soyticz12/HRIS/internal/storage"
	"github.com/soyticz12/HRIS/internal/timecalc"
)

var (
	ErrTaskRequired    = errors.New("task description is required")
	ErrNotFound        = errors.New("task not found")
	ErrNoTasksForToday = errors.New("no tasks for today to submit")
)

type Service struct {
	mu        sync.Mutex
	store     storage.Store
	histories *history.Service
	logger    *log.Logger
}

func NewService(store storage.Store, histories *history.Service, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{store: store, histories: histories, logger: logger}
}

// load treats a missing or malformed blob as an empty ledger; reads never
// fail on bad content, only on storage errors.
func (s *Service) load() ([]model.TaskEntry, error) {
	raw, ok, err := s.store.Read(storage.KeyTasks)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.TaskEntry{}, nil
	}
	var tasks []model.TaskEntry
	if err := json.Unmarshal(raw, &tasks); err != nil || tasks == nil {
		return []model.TaskEntry{}, nil
	}
	return tasks, nil
}

func (s *Service) save(tasks []model.TaskEntry) error {
	b, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("ledger: encode: %w", err)
	}
	return s.store.Write(storage.KeyTasks, b)
}

// List returns the ledger, most recently started first.
func (s *Service) List() ([]model.TaskEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Start creates a running task and prepends it to the ledger. The task
// description is required; module and notes are free text.
func (s *Service) Start(module, task, notes string, now time.Time) (model.TaskEntry, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return model.TaskEntry{}, ErrTaskRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load()
	if err != nil {
		return model.TaskEntry{}, err
	}

	entry := model.TaskEntry{
		ID:        ident.New("TASK"),
		Module:    strings.TrimSpace(module),
		Task:      task,
		Notes:     strings.TrimSpace(notes),
		StartedAt: now,
	}
	tasks = append([]model.TaskEntry{entry}, tasks...)
	if err := s.save(tasks); err != nil {
		return model.TaskEntry{}, err
	}
	return entry, nil
}

// Finish stops a running task. Finishing an already-finished task is a
// no-op, not an error; the first finish time stands.
func (s *Service) Finish(id string, now time.Time) (model.TaskEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load()
	if err != nil {
		return model.TaskEntry{}, err
	}
	for i, t := range tasks {
		if t.ID != id {
			continue
		}
		if t.Running() {
			at := now
			t.FinishedAt = &at
			tasks[i] = t
			if err := s.save(tasks); err != nil {
				return model.TaskEntry{}, err
			}
		}
		return t, nil
	}
	return model.TaskEntry{}, ErrNotFound
}

// Delete removes a task regardless of its status.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load()
	if err != nil {
		return err
	}
	for i, t := range tasks {
		if t.ID == id {
			tasks = append(tasks[:i], tasks[i+1:]...)
			return s.save(tasks)
		}
	}
	return ErrNotFound
}

// Clear empties the ledger and removes its persisted blob entirely rather
// than writing an empty array.
func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Delete(storage.KeyTasks)
}

// SubmitDay finalizes today's tasks into the history store.
//
// Only tasks started today (local day key) are eligible; tasks from prior
// days stay in the ledger untouched. Eligible running tasks are finished
// with the submission time both in the snapshot and in the live ledger, so
// the two views agree. The snapshot is upserted by day key: a resubmission
// replaces the tasks and submission time of the existing entry but keeps
// its identity and approval metadata.
func (s *Service) SubmitDay(now time.Time) (model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load()
	if err != nil {
		return model.HistoryEntry{}, err
	}

	today := timecalc.DayKey(now)

	snapshot := make([]model.TaskEntry, 0, len(tasks))
	for _, t := range tasks {
		if timecalc.DayKey(t.StartedAt) != today {
			continue
		}
		c := t
		if c.Running() {
			at := now
			c.FinishedAt = &at
		}
		snapshot = append(snapshot, c)
	}
	if len(snapshot) == 0 {
		return model.HistoryEntry{}, ErrNoTasksForToday
	}

	entry, err := s.histories.UpsertDay(today, snapshot, now)
	if err != nil {
		return model.HistoryEntry{}, err
	}

	// Reflect the auto-finish onto the live ledger.
	changed := false
	for i, t := range tasks {
		if timecalc.DayKey(t.StartedAt) == today && t.Running() {
			at := now
			t.FinishedAt = &at
			tasks[i] = t
			changed = true
		}
	}
	if changed {
		if err := s.save(tasks); err != nil {
			return model.HistoryEntry{}, err
		}
	}

	s.logger.Printf("[ledger] submitted %s (%d tasks)", today, len(snapshot))
	return entry, nil
}
