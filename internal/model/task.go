package model

import (
	"encoding/json"
	"time"
)

type TaskStatus string

const (
	TaskRunning  TaskStatus = "running"
	TaskFinished TaskStatus = "finished"
)

// TaskEntry is one unit of timed work in the acknowledgement-receipt ledger.
// FinishedAt is the single source of truth for the lifecycle: a nil
// FinishedAt means the timer is still running. The wire format still carries
// a "status" field for compatibility with previously persisted ledgers, but
// it is derived on write and ignored on read.
type TaskEntry struct {
	ID         string     `json:"id"`
	Module     string     `json:"module"`
	Task       string     `json:"task"`
	Notes      string     `json:"notes"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt"`
}

func (t TaskEntry) Status() TaskStatus {
	if t.FinishedAt == nil {
		return TaskRunning
	}
	return TaskFinished
}

func (t TaskEntry) Running() bool {
	return t.FinishedAt == nil
}

type taskEntryWire struct {
	ID         string     `json:"id"`
	Module     string     `json:"module"`
	Task       string     `json:"task"`
	Notes      string     `json:"notes"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt"`
	Status     TaskStatus `json:"status"`
}

func (t TaskEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(taskEntryWire{
		ID:         t.ID,
		Module:     t.Module,
		Task:       t.Task,
		Notes:      t.Notes,
		StartedAt:  t.StartedAt,
		FinishedAt: t.FinishedAt,
		Status:     t.Status(),
	})
}

func (t *TaskEntry) UnmarshalJSON(b []byte) error {
	var w taskEntryWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	t.ID = w.ID
	t.Module = w.Module
	t.Task = w.Task
	t.Notes = w.Notes
	t.StartedAt = w.StartedAt
	t.FinishedAt = w.FinishedAt
	return nil
}
