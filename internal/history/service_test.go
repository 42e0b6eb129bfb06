package history

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyticz12/HRIS/internal/model"
	"github.com/soyticz12/HRIS/internal/storage"
)

func TestNormalize_MalformedInput(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"nil", nil},
		{"empty", []byte("")},
		{"json null", []byte("null")},
		{"not json", []byte("not json")},
		{"non-array object", []byte("{}")},
		{"number", []byte("42")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.raw)
			require.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestNormalize_DefaultsMissingApprovalFields(t *testing.T) {
	// Shape written by builds that predate approval metadata.
	raw := []byte(`[
		{"id":"ARH-1","dayKey":"2024-01-01","submittedAt":"2024-01-01T17:00:00Z","tasks":[
			{"id":"TASK-1","module":"Finance","task":"Close books","notes":"","startedAt":"2024-01-01T09:00:00Z","finishedAt":"2024-01-01T10:00:00Z","status":"finished"}
		]},
		{"id":"ARH-2","dayKey":"2024-01-02","submittedAt":"2024-01-02T17:00:00Z","tasks":"oops","approver":"  ","approvalStatus":"weird"}
	]`)

	got := Normalize(raw)
	require.Len(t, got, 2)

	assert.Equal(t, model.UnsetApprover, got[0].Approver)
	assert.Equal(t, model.ApprovalPending, got[0].ApprovalStatus)
	require.Len(t, got[0].Tasks, 1)
	assert.Equal(t, "Close books", got[0].Tasks[0].Task)

	// Malformed tasks and blank/unknown approval fields fall back.
	assert.Empty(t, got[1].Tasks)
	assert.NotNil(t, got[1].Tasks)
	assert.Equal(t, model.UnsetApprover, got[1].Approver)
	assert.Equal(t, model.ApprovalPending, got[1].ApprovalStatus)
}

func TestNormalize_KeepsValidApproval(t *testing.T) {
	raw := []byte(`[{"id":"ARH-1","dayKey":"2024-01-01","submittedAt":"2024-01-01T17:00:00Z","tasks":[],"approver":"Bianca Santos","approvalStatus":"rejected","employeeId":"EMP-002"}]`)

	got := Normalize(raw)
	require.Len(t, got, 1)
	assert.Equal(t, "Bianca Santos", got[0].Approver)
	assert.Equal(t, model.ApprovalRejected, got[0].ApprovalStatus)
	assert.Equal(t, "EMP-002", got[0].EmployeeID)
}

func at(s string) time.Time {
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestUpsertDay_MintsThenReuses(t *testing.T) {
	svc := NewService(storage.NewMemStore(), nil)

	task := model.TaskEntry{ID: "TASK-1", Task: "close books", StartedAt: at("2024-01-01T09:00:00Z")}

	first, err := svc.UpsertDay("2024-01-01", []model.TaskEntry{task}, at("2024-01-01T12:00:00Z"))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, model.UnsetApprover, first.Approver)
	assert.Equal(t, model.ApprovalPending, first.ApprovalStatus)

	second, err := svc.UpsertDay("2024-01-01", []model.TaskEntry{task, task}, at("2024-01-01T17:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, second.Tasks, 2)

	entries, err := svc.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestUpsertDay_NewDaysPrepend(t *testing.T) {
	svc := NewService(storage.NewMemStore(), nil)

	_, err := svc.UpsertDay("2024-01-01", nil, at("2024-01-01T17:00:00Z"))
	require.NoError(t, err)
	_, err = svc.UpsertDay("2024-01-02", nil, at("2024-01-02T17:00:00Z"))
	require.NoError(t, err)

	entries, err := svc.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2024-01-02", entries[0].DayKey)
	assert.Equal(t, "2024-01-01", entries[1].DayKey)
}

func TestGet(t *testing.T) {
	svc := NewService(storage.NewMemStore(), nil)

	entry, err := svc.UpsertDay("2024-01-01", nil, at("2024-01-01T17:00:00Z"))
	require.NoError(t, err)

	got, err := svc.Get(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.DayKey, got.DayKey)

	_, err = svc.Get("ARH-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetApproval(t *testing.T) {
	svc := NewService(storage.NewMemStore(), nil)

	entry, err := svc.UpsertDay("2024-01-01", nil, at("2024-01-01T17:00:00Z"))
	require.NoError(t, err)

	got, err := svc.SetApproval(entry.ID, "Alex Reyes", model.ApprovalApproved)
	require.NoError(t, err)
	assert.Equal(t, "Alex Reyes", got.Approver)
	assert.Equal(t, model.ApprovalApproved, got.ApprovalStatus)

	_, err = svc.SetApproval(entry.ID, "x", model.ApprovalStatus("meh"))
	assert.ErrorIs(t, err, ErrBadApproval)

	_, err = svc.SetApproval(entry.ID, "  ", model.ApprovalApproved)
	assert.ErrorIs(t, err, ErrEmptyApprover)

	_, err = svc.SetApproval("ARH-missing", "x", model.ApprovalApproved)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_SurvivesGarbageStore(t *testing.T) {
	store := storage.NewMemStore()
	require.NoError(t, store.Write(storage.KeyHistory, []byte("corrupted!!")))

	svc := NewService(store, nil)
	entries, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPersistedShapeRoundTrips(t *testing.T) {
	store := storage.NewMemStore()
	svc := NewService(store, nil)

	fin := at("2024-01-01T10:00:00Z")
	task := model.TaskEntry{
		ID:         "TASK-1",
		Module:     "Finance",
		Task:       "Close books",
		StartedAt:  at("2024-01-01T09:00:00Z"),
		FinishedAt: &fin,
	}
	_, err := svc.UpsertDay("2024-01-01", []model.TaskEntry{task}, at("2024-01-01T17:00:00Z"))
	require.NoError(t, err)

	// The wire format keeps the derived status field for older readers.
	raw, ok, err := store.Read(storage.KeyHistory)
	require.NoError(t, err)
	require.True(t, ok)

	var generic []map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))
	require.Len(t, generic, 1)
	tasks, _ := generic[0]["tasks"].([]any)
	require.Len(t, tasks, 1)
	wire, _ := tasks[0].(map[string]any)
	assert.Equal(t, "finished", wire["status"])
}
