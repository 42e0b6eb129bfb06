package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyticz12/HRIS/internal/history"
	"github.com/soyticz12/HRIS/internal/model"
	"github.com/soyticz12/HRIS/internal/storage"
)

func newTestService() (*Service, *history.Service, *storage.MemStore) {
	store := storage.NewMemStore()
	hist := history.NewService(store, nil)
	return NewService(store, hist, nil), hist, store
}

func localTime(hour, min int) time.Time {
	return time.Date(2024, 1, 15, hour, min, 0, 0, time.Local)
}

func TestStart(t *testing.T) {
	svc, _, _ := newTestService()
	now := localTime(9, 0)

	entry, err := svc.Start("Finance / Taxes", "Compute withholding tax", "payroll run", now)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, model.TaskRunning, entry.Status())
	assert.Nil(t, entry.FinishedAt)
	assert.True(t, entry.StartedAt.Equal(now))

	second, err := svc.Start("", "Review timesheets", "", localTime(9, 5))
	require.NoError(t, err)

	tasks, err := svc.List()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	// Most recently started first.
	assert.Equal(t, second.ID, tasks[0].ID)
	assert.Equal(t, entry.ID, tasks[1].ID)
}

func TestStart_BlankTaskRejected(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Start("Finance", "   ", "notes", localTime(9, 0))
	assert.ErrorIs(t, err, ErrTaskRequired)

	tasks, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestFinish_IsIdempotent(t *testing.T) {
	svc, _, _ := newTestService()

	entry, err := svc.Start("", "Close books", "", localTime(9, 0))
	require.NoError(t, err)

	first := localTime(9, 30)
	got, err := svc.Finish(entry.ID, first)
	require.NoError(t, err)
	assert.Equal(t, model.TaskFinished, got.Status())
	require.NotNil(t, got.FinishedAt)
	assert.True(t, got.FinishedAt.Equal(first))

	// Second finish is a no-op: the original finish time stands.
	again, err := svc.Finish(entry.ID, localTime(10, 0))
	require.NoError(t, err)
	require.NotNil(t, again.FinishedAt)
	assert.True(t, again.FinishedAt.Equal(first))

	_, err = svc.Finish("TASK-missing", localTime(10, 0))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_RegardlessOfStatus(t *testing.T) {
	svc, _, _ := newTestService()

	running, err := svc.Start("", "still going", "", localTime(9, 0))
	require.NoError(t, err)
	finished, err := svc.Start("", "done already", "", localTime(9, 1))
	require.NoError(t, err)
	_, err = svc.Finish(finished.ID, localTime(9, 2))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(finished.ID))
	require.NoError(t, svc.Delete(running.ID))

	tasks, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)

	assert.ErrorIs(t, svc.Delete(running.ID), ErrNotFound)
}

func TestClear_RemovesPersistedBlob(t *testing.T) {
	svc, _, store := newTestService()

	_, err := svc.Start("", "anything", "", localTime(9, 0))
	require.NoError(t, err)
	require.True(t, store.Has(storage.KeyTasks))

	require.NoError(t, svc.Clear())

	// The key is gone entirely, not rewritten as an empty array.
	assert.False(t, store.Has(storage.KeyTasks))

	tasks, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestList_MalformedBlobReadsAsEmpty(t *testing.T) {
	svc, _, store := newTestService()

	require.NoError(t, store.Write(storage.KeyTasks, []byte("not json")))
	tasks, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)

	require.NoError(t, store.Write(storage.KeyTasks, []byte(`{"nope":1}`)))
	tasks, err = svc.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSubmitDay_EmptyLedgerFails(t *testing.T) {
	svc, hist, _ := newTestService()

	_, err := svc.SubmitDay(localTime(17, 0))
	assert.ErrorIs(t, err, ErrNoTasksForToday)

	entries, err := hist.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSubmitDay_FinalizesAndReflectsBack(t *testing.T) {
	svc, hist, _ := newTestService()

	open, err := svc.Start("Ops", "inventory count", "", localTime(9, 0))
	require.NoError(t, err)
	closed, err := svc.Start("HR", "onboarding docs", "", localTime(10, 0))
	require.NoError(t, err)
	_, err = svc.Finish(closed.ID, localTime(11, 0))
	require.NoError(t, err)

	submitAt := localTime(17, 0)
	entry, err := svc.SubmitDay(submitAt)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15", entry.DayKey)
	assert.Equal(t, model.UnsetApprover, entry.Approver)
	assert.Equal(t, model.ApprovalPending, entry.ApprovalStatus)
	require.Len(t, entry.Tasks, 2)
	for _, task := range entry.Tasks {
		assert.Equal(t, model.TaskFinished, task.Status())
		require.NotNil(t, task.FinishedAt)
	}

	// The snapshot order matches the ledger (most recent start first).
	assert.Equal(t, closed.ID, entry.Tasks[0].ID)
	assert.Equal(t, open.ID, entry.Tasks[1].ID)

	// The already-finished task keeps its real finish time; the open one
	// closes at submission time.
	assert.True(t, entry.Tasks[0].FinishedAt.Equal(localTime(11, 0)))
	assert.True(t, entry.Tasks[1].FinishedAt.Equal(submitAt))

	// The live ledger agrees with the snapshot for today.
	tasks, err := svc.List()
	require.NoError(t, err)
	for _, task := range tasks {
		assert.Equal(t, model.TaskFinished, task.Status())
	}
	require.NotNil(t, tasks[1].FinishedAt)
	assert.True(t, tasks[1].FinishedAt.Equal(submitAt))

	entries, err := hist.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestSubmitDay_UpsertKeepsIdentity(t *testing.T) {
	svc, hist, _ := newTestService()

	_, err := svc.Start("", "morning task", "", localTime(9, 0))
	require.NoError(t, err)

	first, err := svc.SubmitDay(localTime(12, 0))
	require.NoError(t, err)

	// Approval lands between the two submissions and must survive.
	_, err = hist.SetApproval(first.ID, "Alex Reyes", model.ApprovalApproved)
	require.NoError(t, err)

	_, err = svc.Start("", "afternoon task", "", localTime(14, 0))
	require.NoError(t, err)

	second, err := svc.SubmitDay(localTime(17, 0))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.DayKey, second.DayKey)
	assert.True(t, second.SubmittedAt.After(first.SubmittedAt))
	assert.Len(t, second.Tasks, 2)

	entries, err := hist.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Alex Reyes", entries[0].Approver)
	assert.Equal(t, model.ApprovalApproved, entries[0].ApprovalStatus)
}

func TestSubmitDay_TaskSetStableOnceFinished(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Start("", "only task", "", localTime(9, 0))
	require.NoError(t, err)

	first, err := svc.SubmitDay(localTime(12, 0))
	require.NoError(t, err)

	second, err := svc.SubmitDay(localTime(13, 0))
	require.NoError(t, err)

	// Once everything is finished, resubmission reproduces the same task
	// content even though submittedAt advances.
	require.Len(t, second.Tasks, 1)
	assert.Equal(t, first.Tasks[0], second.Tasks[0])
}

func TestSubmitDay_PriorDaysExcluded(t *testing.T) {
	svc, _, _ := newTestService()

	yesterday, err := svc.Start("", "left overnight", "", localTime(9, 0).AddDate(0, 0, -1))
	require.NoError(t, err)
	_, err = svc.Start("", "today's work", "", localTime(9, 0))
	require.NoError(t, err)

	entry, err := svc.SubmitDay(localTime(17, 0))
	require.NoError(t, err)
	require.Len(t, entry.Tasks, 1)
	assert.Equal(t, "today's work", entry.Tasks[0].Task)

	// The overnight task stays in the ledger, still running.
	tasks, err := svc.List()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		if task.ID == yesterday.ID {
			assert.Equal(t, model.TaskRunning, task.Status())
		}
	}

	// A ledger holding only prior-day tasks has nothing to submit.
	require.NoError(t, svc.Delete(tasks[0].ID))
	_, err = svc.SubmitDay(localTime(18, 0))
	assert.ErrorIs(t, err, ErrNoTasksForToday)
}
