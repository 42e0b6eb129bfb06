package ledger

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/soyticz12/HRIS/internal/model"
	"github.com/soyticz12/HRIS/internal/timecalc"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

type taskView struct {
	model.TaskEntry
	Duration string `json:"duration"`
}

func viewTasks(tasks []model.TaskEntry, now time.Time) []taskView {
	out := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskView{
			TaskEntry: t,
			Duration:  timecalc.Label(timecalc.TaskDuration(t, now)),
		})
	}
	return out
}

// GET /api/ar/tasks
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.List()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "could not read task ledger")
		return
	}

	running := 0
	for _, t := range tasks {
		if t.Running() {
			running++
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"tasks": viewTasks(tasks, time.Now()),
		"counts": map[string]int{
			"total":    len(tasks),
			"running":  running,
			"finished": len(tasks) - running,
		},
	})
}

// POST /api/ar/tasks
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Module string `json:"module"`
		Task   string `json:"task"`
		Notes  string `json:"notes"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}

	entry, err := h.svc.Start(in.Module, in.Task, in.Notes, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, ErrTaskRequired):
			writeErr(w, http.StatusBadRequest, err.Error())
		default:
			writeErr(w, http.StatusInternalServerError, "could not start task")
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"ok": true, "task": entry})
}

// POST /api/ar/tasks/{id}/finish
func (h *Handler) Finish(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.Finish(r.PathValue("id"), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			writeErr(w, http.StatusNotFound, err.Error())
		default:
			writeErr(w, http.StatusInternalServerError, "could not finish task")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "task": entry})
}

// DELETE /api/ar/tasks/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.PathValue("id")); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			writeErr(w, http.StatusNotFound, err.Error())
		default:
			writeErr(w, http.StatusInternalServerError, "could not delete task")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// DELETE /api/ar/tasks
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clear(); err != nil {
		writeErr(w, http.StatusInternalServerError, "could not clear task ledger")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// POST /api/ar/submit-day
func (h *Handler) SubmitDay(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.SubmitDay(time.Now())
	if err != nil {
		switch {
		case errors.Is(err, ErrNoTasksForToday):
			writeErr(w, http.StatusBadRequest, err.Error())
		default:
			writeErr(w, http.StatusInternalServerError, "could not submit day")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":     true,
		"dayKey": entry.DayKey,
		"entry":  entry,
	})
}
