package history

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
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

type entryView struct {
	model.HistoryEntry
	TotalTime     string `json:"totalTime"`
	TaskCount     int    `json:"taskCount"`
	FinishedCount int    `json:"finishedCount"`
}

func viewEntry(e model.HistoryEntry, now time.Time) entryView {
	finished := 0
	for _, t := range e.Tasks {
		if !t.Running() {
			finished++
		}
	}
	return entryView{
		HistoryEntry:  e,
		TotalTime:     timecalc.Label(timecalc.TotalDuration(e.Tasks, now)),
		TaskCount:     len(e.Tasks),
		FinishedCount: finished,
	}
}

// GET /api/ar/history
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "could not read history")
		return
	}

	// Default presentation order: newest submission first.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SubmittedAt.After(entries[j].SubmittedAt)
	})

	now := time.Now()
	out := make([]entryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, viewEntry(e, now))
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": out})
}

// GET /api/ar/history/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.Get(r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			writeErr(w, http.StatusNotFound, err.Error())
		default:
			writeErr(w, http.StatusInternalServerError, "could not read history")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entry": viewEntry(entry, time.Now())})
}

// POST /api/ar/history/{id}/approval
func (h *Handler) Approval(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Approver string               `json:"approver"`
		Status   model.ApprovalStatus `json:"status"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}

	entry, err := h.svc.SetApproval(r.PathValue("id"), in.Approver, in.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			writeErr(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrBadApproval), errors.Is(err, ErrEmptyApprover):
			writeErr(w, http.StatusBadRequest, err.Error())
		default:
			writeErr(w, http.StatusInternalServerError, "could not update approval")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "entry": entry})
}
