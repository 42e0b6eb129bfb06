package employee

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/soyticz12/HRIS/internal/history"
)

type Handler struct {
	dir       *Directory
	histories *history.Service
}

func NewHandler(dir *Directory, histories *history.Service) *Handler {
	return &Handler{dir: dir, histories: histories}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

// GET /api/employees
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, map[string]any{
		"employees":   h.dir.Search(q),
		"stats":       h.dir.Stats(),
		"departments": h.dir.Departments(),
	})
}

// GET /api/employees/{id}/history
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	emp, err := h.dir.Get(r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			writeErr(w, http.StatusNotFound, err.Error())
		default:
			writeErr(w, http.StatusInternalServerError, "could not read directory")
		}
		return
	}

	entries, err := h.histories.List()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "could not read history")
		return
	}

	result := Match(entries, emp)
	sort.SliceStable(result.Entries, func(i, j int) bool {
		return result.Entries[i].SubmittedAt.After(result.Entries[j].SubmittedAt)
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"employee": emp,
		"linked":   result.Linked,
		"history":  result.Entries,
	})
}
