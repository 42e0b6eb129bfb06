package settings

import (
	"encoding/json"
	"net/http"

	"github.com/soyticz12/HRIS/internal/model"
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

// GET /api/settings
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "could not read settings")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"preferences": p})
}

// PUT /api/settings
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	var in model.Preferences
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	p, err := h.svc.Put(in)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "could not save settings")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "preferences": p})
}

// DELETE /api/settings/avatar
func (h *Handler) RemoveAvatar(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.RemoveAvatar()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "could not update settings")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "preferences": p})
}
