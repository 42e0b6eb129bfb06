package bulletin

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

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

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func parseFilter(s string) Filter {
	switch Filter(s) {
	case FilterUnread, FilterPinned:
		return Filter(s)
	}
	return FilterAll
}

// GET /api/bulletins
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	now := time.Now()

	items, err := h.svc.List(parseFilter(q.Get("filter")), q.Get("q"), now)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "could not read bulletins")
		return
	}
	stats, err := h.svc.Stats(now)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "could not read bulletins")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bulletins": items, "counts": stats})
}

// POST /api/bulletins
func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Title    string                 `json:"title"`
		Message  string                 `json:"message"`
		Author   string                 `json:"author"`
		Priority model.BulletinPriority `json:"priority"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}

	b, err := h.svc.Post(in.Title, in.Message, in.Author, in.Priority, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, ErrTitleRequired), errors.Is(err, ErrMessageRequired):
			writeErr(w, http.StatusBadRequest, err.Error())
		default:
			writeErr(w, http.StatusInternalServerError, "could not post bulletin")
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"ok": true, "bulletin": b})
}

// POST /api/bulletins/{id}/pin
func (h *Handler) TogglePin(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.TogglePin(r.PathValue("id"), time.Now())
	if err != nil {
		h.writeUpdateErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "bulletin": b})
}

// POST /api/bulletins/{id}/read
func (h *Handler) ToggleRead(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.ToggleRead(r.PathValue("id"), time.Now())
	if err != nil {
		h.writeUpdateErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "bulletin": b})
}

// POST /api/bulletins/read-all
func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.MarkAllRead(time.Now()); err != nil {
		writeErr(w, http.StatusInternalServerError, "could not update bulletins")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// DELETE /api/bulletins/{id}
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Remove(r.PathValue("id"), time.Now()); err != nil {
		h.writeUpdateErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// DELETE /api/bulletins
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clear(); err != nil {
		writeErr(w, http.StatusInternalServerError, "could not clear bulletins")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) writeUpdateErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeErr(w, http.StatusNotFound, err.Error())
	default:
		writeErr(w, http.StatusInternalServerError, "could not update bulletin")
	}
}
