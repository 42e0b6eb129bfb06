package auth

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
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

// POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}

	sess, err := h.service.Login(in.Username, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrBadCredentials):
			writeErr(w, http.StatusUnauthorized, err.Error())
		default:
			writeErr(w, http.StatusInternalServerError, "could not log in")
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"session": map[string]any{"username": sess.Username, "role": sess.Role},
	})
}

// POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(); err != nil {
		writeErr(w, http.StatusInternalServerError, "could not log out")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:   SessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// GET /api/auth/session
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.CurrentSession()
	if err != nil {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"session": map[string]any{"username": sess.Username, "role": sess.Role},
	})
}

// POST /api/auth/change-password
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var in struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}

	err := h.service.ChangePassword(in.CurrentPassword, in.NewPassword, in.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, ErrPasswordFields),
			errors.Is(err, ErrPasswordTooShort),
			errors.Is(err, ErrPasswordMismatch):
			writeErr(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrWrongPassword):
			writeErr(w, http.StatusForbidden, err.Error())
		case errors.Is(err, ErrNoSession):
			writeErr(w, http.StatusUnauthorized, err.Error())
		default:
			writeErr(w, http.StatusInternalServerError, "could not change password")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// RequireAPI gates protected handlers on the presence of a session record
// whose token matches the request cookie.
func (s *Service) RequireAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.CurrentSession()
		if err != nil {
			writeErr(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if sess.Token != "" {
			c, err := r.Cookie(SessionCookie)
			if err != nil || c.Value != sess.Token {
				writeErr(w, http.StatusUnauthorized, "unauthorized")
				return
			}
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
	})
}
