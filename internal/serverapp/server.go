package serverapp

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/soyticz12/HRIS/internal/auth"
	"github.com/soyticz12/HRIS/internal/bulletin"
	"github.com/soyticz12/HRIS/internal/config"
	"github.com/soyticz12/HRIS/internal/employee"
	"github.com/soyticz12/HRIS/internal/export"
	"github.com/soyticz12/HRIS/internal/history"
	"github.com/soyticz12/HRIS/internal/httpmw"
	"github.com/soyticz12/HRIS/internal/ledger"
	"github.com/soyticz12/HRIS/internal/model"
	"github.com/soyticz12/HRIS/internal/server"
	"github.com/soyticz12/HRIS/internal/settings"
	"github.com/soyticz12/HRIS/internal/storage"
)

type Options struct {
	Config *config.Config
	// Store overrides the file store built from Config.Storage; tests
	// inject a memory store here.
	Store  storage.Store
	Logger *log.Logger
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	store := opts.Store
	if store == nil {
		fs, err := storage.NewFileStore(opts.Config.Storage.DataDir)
		if err != nil {
			return nil, err
		}
		store = fs
	}

	admin := model.StoredUser{
		Username: opts.Config.Auth.AdminUsername,
		Password: opts.Config.Auth.AdminPassword,
		Role:     model.RoleAdmin,
	}
	authService := auth.NewService(store, admin, opts.Logger)
	if err := authService.EnsureSeeded(); err != nil {
		return nil, err
	}

	histories := history.NewService(store, opts.Logger)
	tasks := ledger.NewService(store, histories, opts.Logger)
	directory := employee.NewDirectory(rosterFromConfig(opts.Config.Directory.Employees))
	bulletins := bulletin.NewService(store, opts.Logger)
	prefs := settings.NewService(store)

	authHandler := auth.NewHandler(authService)
	taskHandler := ledger.NewHandler(tasks)
	historyHandler := history.NewHandler(histories)
	employeeHandler := employee.NewHandler(directory, histories)
	bulletinHandler := bulletin.NewHandler(bulletins)
	settingsHandler := settings.NewHandler(prefs)

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}

	open := func(pattern, summary string, h http.HandlerFunc) {
		server.Handle(mux, rr, pattern, summary, h)
	}
	protected := func(pattern, summary string, h http.HandlerFunc) {
		server.Handle(mux, rr, pattern, summary, authService.RequireAPI(h))
	}

	open("POST /api/auth/login", "log in and set the session cookie", authHandler.Login)
	open("POST /api/auth/logout", "clear the active session", authHandler.Logout)
	open("GET /api/auth/session", "current session, 401 when logged out", authHandler.Session)
	protected("POST /api/auth/change-password", "change the admin password", authHandler.ChangePassword)

	protected("GET /api/ar/tasks", "today's task ledger", taskHandler.List)
	protected("POST /api/ar/tasks", "start a new task timer", taskHandler.Start)
	protected("POST /api/ar/tasks/{id}/finish", "stop a running task", taskHandler.Finish)
	protected("DELETE /api/ar/tasks/{id}", "remove one task from the ledger", taskHandler.Delete)
	protected("DELETE /api/ar/tasks", "clear the whole ledger", taskHandler.Clear)
	protected("POST /api/ar/submit-day", "submit today's tasks into history", taskHandler.SubmitDay)

	protected("GET /api/ar/history", "submitted days, newest first", historyHandler.List)
	protected("GET /api/ar/history/export", "download history as CSV", func(w http.ResponseWriter, r *http.Request) {
		entries, err := histories.List()
		if err != nil {
			http.Error(w, "history unavailable", http.StatusInternalServerError)
			return
		}
		now := time.Now()
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(now)+`"`)
		if err := export.WriteCSV(w, entries, now); err != nil {
			opts.Logger.Printf("[export] write csv: %v", err)
		}
	})
	protected("GET /api/ar/history/{id}", "one submitted day", historyHandler.Get)
	protected("POST /api/ar/history/{id}/approval", "set approver and approval status", historyHandler.Approval)

	protected("GET /api/employees", "employee directory", employeeHandler.List)
	protected("GET /api/employees/{id}/history", "submission history matched to an employee", employeeHandler.History)

	protected("GET /api/bulletins", "bulletin board posts", bulletinHandler.List)
	protected("POST /api/bulletins", "publish a post", bulletinHandler.Post)
	protected("POST /api/bulletins/{id}/pin", "toggle pin", bulletinHandler.TogglePin)
	protected("POST /api/bulletins/{id}/read", "toggle read", bulletinHandler.ToggleRead)
	protected("POST /api/bulletins/read-all", "mark every post read", bulletinHandler.MarkAllRead)
	protected("DELETE /api/bulletins/{id}", "delete a post", bulletinHandler.Remove)
	protected("DELETE /api/bulletins", "clear the board", bulletinHandler.Clear)

	protected("GET /api/settings", "display preferences", settingsHandler.Get)
	protected("PUT /api/settings", "update display preferences", settingsHandler.Put)
	protected("DELETE /api/settings/avatar", "remove the stored avatar", settingsHandler.RemoveAvatar)

	protected("GET /api/routes", "this route listing", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rr.List())
	})

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "hris",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if _, _, err := store.Read(storage.KeyTasks); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "storage unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "hris",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.Handle("GET /{$}", templ.Handler(StatusPage()))

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	), nil
}

func rosterFromConfig(entries []config.EmployeeConfig) []model.Employee {
	if len(entries) == 0 {
		return employee.DefaultRoster()
	}
	out := make([]model.Employee, 0, len(entries))
	for _, e := range entries {
		status := model.AttendanceStatus(e.Status)
		if status != model.AttendancePresent && status != model.AttendanceAbsent {
			status = model.AttendancePresent
		}
		out = append(out, model.Employee{
			ID:         e.ID,
			Name:       e.Name,
			Email:      e.Email,
			Role:       e.Role,
			Department: e.Department,
			Status:     status,
			LastSeen:   e.LastSeen,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
