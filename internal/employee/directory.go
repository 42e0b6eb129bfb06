// Package employee exposes the read-only staff directory and the
// correlation between employees and submitted history entries.
package employee

import (
	"errors"
	"sort"
	"strings"

	"github.com/soyticz12/HRIS/internal/model"
)

var ErrNotFound = errors.New("employee not found")

// Directory is reference data; it is seeded from configuration and never
// mutated by the dashboard.
type Directory struct {
	employees []model.Employee
}

func NewDirectory(employees []model.Employee) *Directory {
	list := make([]model.Employee, len(employees))
	copy(list, employees)
	return &Directory{employees: list}
}

// DefaultRoster mirrors the demo staff the dashboard ships with when no
// directory is configured.
func DefaultRoster() []model.Employee {
	return []model.Employee{
		{
			ID: "EMP-001", Name: "Alex Reyes", Department: "Operations",
			Role: "Supervisor", Status: model.AttendancePresent,
			LastSeen: "2026-02-17 08:12", Email: "alex@company.com",
		},
		{
			ID: "EMP-002", Name: "Bianca Santos", Department: "HR",
			Role: "Coordinator", Status: model.AttendanceAbsent,
			LastSeen: "2026-02-16 17:40", Email: "bianca@company.com",
		},
		{
			ID: "EMP-003", Name: "Carlo Dela Cruz", Department: "Engineering",
			Role: "Developer", Status: model.AttendancePresent,
			LastSeen: "2026-02-17 08:31", Email: "carlo@company.com",
		},
	}
}

func (d *Directory) List() []model.Employee {
	out := make([]model.Employee, len(d.employees))
	copy(out, d.employees)
	return out
}

func (d *Directory) Get(id string) (model.Employee, error) {
	for _, e := range d.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Employee{}, ErrNotFound
}

// Search filters the roster on a free-text query over id, name, department,
// role and attendance status.
func (d *Directory) Search(q string) []model.Employee {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return d.List()
	}
	out := []model.Employee{}
	for _, e := range d.employees {
		hay := strings.ToLower(strings.Join([]string{
			e.ID, e.Name, e.Department, e.Role, string(e.Status),
		}, " "))
		if strings.Contains(hay, q) {
			out = append(out, e)
		}
	}
	return out
}

// AttendanceStats is the roster summary shown at the top of the attendance
// view.
type AttendanceStats struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
}

func (d *Directory) Stats() AttendanceStats {
	s := AttendanceStats{Total: len(d.employees)}
	for _, e := range d.employees {
		if e.Status == model.AttendancePresent {
			s.Present++
		} else {
			s.Absent++
		}
	}
	return s
}

// Departments lists the distinct departments in roster order, sorted.
func (d *Directory) Departments() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, e := range d.employees {
		if e.Department != "" && !seen[e.Department] {
			seen[e.Department] = true
			out = append(out, e.Department)
		}
	}
	sort.Strings(out)
	return out
}
