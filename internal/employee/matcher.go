package employee

import (
	"strings"

	"github.com/soyticz12/HRIS/internal/model"
)

// MatchResult carries the history subset for one employee. Linked reports
// whether any correlation key actually matched: when no entry records the
// employee's id, email or name, Match returns the entire history with
// Linked=false rather than an empty set, and callers use the flag to tell
// the two cases apart.
type MatchResult struct {
	Entries []model.HistoryEntry `json:"entries"`
	Linked  bool                 `json:"linked"`
}

// Match correlates history entries to an employee: exact employee id first,
// then exact email, then case-insensitive name.
func Match(entries []model.HistoryEntry, emp model.Employee) MatchResult {
	byID := []model.HistoryEntry{}
	for _, e := range entries {
		if e.EmployeeID != "" && e.EmployeeID == emp.ID {
			byID = append(byID, e)
		}
	}
	if len(byID) > 0 {
		return MatchResult{Entries: byID, Linked: true}
	}

	if email := strings.TrimSpace(emp.Email); email != "" {
		byEmail := []model.HistoryEntry{}
		for _, e := range entries {
			if e.EmployeeEmail != "" && e.EmployeeEmail == email {
				byEmail = append(byEmail, e)
			}
		}
		if len(byEmail) > 0 {
			return MatchResult{Entries: byEmail, Linked: true}
		}
	}

	byName := []model.HistoryEntry{}
	for _, e := range entries {
		if e.EmployeeName != "" && strings.EqualFold(e.EmployeeName, emp.Name) {
			byName = append(byName, e)
		}
	}
	if len(byName) > 0 {
		return MatchResult{Entries: byName, Linked: true}
	}

	all := make([]model.HistoryEntry, len(entries))
	copy(all, entries)
	return MatchResult{Entries: all, Linked: false}
}
