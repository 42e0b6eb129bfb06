// Package export flattens the submitted history into a spreadsheet-style
// table, one row per task.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/soyticz12/HRIS/internal/model"
	"github.com/soyticz12/HRIS/internal/timecalc"
)

// Header is the exported column set, in order.
var Header = []string{
	"Day", "Submitted", "Approver", "Approval Status",
	"Module", "Task", "Notes", "Status",
	"Start Time", "Finish Time", "Duration",
}

// Rows flattens the history one row per task, using the same human-readable
// timestamp and duration rendering as the dashboard tables.
func Rows(entries []model.HistoryEntry, now time.Time) [][]string {
	rows := [][]string{}
	for _, day := range entries {
		for _, t := range day.Tasks {
			submitted := day.SubmittedAt
			rows = append(rows, []string{
				day.DayKey,
				timecalc.FormatStamp(&submitted),
				day.Approver,
				string(day.ApprovalStatus),
				t.Module,
				t.Task,
				t.Notes,
				string(t.Status()),
				timecalc.FormatStamp(&t.StartedAt),
				timecalc.FormatStamp(t.FinishedAt),
				timecalc.Label(timecalc.TaskDuration(t, now)),
			})
		}
	}
	return rows
}

// WriteCSV writes the header plus flattened rows.
func WriteCSV(w io.Writer, entries []model.HistoryEntry, now time.Time) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, row := range Rows(entries, now) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return nil
}

// Filename builds the default export name, e.g. "AR_History_2024-01-15.csv".
func Filename(now time.Time) string {
	return "AR_History_" + now.Local().Format("2006-01-02") + ".csv"
}
