// Package timecalc holds the duration and day-key arithmetic shared by the
// ledger, history and export code.
package timecalc

import (
	"fmt"
	"time"

	"github.com/soyticz12/HRIS/internal/model"
)

// DayKey renders t as YYYY-MM-DD in the host's local timezone. Day
// boundaries deliberately follow local wall-clock time, not UTC; switching
// this would change which tasks a day submission picks up.
func DayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// TaskDuration is the elapsed time of a task: finish minus start, with an
// open task measured against now. Corrupt input never produces a negative
// value or an error; a zero start timestamp counts as zero elapsed.
func TaskDuration(task model.TaskEntry, now time.Time) time.Duration {
	if task.StartedAt.IsZero() {
		return 0
	}
	end := now
	if task.FinishedAt != nil {
		if task.FinishedAt.IsZero() {
			return 0
		}
		end = *task.FinishedAt
	}
	d := end.Sub(task.StartedAt)
	if d < 0 {
		return 0
	}
	return d
}

// TotalDuration sums TaskDuration over the slice. Clamping happens per
// element, so one corrupt task cannot drag the total down.
func TotalDuration(tasks []model.TaskEntry, now time.Time) time.Duration {
	var total time.Duration
	for _, t := range tasks {
		total += TaskDuration(t, now)
	}
	return total
}

// Label formats a duration as HH:MM:SS when there is an hour component,
// MM:SS otherwise, both zero-padded.
func Label(d time.Duration) string {
	sec := int64(d / time.Second)
	if sec < 0 {
		sec = 0
	}
	hh := sec / 3600
	mm := (sec % 3600) / 60
	ss := sec % 60
	if hh > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hh, mm, ss)
	}
	return fmt.Sprintf("%02d:%02d", mm, ss)
}

// FormatStamp renders a timestamp the way the dashboard tables do,
// e.g. "Jan 02, 2006 03:04 PM". A nil or zero time renders as "-".
func FormatStamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format("Jan 02, 2006 03:04 PM")
}
