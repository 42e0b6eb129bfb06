package model

import "time"

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// UnsetApprover is the sentinel stored before a supervisor signs off.
const UnsetApprover = "-"

// HistoryEntry is one submitted day of acknowledgement-receipt work.
// Entries are immutable snapshots: the tasks inside are copies of the live
// ledger at submission time, never shared with it. At most one entry exists
// per DayKey; resubmitting a day replaces Tasks and SubmittedAt but keeps
// the original ID.
type HistoryEntry struct {
	ID             string         `json:"id"`
	DayKey         string         `json:"dayKey"`
	SubmittedAt    time.Time      `json:"submittedAt"`
	Tasks          []TaskEntry    `json:"tasks"`
	Approver       string         `json:"approver"`
	ApprovalStatus ApprovalStatus `json:"approvalStatus"`

	// Optional correlation back to the employee directory. Older entries
	// never recorded these, which is why the matcher needs a fallback.
	EmployeeID    string `json:"employeeId,omitempty"`
	EmployeeEmail string `json:"employeeEmail,omitempty"`
	EmployeeName  string `json:"employeeName,omitempty"`
}

func ValidApprovalStatus(s ApprovalStatus) bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}
