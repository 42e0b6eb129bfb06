package model

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// Employee is reference data from the directory; the core never mutates it.
type Employee struct {
	ID         string           `json:"id" yaml:"id"`
	Name       string           `json:"name" yaml:"name"`
	Department string           `json:"department" yaml:"department"`
	Role       string           `json:"role" yaml:"role"`
	Status     AttendanceStatus `json:"status" yaml:"status"`
	LastSeen   string           `json:"lastSeen" yaml:"last_seen"`
	Email      string           `json:"email,omitempty" yaml:"email,omitempty"`
}
