package model

import "time"

type BulletinPriority string

const (
	PriorityNormal    BulletinPriority = "normal"
	PriorityImportant BulletinPriority = "important"
	PriorityUrgent    BulletinPriority = "urgent"
)

type Bulletin struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"createdAt"`
	Author    string           `json:"author"`
	Priority  BulletinPriority `json:"priority"`
	Pinned    bool             `json:"pinned"`
	Read      bool             `json:"read"`
}
