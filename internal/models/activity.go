package models

import "time"

// ActivityLog is one append-only audit entry. Read paths never mutate it.
type ActivityLog struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userId"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
}
