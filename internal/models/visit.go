package models

import "time"

// Visit is one access-log entry, written on every page view.
type Visit struct {
	ID        string    `json:"id"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
	VisitedAt time.Time `json:"visitedAt"`
}
