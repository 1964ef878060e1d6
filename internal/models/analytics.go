package models

import "time"

// AnalyticsEvent is append-only: rows are inserted and listed, never
// updated or deleted by the API.
type AnalyticsEvent struct {
	ID        string
	EventType string
	Payload   map[string]any
	UserID    *string
	IPAddress string
	UserAgent string
	CreatedAt time.Time
}
