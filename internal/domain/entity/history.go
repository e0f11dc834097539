package entity

import (
	"time"

	"github.com/lib/pq"
)

type ContentType string

const (
	ContentURL    ContentType = "url"
	ContentWiFi   ContentType = "wifi"
	ContentSocial ContentType = "social"
)

// HistoryEntry is one generated payload. Exports lists the formats it was
// exported to, in order.
type HistoryEntry struct {
	ID        string      `gorm:"primaryKey;type:uuid"`
	UserID    int64       `gorm:"not null;index"`
	Type      ContentType `gorm:"not null"`
	Payload   string      `gorm:"not null"`
	Platform  string
	Timestamp time.Time      `gorm:"not null;index"`
	Exports   pq.StringArray `gorm:"type:text[]"`
}
