package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification is the materialized delivery record written by the topic
// consumer. Real transports (email, SMS) hang off the same topic; this
// table is the in-app feed.
type Notification struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecipientID    uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_recipient"`
	LeaveRequestID uuid.UUID `gorm:"type:uuid;not null"`
	EventType      string    `gorm:"type:varchar(40);not null"`
	Message        string    `gorm:"type:text;not null"`

	CreatedAt time.Time
}
