package joining

import (
	"time"

	"github.com/google/uuid"
)

// A joining report starts PENDING when the parent leave is approved and
// becomes SUBMITTED when the employee reports back from leave.
const (
	StatusPending   = "PENDING"
	StatusSubmitted = "SUBMITTED"
)

type JoiningReport struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeaveRequestID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_joining_reports_leave_request"`

	Status      string     `gorm:"type:varchar(20);not null;default:'PENDING'"`
	JoiningDate *time.Time `gorm:"type:date"`
	ReportRef   *string    `gorm:"type:text"`
	SubmittedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
