package leave

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Workflow states. REJECTED and JOINED are terminal; RETURNED routes the
// request back to the employee for amendment and resubmission.
const (
	StatusPendingRecommendation = "PENDING_RECOMMENDATION"
	StatusRecommended           = "RECOMMENDED"
	StatusApproved              = "APPROVED"
	StatusRejected              = "REJECTED"
	StatusReturned              = "RETURNED"
	StatusJoined                = "JOINED"
)

const (
	SessionFullDay          = "FULL_DAY"
	SessionHalfDayMorning   = "HALF_DAY_MORNING"
	SessionHalfDayAfternoon = "HALF_DAY_AFTERNOON"
)

func IsHalfDay(session string) bool {
	return session == SessionHalfDayMorning || session == SessionHalfDayAfternoon
}

// LeaveRequest is one leave application. Rows are never deleted; terminal
// states are retained for audit. All mutation goes through the workflow
// service with status-guarded updates.
type LeaveRequest struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ApplicationNo string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_leave_requests_application_no"`
	EmployeeID    uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee"`

	LeaveType     string          `gorm:"type:varchar(4);not null"`
	StartDate     time.Time       `gorm:"type:date;not null"`
	EndDate       time.Time       `gorm:"type:date;not null"`
	Session       string          `gorm:"type:varchar(20);not null;default:'FULL_DAY'"`
	TotalDays     decimal.Decimal `gorm:"type:numeric(5,1);not null"`
	Reason        string          `gorm:"type:text"`
	AttachmentRef string          `gorm:"type:text"`

	RecommenderID *uuid.UUID `gorm:"type:uuid;index:idx_leave_requests_recommender"`
	ApproverID    *uuid.UUID `gorm:"type:uuid;index:idx_leave_requests_approver"`
	SubstituteID  *uuid.UUID `gorm:"type:uuid"`

	Status    string     `gorm:"type:varchar(30);not null;default:'PENDING_RECOMMENDATION';index:idx_leave_requests_status"`
	Remarks   *string    `gorm:"type:text"`
	DecidedBy *uuid.UUID `gorm:"type:uuid"`
	DecidedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Year is the ledger year the request debits, derived from the start date.
func (l LeaveRequest) Year() int {
	return l.StartDate.Year()
}
