package events

import "time"

const LeaveLifecycleTopic = "faculty.leave.lifecycle.v1"

// Leave lifecycle event types, one per workflow transition point.
const (
	LeaveSubmitted   = "leave_submitted"
	LeaveRecommended = "leave_recommended"
	LeaveApproved    = "leave_approved"
	LeaveRejected    = "leave_rejected"
	LeaveReturned    = "leave_returned"
	LeaveCancelled   = "leave_cancelled"
	LeaveResubmitted = "leave_resubmitted"
	LeaveJoined      = "leave_joined"
)

type LeaveLifecycleEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	LeaveRequestID string    `json:"leave_request_id"`
	ApplicationNo  string    `json:"application_no"`
	EmployeeID     string    `json:"employee_id"`
	ActorID        string    `json:"actor_id"`
	LeaveType      string    `json:"leave_type"`
	Status         string    `json:"status"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	TotalDays      string    `json:"total_days"`
	Remarks        string    `json:"remarks,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
