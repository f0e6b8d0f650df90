package notification

import "context"

// Snapshot is the read-only view of a leave request handed to the trigger
// at each transition point.
type Snapshot struct {
	LeaveRequestID string
	ApplicationNo  string
	EmployeeID     string
	ActorID        string
	LeaveType      string
	Status         string
	StartDate      string
	EndDate        string
	TotalDays      string
	Remarks        string
}

// Trigger is invoked by the workflow engine after a transition commits.
// Implementations must be fire-and-forget: they never return an error and
// never block or undo the transition that invoked them.
type Trigger interface {
	OnSubmitted(ctx context.Context, snap Snapshot)
	OnRecommended(ctx context.Context, snap Snapshot)
	OnApproved(ctx context.Context, snap Snapshot)
	OnRejected(ctx context.Context, snap Snapshot)
	OnReturned(ctx context.Context, snap Snapshot)
	OnCancelled(ctx context.Context, snap Snapshot)
	OnResubmitted(ctx context.Context, snap Snapshot)
	OnJoined(ctx context.Context, snap Snapshot)
}

// NoopTrigger drops every event. Used in tests and when the broker is not
// configured.
type NoopTrigger struct{}

func (NoopTrigger) OnSubmitted(context.Context, Snapshot)   {}
func (NoopTrigger) OnRecommended(context.Context, Snapshot) {}
func (NoopTrigger) OnApproved(context.Context, Snapshot)    {}
func (NoopTrigger) OnRejected(context.Context, Snapshot)    {}
func (NoopTrigger) OnReturned(context.Context, Snapshot)    {}
func (NoopTrigger) OnCancelled(context.Context, Snapshot)   {}
func (NoopTrigger) OnResubmitted(context.Context, Snapshot) {}
func (NoopTrigger) OnJoined(context.Context, Snapshot)      {}
