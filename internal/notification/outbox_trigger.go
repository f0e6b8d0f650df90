package notification

import (
	"context"
	"encoding/json"
	"time"

	"faculty-portal/internal/events"
	"faculty-portal/internal/messaging/kafka"
	"faculty-portal/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// outboxTrigger enqueues lifecycle events for the Kafka producer worker.
// Enqueue failures are logged and swallowed: a lost notification must not
// fail or roll back the workflow transition that produced it.
type outboxTrigger struct {
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewOutboxTrigger(outbox kafka.OutboxRepository, logger ...*zap.Logger) Trigger {
	l := zap.L().Named("notification.trigger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.trigger")
	}
	return &outboxTrigger{outbox: outbox, logger: l}
}

func (t *outboxTrigger) OnSubmitted(ctx context.Context, snap Snapshot) {
	t.enqueue(ctx, events.LeaveSubmitted, snap)
}

func (t *outboxTrigger) OnRecommended(ctx context.Context, snap Snapshot) {
	t.enqueue(ctx, events.LeaveRecommended, snap)
}

func (t *outboxTrigger) OnApproved(ctx context.Context, snap Snapshot) {
	t.enqueue(ctx, events.LeaveApproved, snap)
}

func (t *outboxTrigger) OnRejected(ctx context.Context, snap Snapshot) {
	t.enqueue(ctx, events.LeaveRejected, snap)
}

func (t *outboxTrigger) OnReturned(ctx context.Context, snap Snapshot) {
	t.enqueue(ctx, events.LeaveReturned, snap)
}

func (t *outboxTrigger) OnCancelled(ctx context.Context, snap Snapshot) {
	t.enqueue(ctx, events.LeaveCancelled, snap)
}

func (t *outboxTrigger) OnResubmitted(ctx context.Context, snap Snapshot) {
	t.enqueue(ctx, events.LeaveResubmitted, snap)
}

func (t *outboxTrigger) OnJoined(ctx context.Context, snap Snapshot) {
	t.enqueue(ctx, events.LeaveJoined, snap)
}

func (t *outboxTrigger) enqueue(ctx context.Context, eventType string, snap Snapshot) {
	rid := contextutil.GetRequestID(ctx)

	event := events.LeaveLifecycleEvent{
		EventType:      eventType,
		RequestID:      rid,
		LeaveRequestID: snap.LeaveRequestID,
		ApplicationNo:  snap.ApplicationNo,
		EmployeeID:     snap.EmployeeID,
		ActorID:        snap.ActorID,
		LeaveType:      snap.LeaveType,
		Status:         snap.Status,
		StartDate:      snap.StartDate,
		EndDate:        snap.EndDate,
		TotalDays:      snap.TotalDays,
		Remarks:        snap.Remarks,
		OccurredAt:     time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		t.logger.Error("marshal lifecycle event failed",
			zap.String("event_type", eventType),
			zap.String("leave_request_id", snap.LeaveRequestID),
			zap.Error(err),
		)
		return
	}

	err = t.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "leave_request",
		AggregateID:   snap.LeaveRequestID,
		EventType:     eventType,
		Topic:         events.LeaveLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		t.logger.Error("enqueue lifecycle event failed",
			zap.String("event_type", eventType),
			zap.String("leave_request_id", snap.LeaveRequestID),
			zap.Error(err),
		)
		return
	}

	t.logger.Debug("lifecycle event queued",
		zap.String("event_type", eventType),
		zap.String("leave_request_id", snap.LeaveRequestID),
	)
}
