package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"faculty-portal/internal/events"
	"faculty-portal/internal/notification"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveLifecycle materializes in-app notification rows from the
// leave lifecycle topic. Malformed messages are committed and dropped;
// persistence failures leave the offset uncommitted for redelivery.
func ConsumeLeaveLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	repo notification.Repository,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_lifecycle")
	log.Info("leave lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave lifecycle consumer stopped")
				return
			}
			log.Error("fetch leave lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.LeaveLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		n, err := buildNotification(event)
		if err != nil {
			log.Error("build notification failed",
				zap.String("event_type", event.EventType),
				zap.String("leave_request_id", event.LeaveRequestID),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := repo.Create(ctx, n); err != nil {
			log.Error("persist notification failed",
				zap.String("event_type", event.EventType),
				zap.String("leave_request_id", event.LeaveRequestID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("notification recorded",
			zap.String("event_type", event.EventType),
			zap.String("leave_request_id", event.LeaveRequestID),
			zap.String("recipient_id", event.EmployeeID),
		)
	}
}

func buildNotification(event events.LeaveLifecycleEvent) (*notification.Notification, error) {
	recipientID, err := uuid.Parse(event.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("invalid employee id %q: %w", event.EmployeeID, err)
	}
	leaveRequestID, err := uuid.Parse(event.LeaveRequestID)
	if err != nil {
		return nil, fmt.Errorf("invalid leave request id %q: %w", event.LeaveRequestID, err)
	}

	return &notification.Notification{
		ID:             uuid.New(),
		RecipientID:    recipientID,
		LeaveRequestID: leaveRequestID,
		EventType:      event.EventType,
		Message:        notificationMessage(event),
	}, nil
}

func notificationMessage(event events.LeaveLifecycleEvent) string {
	period := fmt.Sprintf("%s (%s to %s, %s day(s))",
		event.ApplicationNo, event.StartDate, event.EndDate, event.TotalDays)

	switch event.EventType {
	case events.LeaveSubmitted:
		return fmt.Sprintf("Leave application %s has been submitted.", period)
	case events.LeaveRecommended:
		return fmt.Sprintf("Leave application %s has been recommended and forwarded for approval.", period)
	case events.LeaveApproved:
		return fmt.Sprintf("Leave application %s has been approved.", period)
	case events.LeaveRejected:
		if event.Remarks != "" {
			return fmt.Sprintf("Leave application %s has been rejected: %s", period, event.Remarks)
		}
		return fmt.Sprintf("Leave application %s has been rejected.", period)
	case events.LeaveReturned:
		if event.Remarks != "" {
			return fmt.Sprintf("Leave application %s has been returned for changes: %s", period, event.Remarks)
		}
		return fmt.Sprintf("Leave application %s has been returned for changes.", period)
	case events.LeaveCancelled:
		return fmt.Sprintf("Leave application %s has been cancelled.", period)
	case events.LeaveResubmitted:
		return fmt.Sprintf("Leave application %s has been resubmitted.", period)
	case events.LeaveJoined:
		return fmt.Sprintf("Joining report received for leave application %s; the leave cycle is closed.", period)
	default:
		return fmt.Sprintf("Leave application %s changed state to %s.", period, event.Status)
	}
}
