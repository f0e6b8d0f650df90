package notification

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const defaultFeedLimit = 50

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	ListMine(ctx context.Context, recipientID string, limit int) ([]NotificationResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) ListMine(ctx context.Context, recipientID string, limit int) ([]NotificationResponse, error) {
	if limit <= 0 || limit > defaultFeedLimit {
		limit = defaultFeedLimit
	}

	notifications, err := s.repo.FindAllByRecipient(ctx, recipientID, limit)
	if err != nil {
		return nil, err
	}

	resp := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		resp[i] = NotificationResponse{
			ID:             n.ID.String(),
			LeaveRequestID: n.LeaveRequestID.String(),
			EventType:      n.EventType,
			Message:        n.Message,
			CreatedAt:      n.CreatedAt.Format(time.RFC3339),
		}
	}
	return resp, nil
}
