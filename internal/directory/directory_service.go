package directory

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	directoryerrors "faculty-portal/internal/directory/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const routingOptionsKeyPrefix = "directory:routing:"

func routingOptionsKey(employeeID string) string {
	return routingOptionsKeyPrefix + employeeID
}

//go:generate mockgen -source=directory_service.go -destination=mock/directory_service_mock.go -package=mock
type Service interface {
	GetRole(ctx context.Context, employeeID string) (string, error)
	RoutingOptions(ctx context.Context, employeeID string) (RoutingOptionsResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("directory.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("directory.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetRole(ctx context.Context, employeeID string) (string, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return "", directoryerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", directoryerrors.ErrEmployeeNotFound
		}
		return "", err
	}
	if !e.Active {
		return "", directoryerrors.ErrEmployeeInactive
	}
	return e.Role, nil
}

// RoutingOptions returns eligible recommender/approver/substitute
// candidates: active faculty or admin, excluding the requester. The roster
// changes rarely, so results are cached and loads are collapsed through
// singleflight when many submission forms open at once.
func (s *service) RoutingOptions(ctx context.Context, employeeID string) (RoutingOptionsResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return RoutingOptionsResponse{}, directoryerrors.ErrInvalidEmployeeID
	}

	cacheKey := routingOptionsKey(employeeID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp RoutingOptionsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		candidates, err := s.repo.FindActiveByRoles(ctx, []string{RoleFaculty, RoleAdmin}, employeeID)
		if err != nil {
			return nil, err
		}

		options := make([]EmployeeOption, len(candidates))
		for i, e := range candidates {
			options[i] = EmployeeOption{
				ID:       e.ID.String(),
				StaffNo:  e.StaffNo,
				FullName: e.FullName,
				Role:     e.Role,
			}
		}

		resp := RoutingOptionsResponse{
			Recommenders: options,
			Approvers:    options,
			Substitutes:  options,
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 15*time.Minute)
			}
		}

		return resp, nil
	})

	if err != nil {
		return RoutingOptionsResponse{}, err
	}

	return v.(RoutingOptionsResponse), nil
}
