package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

// Role names carried in the portal token.
const (
	RoleFaculty = "FACULTY"
	RoleAdmin   = "ADMIN"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

// policy is one (role, resource, action) grant.
type policy struct {
	role     string
	resource string
	action   string
}

// The permission matrix is static: roles come from the portal directory,
// not from per-request configuration.
var grants = []policy{
	{RoleFaculty, "leave", "submit"},
	{RoleFaculty, "leave", "read"},
	{RoleFaculty, "leave", "review"},
	{RoleFaculty, "joining", "submit"},
	{RoleFaculty, "joining", "read"},
	{RoleFaculty, "balance", "read"},
	{RoleFaculty, "directory", "read"},
	{RoleFaculty, "notification", "read"},

	{RoleAdmin, "leave", "submit"},
	{RoleAdmin, "leave", "read"},
	{RoleAdmin, "leave", "review"},
	{RoleAdmin, "leave", "admin_approve"},
	{RoleAdmin, "joining", "submit"},
	{RoleAdmin, "joining", "read"},
	{RoleAdmin, "balance", "read"},
	{RoleAdmin, "balance", "read_all"},
	{RoleAdmin, "balance", "provision"},
	{RoleAdmin, "directory", "read"},
	{RoleAdmin, "notification", "read"},
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	s := &service{enforcer: enforcer, logger: l}
	if err := s.loadPolicies(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) loadPolicies() error {
	s.enforcer.ClearPolicy()

	for _, g := range grants {
		if _, err := s.enforcer.AddPolicy(g.role, g.resource, g.action); err != nil {
			return err
		}
	}
	s.logger.Info("rbac policies loaded", zap.Int("grants", len(grants)))
	return nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	allowed, err := s.enforcer.Enforce(role, resource, action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", role),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}
