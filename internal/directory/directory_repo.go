package directory

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=directory_repo.go -destination=mock/directory_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindActiveByRoles(ctx context.Context, roles []string, excludeID string) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindActiveByRoles(ctx context.Context, roles []string, excludeID string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Where("role IN ?", roles).
		Where("active = ?", true).
		Where("id <> ?", excludeID).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}
