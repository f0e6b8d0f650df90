package directory

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleFaculty = "FACULTY"
	RoleAdmin   = "ADMIN"
)

// Employee is the roster row the workflow consults for routing and for
// actor roles. Directory maintenance itself (hiring, departments, HR
// screens) lives outside this service.
type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StaffNo    string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_directory_staff_no"`
	FullName   string    `gorm:"type:varchar(150);not null"`
	Email      string    `gorm:"type:varchar(150);not null"`
	Role       string    `gorm:"type:varchar(20);not null;default:'FACULTY'"`
	Department string    `gorm:"type:varchar(100)"`
	Active     bool      `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_directory_deleted_at"`
}
