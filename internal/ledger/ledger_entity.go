package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Leave type codes carried on balances and requests.
const (
	TypeCasual            = "CL"
	TypeSick              = "SL"
	TypeEarned            = "EL"
	TypeRestrictedHoliday = "RH"
)

// KnownType reports whether code is one of the supported leave types.
func KnownType(code string) bool {
	switch code {
	case TypeCasual, TypeSick, TypeEarned, TypeRestrictedHoliday:
		return true
	}
	return false
}

// LeaveBalance is one ledger row per (employee, leave type, year).
// Day amounts are numeric with half-day granularity; the invariant
// reserved + consumed <= entitled is enforced by guarded updates in the
// repository, never in application code after the fact.
type LeaveBalance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_balance_employee_type_year"`
	LeaveType  string    `gorm:"type:varchar(4);not null;uniqueIndex:uq_balance_employee_type_year"`
	Year       int       `gorm:"not null;uniqueIndex:uq_balance_employee_type_year"`

	Entitled decimal.Decimal `gorm:"type:numeric(5,1);not null"`
	Reserved decimal.Decimal `gorm:"type:numeric(5,1);not null;default:0"`
	Consumed decimal.Decimal `gorm:"type:numeric(5,1);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b LeaveBalance) Available() decimal.Decimal {
	return b.Entitled.Sub(b.Reserved).Sub(b.Consumed)
}
