package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeSnapshot is the employee copy frozen into a payroll record.
type EmployeeSnapshot struct {
	ID          int64           `json:"id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number"`
	Department  string          `json:"department"`
	Position    string          `json:"position"`
	HireDate    time.Time       `json:"hire_date"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
	Status      string          `json:"status"`
}

// PayrollRecordModel mirrors the 'payroll_records' table.
type PayrollRecordModel struct {
	ID             int64             `gorm:"primaryKey;autoIncrement"`
	EmployeeID     int64             `gorm:"not null;index"`
	Employee       *EmployeeSnapshot `gorm:"type:jsonb;serializer:json"`
	PayPeriodStart time.Time         `gorm:"not null"`
	PayPeriodEnd   time.Time         `gorm:"not null"`
	BaseSalary     decimal.Decimal   `gorm:"type:numeric;not null"`
	Bonus          decimal.Decimal   `gorm:"type:numeric;not null"`
	Deductions     decimal.Decimal   `gorm:"type:numeric;not null"`
	GrossPay       decimal.Decimal   `gorm:"type:numeric;not null"`
	NetPay         decimal.Decimal   `gorm:"type:numeric;not null"`
	ProcessedAt    time.Time         `gorm:"not null"`
	Status         string            `gorm:"type:varchar(20);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PayrollRecordModel) TableName() string {
	return "payroll_records"
}

// All lists every model for schema migration.
func All() []any {
	return []any{&UserModel{}, &EmployeeModel{}, &PayrollRecordModel{}}
}
