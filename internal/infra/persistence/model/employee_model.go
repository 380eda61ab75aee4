package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeModel mirrors the 'employees' table.
type EmployeeModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	FirstName   string          `gorm:"type:varchar(100);not null"`
	LastName    string          `gorm:"type:varchar(100);not null"`
	Email       string          `gorm:"type:varchar(255)"`
	PhoneNumber string          `gorm:"type:varchar(50)"`
	Department  string          `gorm:"type:varchar(100)"`
	Position    string          `gorm:"type:varchar(100)"`
	HireDate    time.Time       `gorm:"type:date"`
	BaseSalary  decimal.Decimal `gorm:"type:numeric;not null;check:base_salary >= 0"`
	Status      string          `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employees"
}
