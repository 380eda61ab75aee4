package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus is the processing state of a payroll record.
type PayrollStatus string

const (
	PayrollStatusPending   PayrollStatus = "Pending"
	PayrollStatusProcessed PayrollStatus = "Processed"
	PayrollStatusPaid      PayrollStatus = "Paid"
)

// IsValid checks if the PayrollStatus is a valid value.
func (s PayrollStatus) IsValid() bool {
	switch s {
	case PayrollStatusPending, PayrollStatusProcessed, PayrollStatusPaid:
		return true
	default:
		return false
	}
}

// PayrollRecord is the pay computed for one employee over one pay period.
// Employee is a snapshot taken at processing time, so later edits to the
// employee never change historical figures.
type PayrollRecord struct {
	ID             int64
	EmployeeID     int64
	Employee       *Employee
	PayPeriodStart time.Time
	PayPeriodEnd   time.Time
	BaseSalary     decimal.Decimal // Pro-rata salary for the period.
	Bonus          decimal.Decimal
	Deductions     decimal.Decimal
	GrossPay       decimal.Decimal
	NetPay         decimal.Decimal
	ProcessedAt    time.Time
	Status         PayrollStatus
}

// Clone returns a deep copy of the record, including the employee snapshot.
func (p *PayrollRecord) Clone() *PayrollRecord {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Employee = p.Employee.Clone()

	return &clone
}
