package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmploymentStatus describes where an employee is in their employment lifecycle.
type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "Active"
	EmploymentStatusOnLeave    EmploymentStatus = "OnLeave"
	EmploymentStatusTerminated EmploymentStatus = "Terminated"
)

// IsValid checks if the EmploymentStatus is a valid value.
func (s EmploymentStatus) IsValid() bool {
	switch s {
	case EmploymentStatusActive, EmploymentStatusOnLeave, EmploymentStatusTerminated:
		return true
	default:
		return false
	}
}

// Employee is a member of hotel staff.
type Employee struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Department  string
	Position    string
	HireDate    time.Time
	BaseSalary  decimal.Decimal // Annual base salary, never negative.
	Status      EmploymentStatus
}

// FullName returns the first and last name joined by a space.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Clone returns a copy of the employee.
func (e *Employee) Clone() *Employee {
	if e == nil {
		return nil
	}
	clone := *e

	return &clone
}
