package handler

import (
	"time"

	"hotelhrm/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// LoginRequest represents the request body for signing in
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=256"`
}

// EmployeeRequest represents the request body for creating or updating an employee
type EmployeeRequest struct {
	FirstName   string          `json:"first_name" validate:"required,max=50"`
	LastName    string          `json:"last_name" validate:"required,max=50"`
	Email       string          `json:"email" validate:"required,email,max=100"`
	PhoneNumber string          `json:"phone_number" validate:"omitempty,max=20"`
	Department  string          `json:"department" validate:"required,max=50"`
	Position    string          `json:"position" validate:"required,max=50"`
	HireDate    string          `json:"hire_date" validate:"required,datetime=2006-01-02"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
	Status      string          `json:"status" validate:"omitempty,oneof=Active OnLeave Terminated"`
}

// ProcessPayrollRequest represents the request body for processing one pay period
type ProcessPayrollRequest struct {
	EmployeeID  int64           `json:"employee_id" validate:"required,gt=0"`
	PeriodStart string          `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd   string          `json:"period_end" validate:"required,datetime=2006-01-02"`
	Bonus       decimal.Decimal `json:"bonus"`
	Deductions  decimal.Decimal `json:"deductions"`
}

// UpdatePayrollStatusRequest represents the request body for changing a payroll status
type UpdatePayrollStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Processed Paid"`
}

// UserResponse is the public view of a user account
type UserResponse struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	EmployeeID *int64 `json:"employee_id,omitempty"`
	IsActive   bool   `json:"is_active"`
}

// SessionResponse describes the current browser session and what it may do
type SessionResponse struct {
	Authenticated         bool   `json:"authenticated"`
	Username              string `json:"username,omitempty"`
	Email                 string `json:"email,omitempty"`
	Role                  string `json:"role,omitempty"`
	EmployeeID            int64  `json:"employee_id"`
	CanModifyEmployeeData bool   `json:"can_modify_employee_data"`
	CanModifyPayrollData  bool   `json:"can_modify_payroll_data"`
}

// AuthResponse is returned by login and the current-user endpoint
type AuthResponse struct {
	User    *UserResponse    `json:"user"`
	Session *SessionResponse `json:"session"`
}

// EmployeeResponse is the public view of an employee
type EmployeeResponse struct {
	ID          int64           `json:"id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	FullName    string          `json:"full_name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number"`
	Department  string          `json:"department"`
	Position    string          `json:"position"`
	HireDate    string          `json:"hire_date"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
	Status      string          `json:"status"`
}

// PayrollRecordResponse is the public view of a payroll record
type PayrollRecordResponse struct {
	ID             int64             `json:"id"`
	EmployeeID     int64             `json:"employee_id"`
	Employee       *EmployeeResponse `json:"employee,omitempty"`
	PayPeriodStart string            `json:"pay_period_start"`
	PayPeriodEnd   string            `json:"pay_period_end"`
	BaseSalary     decimal.Decimal   `json:"base_salary"`
	Bonus          decimal.Decimal   `json:"bonus"`
	Deductions     decimal.Decimal   `json:"deductions"`
	GrossPay       decimal.Decimal   `json:"gross_pay"`
	NetPay         decimal.Decimal   `json:"net_pay"`
	ProcessedAt    time.Time         `json:"processed_at"`
	Status         string            `json:"status"`
}

func newUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role.String(),
		EmployeeID: user.EmployeeID,
		IsActive:   user.IsActive,
	}
}

func newSessionResponse(state *entity.AuthState, canModifyEmployees, canModifyPayroll bool) *SessionResponse {
	if !state.IsAuthenticated() {
		return &SessionResponse{EmployeeID: entity.NoEmployeeID}
	}

	return &SessionResponse{
		Authenticated:         true,
		Username:              state.Principal.Name,
		Email:                 state.Principal.Email,
		Role:                  state.Principal.Role.String(),
		EmployeeID:            state.Principal.EmployeeID,
		CanModifyEmployeeData: canModifyEmployees,
		CanModifyPayrollData:  canModifyPayroll,
	}
}

func newEmployeeResponse(employee *entity.Employee) *EmployeeResponse {
	if employee == nil {
		return nil
	}

	return &EmployeeResponse{
		ID:          employee.ID,
		FirstName:   employee.FirstName,
		LastName:    employee.LastName,
		FullName:    employee.FullName(),
		Email:       employee.Email,
		PhoneNumber: employee.PhoneNumber,
		Department:  employee.Department,
		Position:    employee.Position,
		HireDate:    employee.HireDate.Format(dateLayout),
		BaseSalary:  employee.BaseSalary,
		Status:      string(employee.Status),
	}
}

func newEmployeeResponses(employees []*entity.Employee) []*EmployeeResponse {
	out := make([]*EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		out = append(out, newEmployeeResponse(employee))
	}

	return out
}

func newPayrollRecordResponse(record *entity.PayrollRecord) *PayrollRecordResponse {
	return &PayrollRecordResponse{
		ID:             record.ID,
		EmployeeID:     record.EmployeeID,
		Employee:       newEmployeeResponse(record.Employee),
		PayPeriodStart: record.PayPeriodStart.Format(dateLayout),
		PayPeriodEnd:   record.PayPeriodEnd.Format(dateLayout),
		BaseSalary:     record.BaseSalary,
		Bonus:          record.Bonus,
		Deductions:     record.Deductions,
		GrossPay:       record.GrossPay,
		NetPay:         record.NetPay,
		ProcessedAt:    record.ProcessedAt,
		Status:         string(record.Status),
	}
}

func newPayrollRecordResponses(records []*entity.PayrollRecord) []*PayrollRecordResponse {
	out := make([]*PayrollRecordResponse, 0, len(records))
	for _, record := range records {
		out = append(out, newPayrollRecordResponse(record))
	}

	return out
}
