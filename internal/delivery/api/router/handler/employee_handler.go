package handler

import (
	"log/slog"
	"net/http"

	"hotelhrm/internal/delivery/api/response"
	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EmployeeHandlerParams holds dependencies for EmployeeHandler, injected by Fx.
type EmployeeHandlerParams struct {
	fx.In

	EmployeeUC usecase.EmployeeUsecase
	PayrollUC  usecase.PayrollUsecase
	Logger     *slog.Logger
}

// EmployeeHandler holds dependencies for employee-related handlers
type EmployeeHandler struct {
	employeeUC usecase.EmployeeUsecase
	payrollUC  usecase.PayrollUsecase
	logger     *slog.Logger
}

// NewEmployeeHandler is the constructor for EmployeeHandler
func NewEmployeeHandler(params EmployeeHandlerParams) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUC: params.EmployeeUC,
		payrollUC:  params.PayrollUC,
		logger:     params.Logger,
	}
}

// ListEmployees handles retrieving all employees
func (h *EmployeeHandler) ListEmployees(c echo.Context) error {
	employees, err := h.employeeUC.ListEmployees(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newEmployeeResponses(employees))
}

// GetEmployee handles retrieving one employee
func (h *EmployeeHandler) GetEmployee(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid employee ID")
	}

	employee, err := h.employeeUC.GetEmployee(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newEmployeeResponse(employee))
}

// CreateEmployee handles adding an employee
func (h *EmployeeHandler) CreateEmployee(c echo.Context) error {
	input, errResp := h.readEmployeeInput(c)
	if input == nil {
		return errResp
	}

	employee, err := h.employeeUC.CreateEmployee(c.Request().Context(), *input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newEmployeeResponse(employee))
}

// UpdateEmployee handles replacing the editable fields of an employee
func (h *EmployeeHandler) UpdateEmployee(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid employee ID")
	}

	input, errResp := h.readEmployeeInput(c)
	if input == nil {
		return errResp
	}

	employee, err := h.employeeUC.UpdateEmployee(c.Request().Context(), id, *input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newEmployeeResponse(employee))
}

// DeleteEmployee handles removing an employee
func (h *EmployeeHandler) DeleteEmployee(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid employee ID")
	}

	if err := h.employeeUC.DeleteEmployee(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListEmployeePayroll handles retrieving the payroll history of one employee
func (h *EmployeeHandler) ListEmployeePayroll(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid employee ID")
	}

	records, err := h.payrollUC.ListPayrollRecordsByEmployee(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPayrollRecordResponses(records))
}

// readEmployeeInput binds and validates the request body.
// When it returns a nil input the error response has already been written.
func (h *EmployeeHandler) readEmployeeInput(c echo.Context) (*usecase.EmployeeInput, error) {
	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "Invalid employee input")
	}

	if err := c.Validate(&req); err != nil {
		return nil, response.ValidationError(c, err)
	}

	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		return nil, response.BadRequest(c, "INVALID_DATE", "Invalid hire date")
	}

	return &usecase.EmployeeInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Department:  req.Department,
		Position:    req.Position,
		HireDate:    hireDate,
		BaseSalary:  req.BaseSalary,
		Status:      entity.EmploymentStatus(req.Status),
	}, nil
}
