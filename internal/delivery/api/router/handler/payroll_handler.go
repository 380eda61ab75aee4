package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"hotelhrm/internal/delivery/api/response"
	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/service"
	"hotelhrm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PayrollHandlerParams holds dependencies for PayrollHandler, injected by Fx.
type PayrollHandlerParams struct {
	fx.In

	PayrollUC usecase.PayrollUsecase
	QRCodeSvc service.QRCodeService
	Logger    *slog.Logger
}

// PayrollHandler holds dependencies for payroll-related handlers
type PayrollHandler struct {
	payrollUC usecase.PayrollUsecase
	qrCodeSvc service.QRCodeService
	logger    *slog.Logger
}

// NewPayrollHandler is the constructor for PayrollHandler
func NewPayrollHandler(params PayrollHandlerParams) *PayrollHandler {
	return &PayrollHandler{
		payrollUC: params.PayrollUC,
		qrCodeSvc: params.QRCodeSvc,
		logger:    params.Logger,
	}
}

// ListPayrollRecords handles retrieving all payroll records
func (h *PayrollHandler) ListPayrollRecords(c echo.Context) error {
	records, err := h.payrollUC.ListPayrollRecords(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPayrollRecordResponses(records))
}

// GetPayrollRecord handles retrieving one payroll record
func (h *PayrollHandler) GetPayrollRecord(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid payroll record ID")
	}

	record, err := h.payrollUC.GetPayrollRecord(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPayrollRecordResponse(record))
}

// ProcessPayroll handles computing pay for one employee and period
func (h *PayrollHandler) ProcessPayroll(c echo.Context) error {
	var req ProcessPayrollRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid payroll input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	start, err := parseDate(req.PeriodStart)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid period start")
	}
	end, err := parseDate(req.PeriodEnd)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid period end")
	}

	record, err := h.payrollUC.ProcessPayroll(c.Request().Context(), usecase.ProcessPayrollInput{
		EmployeeID:  req.EmployeeID,
		PeriodStart: start,
		PeriodEnd:   end,
		Bonus:       req.Bonus,
		Deductions:  req.Deductions,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newPayrollRecordResponse(record))
}

// UpdatePayrollStatus handles moving a payroll record to a new status
func (h *PayrollHandler) UpdatePayrollStatus(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid payroll record ID")
	}

	var req UpdatePayrollStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	record, err := h.payrollUC.UpdatePayrollStatus(c.Request().Context(), id, entity.PayrollStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPayrollRecordResponse(record))
}

// GetPayslipQR handles rendering the payslip QR code of a payroll record as PNG
func (h *PayrollHandler) GetPayslipQR(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid payroll record ID")
	}

	record, err := h.payrollUC.GetPayrollRecord(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrCodeSvc.GeneratePayslipQR(record)
	if err != nil {
		return errors.Wrap(err, "failed to generate payslip QR code")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "inline; filename=payslip-"+strconv.FormatInt(record.ID, 10)+".png")

	return c.Blob(http.StatusOK, "image/png", png)
}
