package service

import "hotelhrm/internal/domain/entity"

// PayslipQRData is the payload encoded into a payslip QR code.
type PayslipQRData struct {
	PayrollID   int64  `json:"payroll_id"`
	EmployeeID  int64  `json:"employee_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	NetPay      string `json:"net_pay"`
	Type        string `json:"type"`
}

// QRCodeService defines the interface for payslip QR code generation and parsing
type QRCodeService interface {
	// GeneratePayslipQR renders a PNG QR code identifying the payroll record
	GeneratePayslipQR(record *entity.PayrollRecord) ([]byte, error)

	// ParsePayslipQR decodes a scanned payload
	ParsePayslipQR(qrData string) (*PayslipQRData, error)
}
