// Package qrcode renders payslip QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"
	"time"

	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

const (
	payslipType = "payslip"
	dateLayout  = time.DateOnly
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// Payload returns the JSON text encoded into the payslip QR code of record.
func Payload(record *entity.PayrollRecord) ([]byte, error) {
	data := service.PayslipQRData{
		PayrollID:   record.ID,
		EmployeeID:  record.EmployeeID,
		PeriodStart: record.PayPeriodStart.Format(dateLayout),
		PeriodEnd:   record.PayPeriodEnd.Format(dateLayout),
		NetPay:      record.NetPay.String(),
		Type:        payslipType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	return jsonData, nil
}

// GeneratePayslipQR generates a PNG QR code identifying a payroll record
func (s *qrcodeService) GeneratePayslipQR(record *entity.PayrollRecord) ([]byte, error) {
	if record == nil {
		return nil, fmt.Errorf("payroll record is required")
	}

	jsonData, err := Payload(record)
	if err != nil {
		return nil, err
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePayslipQR parses and validates scanned payslip data
func (s *qrcodeService) ParsePayslipQR(qrData string) (*service.PayslipQRData, error) {
	var data service.PayslipQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != payslipType {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.PayrollID <= 0 || data.EmployeeID <= 0 {
		return nil, fmt.Errorf("invalid payslip identifiers")
	}

	start, err := time.Parse(dateLayout, data.PeriodStart)
	if err != nil {
		return nil, fmt.Errorf("failed to parse period start: %w", err)
	}
	end, err := time.Parse(dateLayout, data.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse period end: %w", err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("period end precedes period start")
	}

	if _, err := decimal.NewFromString(data.NetPay); err != nil {
		return nil, fmt.Errorf("failed to parse net pay: %w", err)
	}

	return &data, nil
}
