package qrcode

import (
	"encoding/json"
	"testing"
	"time"

	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() *entity.PayrollRecord {
	return &entity.PayrollRecord{
		ID:             12,
		EmployeeID:     1,
		PayPeriodStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PayPeriodEnd:   time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC),
		NetPay:         decimal.RequireFromString("3016.666666666666667"),
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePayslipQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GeneratePayslipQR(testRecord())
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])

	_, err = service.GeneratePayslipQR(nil)
	assert.Error(t, err)
}

func TestPayload(t *testing.T) {
	payload, err := Payload(testRecord())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"payroll_id": 12,
		"employee_id": 1,
		"period_start": "2024-01-01",
		"period_end": "2024-01-30",
		"net_pay": "3016.666666666666667",
		"type": "payslip"
	}`, string(payload))
}

func TestQRCodeService_ParsePayslipQR_RoundTrip(t *testing.T) {
	qrService := NewQRCodeService(256, "M")
	payload, err := Payload(testRecord())
	require.NoError(t, err)

	data, err := qrService.ParsePayslipQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, int64(12), data.PayrollID)
	assert.Equal(t, int64(1), data.EmployeeID)
	assert.Equal(t, "2024-01-30", data.PeriodEnd)
}

func TestQRCodeService_ParsePayslipQR_Invalid(t *testing.T) {
	qrService := NewQRCodeService(256, "M")
	valid := service.PayslipQRData{
		PayrollID: 1, EmployeeID: 1, PeriodStart: "2024-01-01", PeriodEnd: "2024-01-31", NetPay: "10", Type: "payslip",
	}

	tests := []struct {
		name    string
		mutate  func(d *service.PayslipQRData)
		wantErr string
	}{
		{"wrong type", func(d *service.PayslipQRData) { d.Type = "subscription" }, "invalid QR code type"},
		{"missing payroll id", func(d *service.PayslipQRData) { d.PayrollID = 0 }, "invalid payslip identifiers"},
		{"bad start", func(d *service.PayslipQRData) { d.PeriodStart = "01/01/2024" }, "period start"},
		{"bad end", func(d *service.PayslipQRData) { d.PeriodEnd = "" }, "period end"},
		{"reversed period", func(d *service.PayslipQRData) { d.PeriodEnd = "2023-12-31" }, "precedes"},
		{"bad amount", func(d *service.PayslipQRData) { d.NetPay = "ten" }, "net pay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := valid
			tt.mutate(&data)
			raw, err := json.Marshal(data)
			require.NoError(t, err)

			_, err = qrService.ParsePayslipQR(string(raw))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := qrService.ParsePayslipQR("invalid json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}
