package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"hotelhrm/config"
	apimiddleware "hotelhrm/internal/delivery/api/middleware"
	"hotelhrm/internal/delivery/api/router"
	"hotelhrm/internal/delivery/api/router/handler"
	"hotelhrm/internal/domain/service"
	"hotelhrm/internal/infra/auth"
	"hotelhrm/internal/infra/persistence/memory"
	"hotelhrm/internal/infra/persistence/seed"
	"hotelhrm/internal/infra/pubsub"
	"hotelhrm/internal/infra/qrcode"
	"hotelhrm/internal/infra/session"
	"hotelhrm/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := service.NewSystemClock()

	cfg := &config.Config{
		Auth: &config.AuthConfig{PasswordHasher: config.HasherBcrypt, BcryptCost: bcrypt.MinCost},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	txManager := memory.NewTransactionManager(memory.NewDB())
	hasher := auth.NewPasswordHasher(auth.PasswordHasherParams{Config: cfg})
	_, err := seed.Run(context.Background(), txManager, hasher)
	require.NoError(t, err)

	sessions := impl.NewSessionService(impl.SessionServiceParams{
		Publisher: pubsub.NewNoopPublisher(logger),
		Clock:     clock,
		Logger:    logger,
	})
	authUC := impl.NewAuthService(impl.AuthServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Sessions:  sessions,
		Logger:    logger,
	})
	guarded := impl.NewGuardedServices(impl.GuardedServicesParams{
		TxManager: txManager,
		Clock:     clock,
		Sessions:  sessions,
		Logger:    logger,
	})

	e := NewEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		SessionStore: session.NewMemoryStore(session.MemoryStoreOptions{
			MaxAge: time.Hour,
			Clock:  clock,
			Logger: logger,
		}),
		RouterParams: router.RouterParams{
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
				AuthUC:     authUC,
				SessionsUC: sessions,
				Logger:     logger,
			}),
			EmployeeHandler: handler.NewEmployeeHandler(handler.EmployeeHandlerParams{
				EmployeeUC: guarded.Employees,
				PayrollUC:  guarded.Payroll,
				Logger:     logger,
			}),
			PayrollHandler: handler.NewPayrollHandler(handler.PayrollHandlerParams{
				PayrollUC: guarded.Payroll,
				QRCodeSvc: qrcode.NewQRCodeService(128, "M"),
				Logger:    logger,
			}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(sessions, logger),
		},
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return srv
}

type browser struct {
	t      *testing.T
	base   string
	client *http.Client
}

func newBrowser(t *testing.T, srv *httptest.Server) *browser {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &browser{t: t, base: srv.URL, client: &http.Client{Jar: jar}}
}

func (b *browser) do(method, path string, body any) (*http.Response, []byte) {
	b.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(b.t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, b.base+path, reader)
	require.NoError(b.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	require.NoError(b.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)

	return resp, raw
}

func (b *browser) login(username string) {
	b.t.Helper()

	resp, _ := b.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": seed.DefaultPassword,
	})
	require.Equal(b.t, http.StatusOK, resp.StatusCode)
}

func decode(t *testing.T, raw []byte, data any) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}

	return env
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	resp, raw := newBrowser(t, srv).do(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	var body map[string]string
	env := decode(t, raw, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, resp.Header.Get("X-Request-ID"), env.Meta.RequestID)
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	resp, raw := newBrowser(t, srv).do(http.MethodGet, "/api/rooms", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "ROUTE_NOT_FOUND", decode(t, raw, nil).Error.Code)
}

func TestCORSMiddleware(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.AllowedOrigins = []string{"http://frontdesk.local"}

	e := echo.New()
	e.Use(corsMiddleware(cfg))
	e.GET("/api/auth/me", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/auth/me", nil)
		req.Header.Set(echo.HeaderOrigin, origin)
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec
	}

	allowed := preflight("http://frontdesk.local")
	assert.Equal(t, "http://frontdesk.local", allowed.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", allowed.Header().Get(echo.HeaderAccessControlAllowCredentials))

	denied := preflight("http://elsewhere.example")
	assert.Empty(t, denied.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestLoginFlow(t *testing.T) {
	srv := newTestServer(t)
	b := newBrowser(t, srv)

	resp, raw := b.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHENTICATED", decode(t, raw, nil).Error.Code)

	resp, raw = b.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "HR.Admin",
		"password": seed.DefaultPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login handler.AuthResponse
	decode(t, raw, &login)
	assert.Equal(t, "hr.admin", login.User.Username)
	assert.True(t, login.Session.Authenticated)
	assert.Equal(t, "HR", login.Session.Role)
	assert.True(t, login.Session.CanModifyEmployeeData)
	assert.True(t, login.Session.CanModifyPayrollData)

	resp, raw = b.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me handler.AuthResponse
	decode(t, raw, &me)
	assert.Equal(t, "hr.admin", me.User.Username)
	assert.Equal(t, "hr@hotelhrm.com", me.Session.Email)

	resp, raw = b.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var logout handler.AuthResponse
	decode(t, raw, &logout)
	assert.False(t, logout.Session.Authenticated)

	resp, _ = b.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejected(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name     string
		body     map[string]string
		wantCode int
		wantErr  string
	}{
		{
			name:     "wrong password",
			body:     map[string]string{"username": "hr.admin", "password": "nope"},
			wantCode: http.StatusUnauthorized,
			wantErr:  "INVALID_CREDENTIALS",
		},
		{
			name:     "unknown user",
			body:     map[string]string{"username": "ghost", "password": seed.DefaultPassword},
			wantCode: http.StatusUnauthorized,
			wantErr:  "INVALID_CREDENTIALS",
		},
		{
			name:     "missing password",
			body:     map[string]string{"username": "hr.admin"},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, raw := newBrowser(t, srv).do(http.MethodPost, "/api/auth/login", tt.body)

			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.Equal(t, tt.wantErr, decode(t, raw, nil).Error.Code)
		})
	}
}

func TestEmployeeRoutes(t *testing.T) {
	srv := newTestServer(t)

	hr := newBrowser(t, srv)
	hr.login("hr.admin")
	staff := newBrowser(t, srv)
	staff.login("john.doe")

	resp, raw := staff.do(http.MethodGet, "/api/employees", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var employees []handler.EmployeeResponse
	decode(t, raw, &employees)
	assert.Len(t, employees, 3)

	newEmployee := map[string]any{
		"first_name":  "Ana",
		"last_name":   "Lopez",
		"email":       "ana.lopez@hotelhrm.com",
		"department":  "Spa",
		"position":    "Therapist",
		"hire_date":   "2024-03-01",
		"base_salary": "41000",
	}

	resp, raw = staff.do(http.MethodPost, "/api/employees", newEmployee)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decode(t, raw, nil).Error.Code)

	resp, raw = hr.do(http.MethodPost, "/api/employees", newEmployee)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created handler.EmployeeResponse
	decode(t, raw, &created)
	assert.Positive(t, created.ID)
	assert.Equal(t, "Ana Lopez", created.FullName)
	assert.Equal(t, "Active", created.Status)
	assert.Equal(t, "2024-03-01", created.HireDate)

	path := "/api/employees/" + strconv.FormatInt(created.ID, 10)

	newEmployee["status"] = "OnLeave"
	resp, raw = hr.do(http.MethodPut, path, newEmployee)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated handler.EmployeeResponse
	decode(t, raw, &updated)
	assert.Equal(t, "OnLeave", updated.Status)

	resp, _ = staff.do(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = hr.do(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, raw = hr.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "EMPLOYEE_NOT_FOUND", decode(t, raw, nil).Error.Code)

	resp, raw = hr.do(http.MethodGet, "/api/employees/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", decode(t, raw, nil).Error.Code)

	newEmployee["base_salary"] = "-1"
	resp, raw = hr.do(http.MethodPost, "/api/employees", newEmployee)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_SALARY", decode(t, raw, nil).Error.Code)

	resp, _ = newBrowser(t, srv).do(http.MethodGet, "/api/employees", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPayrollRoutes(t *testing.T) {
	srv := newTestServer(t)

	hr := newBrowser(t, srv)
	hr.login("hr.admin")
	staff := newBrowser(t, srv)
	staff.login("jane.smith")

	request := map[string]any{
		"employee_id":  1,
		"period_start": "2024-01-01",
		"period_end":   "2024-01-30",
		"bonus":        "200",
		"deductions":   "100",
	}

	resp, _ := staff.do(http.MethodPost, "/api/payroll", request)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, raw := hr.do(http.MethodPost, "/api/payroll", request)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var record handler.PayrollRecordResponse
	decode(t, raw, &record)
	assert.Equal(t, int64(1), record.EmployeeID)
	assert.Equal(t, "2024-01-01", record.PayPeriodStart)
	assert.Equal(t, "Processed", record.Status)
	require.NotNil(t, record.Employee)
	assert.Equal(t, "John Doe", record.Employee.FullName)
	assert.Equal(t, "3016.67", record.NetPay.Round(2).StringFixed(2))

	recordPath := "/api/payroll/" + strconv.FormatInt(record.ID, 10)

	resp, raw = staff.do(http.MethodGet, recordPath, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched handler.PayrollRecordResponse
	decode(t, raw, &fetched)
	assert.Equal(t, record.ID, fetched.ID)

	resp, raw = staff.do(http.MethodGet, "/api/employees/1/payroll", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var history []handler.PayrollRecordResponse
	decode(t, raw, &history)
	assert.Len(t, history, 1)

	resp, raw = hr.do(http.MethodPatch, recordPath+"/status", map[string]string{"status": "Paid"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var paid handler.PayrollRecordResponse
	decode(t, raw, &paid)
	assert.Equal(t, "Paid", paid.Status)

	resp, raw = hr.do(http.MethodPatch, recordPath+"/status", map[string]string{"status": "Lost"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, raw, nil).Error.Code)

	resp, raw = staff.do(http.MethodGet, recordPath+"/qrcode", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, []byte("\x89PNG"), raw[:4])

	request["period_end"] = "2023-12-31"
	resp, raw = hr.do(http.MethodPost, "/api/payroll", request)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_PAY_PERIOD", decode(t, raw, nil).Error.Code)

	resp, raw = hr.do(http.MethodGet, "/api/payroll/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "PAYROLL_RECORD_NOT_FOUND", decode(t, raw, nil).Error.Code)

	resp, raw = hr.do(http.MethodGet, "/api/payroll", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all []handler.PayrollRecordResponse
	decode(t, raw, &all)
	assert.Len(t, all, 1)
}
