// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hotelhrm/internal/delivery/api/middleware"
	"hotelhrm/internal/delivery/api/router/handler"
	"hotelhrm/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	EmployeeHandler *handler.EmployeeHandler
	PayrollHandler  *handler.PayrollHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	employeeHandler *handler.EmployeeHandler
	payrollHandler  *handler.PayrollHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		employeeHandler: params.EmployeeHandler,
		payrollHandler:  params.PayrollHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.RequireAuthenticated)
	}

	canModifyEmployees := r.authMiddleware.RequirePermission(service.PermissionModifyEmployeeData)
	canModifyPayroll := r.authMiddleware.RequirePermission(service.PermissionModifyPayrollData)

	// Employee routes
	employeesGroup := api.Group("/employees")
	employeesGroup.Use(r.authMiddleware.RequireAuthenticated)
	{
		employeesGroup.GET("", r.employeeHandler.ListEmployees)
		employeesGroup.GET("/:id", r.employeeHandler.GetEmployee)
		employeesGroup.GET("/:id/payroll", r.employeeHandler.ListEmployeePayroll)
		employeesGroup.POST("", r.employeeHandler.CreateEmployee, canModifyEmployees)
		employeesGroup.PUT("/:id", r.employeeHandler.UpdateEmployee, canModifyEmployees)
		employeesGroup.DELETE("/:id", r.employeeHandler.DeleteEmployee, canModifyEmployees)
	}

	// Payroll routes
	payrollGroup := api.Group("/payroll")
	payrollGroup.Use(r.authMiddleware.RequireAuthenticated)
	{
		payrollGroup.GET("", r.payrollHandler.ListPayrollRecords)
		payrollGroup.GET("/:id", r.payrollHandler.GetPayrollRecord)
		payrollGroup.GET("/:id/qrcode", r.payrollHandler.GetPayslipQR)
		payrollGroup.POST("", r.payrollHandler.ProcessPayroll, canModifyPayroll)
		payrollGroup.PATCH("/:id/status", r.payrollHandler.UpdatePayrollStatus, canModifyPayroll)
	}
}
