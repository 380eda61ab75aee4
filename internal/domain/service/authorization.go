package service

import "hotelhrm/internal/domain/entity"

// CanModifyEmployeeData reports whether role may create, edit or delete employees.
func CanModifyEmployeeData(role entity.Role) bool {
	return role == entity.RoleHR || role == entity.RoleAdmin
}

// CanModifyPayrollData reports whether role may process or change payroll.
func CanModifyPayrollData(role entity.Role) bool {
	return role == entity.RoleHR || role == entity.RoleAdmin
}

// IsInRole reports whether role equals target.
func IsInRole(role, target entity.Role) bool {
	return role == target
}

// Permission names a capability checked by the authorization predicates.
type Permission string

const (
	PermissionModifyEmployeeData Permission = "employee:modify"
	PermissionModifyPayrollData  Permission = "payroll:modify"
)

// Allows evaluates the predicate behind p for role. Unknown permissions are denied.
func (p Permission) Allows(role entity.Role) bool {
	switch p {
	case PermissionModifyEmployeeData:
		return CanModifyEmployeeData(role)
	case PermissionModifyPayrollData:
		return CanModifyPayrollData(role)
	default:
		return false
	}
}
