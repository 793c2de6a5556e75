package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"
	PermissionDashboardView  Permission = "dashboard.view"

	// Attendance Management
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceManage  Permission = "attendance.manage"

	// Leave Management
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Tasks
	PermissionTaskView   Permission = "task.view"
	PermissionTaskManage Permission = "task.manage"

	// Announcements
	PermissionAnnouncementView   Permission = "announcement.view"
	PermissionAnnouncementManage Permission = "announcement.manage"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Platform
	PermissionPlatformManage Permission = "platform.manage"
)

var employeePermissions = []Permission{
	PermissionViewOwnProfile,
	PermissionEditOwnProfile,
	PermissionDashboardView,
	PermissionAttendanceCreate,
	PermissionAttendanceViewOwn,
	PermissionLeaveCreate,
	PermissionLeaveViewOwn,
	PermissionTaskView,
	PermissionAnnouncementView,
}

var managerPermissions = append(append([]Permission{}, employeePermissions...),
	PermissionAttendanceViewAll,
	PermissionAttendanceManage,
	PermissionLeaveViewAll,
	PermissionLeaveApprove,
	PermissionTaskManage,
	PermissionAnnouncementManage,
	PermissionEmployeeViewAll,
	PermissionEmployeeManage,
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleEmployee: employeePermissions,
	RoleHR:       managerPermissions,
	RoleAdmin:    managerPermissions,
	RoleSuperAdmin: append(append([]Permission{}, managerPermissions...),
		PermissionPlatformManage,
	),
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
