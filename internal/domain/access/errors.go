package access

import "errors"

var (
	// Not found
	ErrRecordNotFound = errors.New("record not found")

	// Authorization errors
	ErrForbidden        = errors.New("not authorized to access this record")
	ErrTenantRequired   = errors.New("no company associated with this user")
	ErrRoleChangeDenied = errors.New("not authorized to change roles")
	ErrSelfDeletion     = errors.New("cannot delete yourself")
	ErrUnauthenticated  = errors.New("authentication required")

	// Conflicts
	ErrAdminDeletion   = errors.New("cannot delete admin users")
	ErrLeaveNotPending = errors.New("cannot delete approved/rejected leaves")
)
