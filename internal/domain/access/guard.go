// Package access decides whether an acting user may touch a record. Every
// function here is pure: callers load the records, the guard only compares
// tenants, owners and roles.
package access

import (
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
)

// Actor is the authenticated user behind a request.
type Actor struct {
	UserID    string
	Role      user.Role
	CompanyID *string
}

// Resource describes the tenancy of a loaded record. OwnerID is the user the
// record belongs to (attendance/leave owner, task assignee, the user itself).
type Resource struct {
	CompanyID *string
	OwnerID   string
}

// ActorFromUser builds the actor for a loaded user record.
func ActorFromUser(u user.User) Actor {
	return Actor{UserID: u.ID, Role: u.Role, CompanyID: u.CompanyID}
}

// IsSuperAdmin reports whether the actor is exempt from tenant scoping.
func (a Actor) IsSuperAdmin() bool {
	return a.Role == user.RoleSuperAdmin
}

// SameTenant reports whether both sides belong to the same, non-empty company.
func (a Actor) SameTenant(companyID *string) bool {
	return a.CompanyID != nil && companyID != nil && *a.CompanyID != "" && *a.CompanyID == *companyID
}

// Authorize permits reading or mutating res. A nil res means the record does
// not exist.
func Authorize(actor Actor, res *Resource) error {
	if res == nil {
		return ErrRecordNotFound
	}
	if actor.IsSuperAdmin() {
		return nil
	}
	if !actor.SameTenant(res.CompanyID) {
		return ErrForbidden
	}
	if actor.Role.IsTenantManager() {
		return nil
	}
	if actor.Role == user.RoleEmployee && res.OwnerID != "" && res.OwnerID == actor.UserID {
		return nil
	}
	return ErrForbidden
}

// AuthorizeTenant permits actions on company-level records that have no
// single owner, such as announcements. Employees are never allowed.
func AuthorizeTenant(actor Actor, res *Resource) error {
	if res == nil {
		return ErrRecordNotFound
	}
	if actor.IsSuperAdmin() {
		return nil
	}
	if !actor.SameTenant(res.CompanyID) || !actor.Role.IsTenantManager() {
		return ErrForbidden
	}
	return nil
}

// RequireTenant returns the actor's company id for tenant-scoped listings.
func RequireTenant(actor Actor) (string, error) {
	if actor.CompanyID == nil || *actor.CompanyID == "" {
		return "", ErrTenantRequired
	}
	return *actor.CompanyID, nil
}

// CanChangeRole permits moving target to newRole. Only a company Admin of
// the target's tenant (or a SuperAdmin) may change roles, nobody may change
// their own role, and only a SuperAdmin may grant SuperAdmin.
func CanChangeRole(actor Actor, target user.User, newRole user.Role) error {
	if actor.UserID == target.ID {
		return ErrRoleChangeDenied
	}
	if actor.IsSuperAdmin() {
		return nil
	}
	if actor.Role != user.RoleAdmin || !actor.SameTenant(target.CompanyID) {
		return ErrRoleChangeDenied
	}
	if newRole == user.RoleSuperAdmin || target.Role == user.RoleSuperAdmin {
		return ErrRoleChangeDenied
	}
	return nil
}

// CanDeleteUser permits deleting target. Self deletion is an authorization
// failure; deleting an Admin is a conflict in any tenant.
func CanDeleteUser(actor Actor, target *user.User) error {
	if target == nil {
		return ErrRecordNotFound
	}
	if actor.UserID == target.ID {
		return ErrSelfDeletion
	}
	if target.Role == user.RoleAdmin || target.Role == user.RoleSuperAdmin {
		return ErrAdminDeletion
	}
	return AuthorizeTenant(actor, &Resource{CompanyID: target.CompanyID, OwnerID: target.ID})
}

// CanDeleteLeave permits the owner to withdraw a leave request that is still
// pending.
func CanDeleteLeave(actor Actor, ownerID string, pending bool) error {
	if ownerID == "" || ownerID != actor.UserID {
		return ErrForbidden
	}
	if !pending {
		return ErrLeaveNotPending
	}
	return nil
}
