package access

import (
	"context"
	"testing"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

var (
	acme   = strPtr("company-acme")
	globex = strPtr("company-globex")
)

func TestAuthorize_ManagersFollowTenant(t *testing.T) {
	for _, role := range []user.Role{user.RoleHR, user.RoleAdmin} {
		actor := Actor{UserID: "manager", Role: role, CompanyID: acme}

		assert.NoError(t, Authorize(actor, &Resource{CompanyID: acme, OwnerID: "someone"}), role)
		assert.ErrorIs(t, Authorize(actor, &Resource{CompanyID: globex, OwnerID: "someone"}), ErrForbidden, role)
		assert.ErrorIs(t, Authorize(actor, &Resource{CompanyID: nil, OwnerID: "someone"}), ErrForbidden, role)
	}
}

func TestAuthorize_SuperAdminIsGlobal(t *testing.T) {
	actor := Actor{UserID: "root", Role: user.RoleSuperAdmin}

	assert.NoError(t, Authorize(actor, &Resource{CompanyID: acme}))
	assert.NoError(t, Authorize(actor, &Resource{CompanyID: globex}))
	assert.ErrorIs(t, Authorize(actor, nil), ErrRecordNotFound)
}

func TestAuthorize_EmployeeOwnRecordsOnly(t *testing.T) {
	actor := Actor{UserID: "emp-1", Role: user.RoleEmployee, CompanyID: acme}

	assert.NoError(t, Authorize(actor, &Resource{CompanyID: acme, OwnerID: "emp-1"}))
	assert.ErrorIs(t, Authorize(actor, &Resource{CompanyID: acme, OwnerID: "emp-2"}), ErrForbidden)
	assert.ErrorIs(t, Authorize(actor, &Resource{CompanyID: globex, OwnerID: "emp-1"}), ErrForbidden)
}

func TestAuthorize_MissingRecord(t *testing.T) {
	actor := Actor{UserID: "emp-1", Role: user.RoleEmployee, CompanyID: acme}
	assert.ErrorIs(t, Authorize(actor, nil), ErrRecordNotFound)
}

func TestAuthorizeTenant(t *testing.T) {
	res := &Resource{CompanyID: acme}

	assert.NoError(t, AuthorizeTenant(Actor{UserID: "a", Role: user.RoleAdmin, CompanyID: acme}, res))
	assert.NoError(t, AuthorizeTenant(Actor{UserID: "h", Role: user.RoleHR, CompanyID: acme}, res))
	assert.ErrorIs(t, AuthorizeTenant(Actor{UserID: "e", Role: user.RoleEmployee, CompanyID: acme}, res), ErrForbidden)
	assert.ErrorIs(t, AuthorizeTenant(Actor{UserID: "a", Role: user.RoleAdmin, CompanyID: globex}, res), ErrForbidden)
}

func TestRequireTenant(t *testing.T) {
	id, err := RequireTenant(Actor{UserID: "a", CompanyID: acme})
	require.NoError(t, err)
	assert.Equal(t, "company-acme", id)

	_, err = RequireTenant(Actor{UserID: "root", Role: user.RoleSuperAdmin})
	assert.ErrorIs(t, err, ErrTenantRequired)
}

func TestCanChangeRole(t *testing.T) {
	admin := Actor{UserID: "admin", Role: user.RoleAdmin, CompanyID: acme}
	hr := Actor{UserID: "hr", Role: user.RoleHR, CompanyID: acme}
	root := Actor{UserID: "root", Role: user.RoleSuperAdmin}
	employee := user.User{ID: "emp", Role: user.RoleEmployee, CompanyID: acme}
	foreign := user.User{ID: "emp-x", Role: user.RoleEmployee, CompanyID: globex}

	assert.NoError(t, CanChangeRole(admin, employee, user.RoleHR))
	assert.ErrorIs(t, CanChangeRole(hr, employee, user.RoleHR), ErrRoleChangeDenied)
	assert.ErrorIs(t, CanChangeRole(admin, foreign, user.RoleHR), ErrRoleChangeDenied)
	assert.ErrorIs(t, CanChangeRole(admin, user.User{ID: "admin", Role: user.RoleAdmin, CompanyID: acme}, user.RoleEmployee), ErrRoleChangeDenied)
	assert.ErrorIs(t, CanChangeRole(admin, employee, user.RoleSuperAdmin), ErrRoleChangeDenied)
	assert.NoError(t, CanChangeRole(root, foreign, user.RoleAdmin))
	assert.ErrorIs(t, CanChangeRole(root, user.User{ID: "root", Role: user.RoleSuperAdmin}, user.RoleAdmin), ErrRoleChangeDenied)
}

func TestCanDeleteUser(t *testing.T) {
	admin := Actor{UserID: "admin", Role: user.RoleAdmin, CompanyID: acme}

	cases := []struct {
		name   string
		target *user.User
		want   error
	}{
		{"employee in tenant", &user.User{ID: "emp", Role: user.RoleEmployee, CompanyID: acme}, nil},
		{"self", &user.User{ID: "admin", Role: user.RoleAdmin, CompanyID: acme}, ErrSelfDeletion},
		{"other admin", &user.User{ID: "admin-2", Role: user.RoleAdmin, CompanyID: acme}, ErrAdminDeletion},
		{"other tenant", &user.User{ID: "emp-x", Role: user.RoleEmployee, CompanyID: globex}, ErrForbidden},
		{"admin of other tenant", &user.User{ID: "admin-x", Role: user.RoleAdmin, CompanyID: globex}, ErrAdminDeletion},
		{"missing", nil, ErrRecordNotFound},
	}
	for _, c := range cases {
		err := CanDeleteUser(admin, c.target)
		if c.want == nil {
			assert.NoError(t, err, c.name)
			continue
		}
		assert.ErrorIs(t, err, c.want, c.name)
	}
}

func TestCanDeleteUser_SuperAdminStillCannotDeleteAdmins(t *testing.T) {
	root := Actor{UserID: "root", Role: user.RoleSuperAdmin}
	err := CanDeleteUser(root, &user.User{ID: "admin", Role: user.RoleAdmin, CompanyID: acme})
	assert.ErrorIs(t, err, ErrAdminDeletion)
}

func TestCanDeleteLeave(t *testing.T) {
	owner := Actor{UserID: "emp", Role: user.RoleEmployee, CompanyID: acme}
	admin := Actor{UserID: "admin", Role: user.RoleAdmin, CompanyID: acme}

	assert.NoError(t, CanDeleteLeave(owner, "emp", true))
	assert.ErrorIs(t, CanDeleteLeave(owner, "emp", false), ErrLeaveNotPending)
	assert.ErrorIs(t, CanDeleteLeave(admin, "emp", true), ErrForbidden)
	assert.ErrorIs(t, CanDeleteLeave(admin, "emp", false), ErrForbidden)
}

func TestActorContext(t *testing.T) {
	_, err := ActorFromContext(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)

	want := Actor{UserID: "u1", Role: user.RoleHR, CompanyID: acme}
	got, err := ActorFromContext(WithActor(context.Background(), want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
