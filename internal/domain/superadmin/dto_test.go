package superadmin

import (
	"testing"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusKey(t *testing.T) {
	assert.Equal(t, "in_progress", StatusKey("In Progress"))
	assert.Equal(t, "pending", StatusKey("Pending"))
}

func TestUpdateAnyUserRequest_Apply(t *testing.T) {
	role := "HR"
	company := "0192f0c1-0000-7000-8000-000000000002"
	email := " New@Acme.com "
	req := UpdateAnyUserRequest{Role: &role, CompanyID: &company, Email: &email}
	require.NoError(t, req.Validate())

	oldCompany := "0192f0c1-0000-7000-8000-000000000001"
	oldName := "Acme"
	u := user.User{ID: "u1", Role: user.RoleEmployee, CompanyID: &oldCompany, CompanyName: &oldName, Name: "Jane"}
	req.Apply(&u)

	assert.Equal(t, user.RoleHR, u.Role)
	require.NotNil(t, u.CompanyID)
	assert.Equal(t, company, *u.CompanyID)
	assert.Nil(t, u.CompanyName)
	assert.Equal(t, "new@acme.com", u.Email)
	assert.Equal(t, "Jane", u.Name)
}

func TestUpdateAnyUserRequest_ValidateRejects(t *testing.T) {
	role := "Owner"
	company := "acme"
	req := UpdateAnyUserRequest{Role: &role, CompanyID: &company}
	assert.Error(t, req.Validate())
}
