package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/company"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(testDB)
	acme := createTestCompany(t, ctx, "Acme Corp")

	created := createTestUser(t, ctx, &acme, "John Doe", "john@acme.com", "ACJODO20260001", user.RoleEmployee)
	require.NotEmpty(t, created.ID)

	byEmail, err := repo.GetByEmailOrEmployeeCode(ctx, "john@acme.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	require.NotNil(t, byEmail.CompanyName)
	assert.Equal(t, "Acme Corp", *byEmail.CompanyName)

	byCode, err := repo.GetByEmailOrEmployeeCode(ctx, "ACJODO20260001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byCode.ID)

	_, err = repo.GetByEmailOrEmployeeCode(ctx, "nobody@acme.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_UniqueConstraints(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(testDB)
	acme := createTestCompany(t, ctx, "Acme Corp")
	createTestUser(t, ctx, &acme, "John Doe", "john@acme.com", "ACJODO20260001", user.RoleEmployee)

	_, err := repo.Create(ctx, user.User{Name: "Other", Email: "john@acme.com", PasswordHash: "x", EmployeeCode: "ACOTHE20260001", Role: user.RoleEmployee, CompanyID: &acme.ID})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	_, err = repo.Create(ctx, user.User{Name: "Jo Dove", Email: "jo@acme.com", PasswordHash: "x", EmployeeCode: "ACJODO20260001", Role: user.RoleEmployee, CompanyID: &acme.ID})
	assert.ErrorIs(t, err, user.ErrEmployeeCodeTaken)
}

func TestUserRepository_EmployeeCodeSequence(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(testDB)
	acme := createTestCompany(t, ctx, "Acme Corp")
	admin := createTestUser(t, ctx, &acme, "Alice Admin", "alice@acme.com", "ACALAD20260001", user.RoleAdmin)
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	first, err := user.CreateWithEmployeeCode(ctx, repo, user.User{Name: "John Doe", Email: "john@acme.com", PasswordHash: "x", Role: user.RoleEmployee, CompanyID: admin.CompanyID}, "Acme Corp", now)
	require.NoError(t, err)
	second, err := user.CreateWithEmployeeCode(ctx, repo, user.User{Name: "Jolene Dorsey", Email: "jolene@acme.com", PasswordHash: "x", Role: user.RoleEmployee, CompanyID: admin.CompanyID}, "Acme Corp", now)
	require.NoError(t, err)

	assert.Equal(t, "ACJODO20260001", first.EmployeeCode)
	assert.Equal(t, "ACJODO20260002", second.EmployeeCode)
}

func TestUserRepository_SuperAdminHasNoCompany(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(testDB)

	exists, err := repo.ExistsByRole(ctx, user.RoleSuperAdmin)
	require.NoError(t, err)
	assert.False(t, exists)

	createTestUser(t, ctx, nil, "Root", "root@dayflow.com", "SUPERADMIN001", user.RoleSuperAdmin)

	exists, err = repo.ExistsByRole(ctx, user.RoleSuperAdmin)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.Create(ctx, user.User{Name: "Loose", Email: "loose@x.com", PasswordHash: "x", EmployeeCode: "XXLOOS20260001", Role: user.RoleEmployee})
	assert.Error(t, err)
}

func TestCompanyRepository_NameIsCaseInsensitiveUnique(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewCompanyRepository(testDB)
	createTestCompany(t, ctx, "Acme Corp")

	_, err := repo.Create(ctx, company.Company{Name: "ACME corp"})
	assert.ErrorIs(t, err, company.ErrCompanyNameExists)
}
