package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/announcement"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/company"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuperAdminRepository_DeleteCompanyCascades(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewSuperAdminRepository(testDB)
	acme := createTestCompany(t, ctx, "Acme Corp")
	globex := createTestCompany(t, ctx, "Globex")
	createTestUser(t, ctx, &acme, "Alice Admin", "alice@acme.com", "ACALAD20260001", user.RoleAdmin)
	john := createTestUser(t, ctx, &acme, "John Doe", "john@acme.com", "ACJODO20260001", user.RoleEmployee)
	createTestUser(t, ctx, &globex, "Hank Scorpio", "hank@globex.com", "GLHASC20260001", user.RoleAdmin)

	_, err := postgresql.NewLeaveRepository(testDB).Create(ctx, leave.Leave{
		UserID: john.ID, Type: leave.TypeSick, Status: leave.StatusPending,
		StartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	summaries, err := repo.ListCompanySummaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	deleted, err := repo.DeleteCompany(ctx, acme.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = postgresql.NewCompanyRepository(testDB).GetByID(ctx, acme.ID)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)

	overview, err := repo.GetOverview(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), overview.TotalCompanies)
	assert.Equal(t, int64(1), overview.TotalUsers)
	assert.Equal(t, int64(0), overview.TotalLeaves)
}

func TestAnnouncementRepository_VisibilityAndExpiry(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewAnnouncementRepository(testDB)
	acme := createTestCompany(t, ctx, "Acme Corp")
	admin := createTestUser(t, ctx, &acme, "Alice Admin", "alice@acme.com", "ACALAD20260001", user.RoleAdmin)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)

	for _, a := range []announcement.Announcement{
		{CompanyID: acme.ID, Title: "Expired", Message: "m", Type: announcement.TypeInfo, CreatedBy: admin.ID, ExpiresAt: &past, IsActive: true},
		{CompanyID: acme.ID, Title: "Upcoming", Message: "m", Type: announcement.TypeWarning, CreatedBy: admin.ID, ExpiresAt: &future, IsActive: true},
		{CompanyID: acme.ID, Title: "Forever", Message: "m", Type: announcement.TypeSuccess, CreatedBy: admin.ID, IsActive: true},
	} {
		_, err := repo.Create(ctx, a)
		require.NoError(t, err)
	}

	visible, err := repo.ListVisible(ctx, acme.ID, now)
	require.NoError(t, err)
	assert.Len(t, visible, 2)

	changed, err := repo.DeactivateExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	changed, err = repo.DeactivateExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), changed)
}
