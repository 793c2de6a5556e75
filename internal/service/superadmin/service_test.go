package superadmin

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/company"
	companymock "github.com/dayflow-hr/hrms-backend-go/internal/domain/company/mock"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/superadmin"
	superadminmock "github.com/dayflow-hr/hrms-backend-go/internal/domain/superadmin/mock"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	usermock "github.com/dayflow-hr/hrms-backend-go/internal/domain/user/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const companyID = "0190a8d2-7c4e-7b1a-9f3e-2d5c6b7a8e90"

type consoleFixture struct {
	repo      *superadminmock.MockSuperAdminRepository
	companies *companymock.MockCompanyRepository
	users     *usermock.MockUserRepository
	svc       superadmin.SuperAdminService
}

func setup(t *testing.T) consoleFixture {
	ctrl := gomock.NewController(t)
	f := consoleFixture{
		repo:      superadminmock.NewMockSuperAdminRepository(ctrl),
		companies: companymock.NewMockCompanyRepository(ctrl),
		users:     usermock.NewMockUserRepository(ctrl),
	}
	f.svc = NewSuperAdminService(f.repo, f.companies, f.users)
	return f
}

func rootCtx() context.Context {
	return access.WithActor(context.Background(), access.Actor{UserID: "root", Role: user.RoleSuperAdmin})
}

func TestSuperAdminService_RequiresSuperAdmin(t *testing.T) {
	f := setup(t)
	acme := companyID
	ctx := access.WithActor(context.Background(), access.Actor{UserID: "admin-1", Role: user.RoleAdmin, CompanyID: &acme})

	_, err := f.svc.ListCompanies(ctx)
	assert.ErrorIs(t, err, access.ErrForbidden)
	_, err = f.svc.DeleteCompany(ctx, companyID)
	assert.ErrorIs(t, err, access.ErrForbidden)
	_, err = f.svc.GetSystemStats(context.Background())
	assert.ErrorIs(t, err, access.ErrUnauthenticated)
}

func TestSuperAdminService_GetCompanyDetails(t *testing.T) {
	f := setup(t)
	created := time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC)

	f.companies.EXPECT().GetByID(gomock.Any(), companyID).Return(company.Company{ID: companyID, Name: "Acme Corp", CreatedAt: created}, nil)
	f.users.EXPECT().ListByCompany(gomock.Any(), companyID).Return([]user.User{
		{ID: "admin-1", Role: user.RoleAdmin},
		{ID: "emp-1", Role: user.RoleEmployee},
	}, nil)
	f.repo.EXPECT().CountAttendanceByCompany(gomock.Any(), companyID).Return(int64(40), nil)
	f.repo.EXPECT().CountLeavesByStatus(gomock.Any(), companyID).Return(map[string]int64{"pending": 2, "approved": 5}, nil)
	f.repo.EXPECT().CountTasksByStatus(gomock.Any(), companyID).Return(map[string]int64{"in_progress": 3}, nil)
	f.repo.EXPECT().CountActiveAnnouncements(gomock.Any(), companyID).Return(int64(1), nil)

	resp, err := f.svc.GetCompanyDetails(rootCtx(), companyID)
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", resp.CompanyName)
	assert.Len(t, resp.Users, 2)
	assert.Equal(t, 2, resp.Stats.TotalUsers)
	assert.Equal(t, int64(40), resp.Stats.AttendanceRecords)
	assert.Equal(t, int64(5), resp.Stats.Leaves["approved"])
	assert.Equal(t, int64(3), resp.Stats.Tasks["in_progress"])
	assert.Equal(t, int64(1), resp.Stats.ActiveAnnouncements)
}

func TestSuperAdminService_GetCompanyDetails_NotFound(t *testing.T) {
	f := setup(t)
	f.companies.EXPECT().GetByID(gomock.Any(), companyID).Return(company.Company{}, company.ErrCompanyNotFound)

	_, err := f.svc.GetCompanyDetails(rootCtx(), companyID)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}

func TestSuperAdminService_GetSystemStats(t *testing.T) {
	f := setup(t)
	f.repo.EXPECT().GetOverview(gomock.Any()).Return(superadmin.Overview{TotalCompanies: 3, TotalUsers: 25}, nil)
	f.repo.EXPECT().ListRecentUsers(gomock.Any(), superadmin.RecentUsersLimit).Return([]user.User{{ID: "u1", Name: "Newest"}}, nil)

	resp, err := f.svc.GetSystemStats(rootCtx())
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Overview.TotalCompanies)
	require.Len(t, resp.RecentUsers, 1)
	assert.Equal(t, "Newest", resp.RecentUsers[0].Name)
}

func TestSuperAdminService_DeleteCompany(t *testing.T) {
	f := setup(t)
	f.companies.EXPECT().GetByID(gomock.Any(), companyID).Return(company.Company{ID: companyID, Name: "Acme Corp"}, nil)
	f.repo.EXPECT().DeleteCompany(gomock.Any(), companyID).Return(int64(7), nil)

	resp, err := f.svc.DeleteCompany(rootCtx(), companyID)
	require.NoError(t, err)
	assert.Equal(t, &superadmin.DeleteCompanyResponse{CompanyID: companyID, CompanyName: "Acme Corp", DeletedUsers: 7}, resp)
}

func TestSuperAdminService_UpdateUser(t *testing.T) {
	other := "0190a8d2-7c4e-7b1a-9f3e-2d5c6b7a8e91"

	t.Run("moves a user to another company", func(t *testing.T) {
		f := setup(t)
		acme := companyID
		f.users.EXPECT().GetByID(gomock.Any(), "emp-1").Return(user.User{ID: "emp-1", Role: user.RoleEmployee, CompanyID: &acme}, nil)
		f.companies.EXPECT().GetByID(gomock.Any(), other).Return(company.Company{ID: other, Name: "Globex"}, nil)
		f.users.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u user.User) (user.User, error) {
				assert.Equal(t, other, *u.CompanyID)
				assert.Equal(t, user.RoleHR, u.Role)
				return u, nil
			})

		role := "HR"
		resp, err := f.svc.UpdateUser(rootCtx(), "emp-1", superadmin.UpdateAnyUserRequest{CompanyID: &other, Role: &role})
		require.NoError(t, err)
		assert.Equal(t, user.RoleHR, resp.Role)
	})

	t.Run("non superadmin needs a company", func(t *testing.T) {
		f := setup(t)
		acme := companyID
		f.users.EXPECT().GetByID(gomock.Any(), "emp-1").Return(user.User{ID: "emp-1", Role: user.RoleEmployee, CompanyID: &acme}, nil)

		empty := ""
		_, err := f.svc.UpdateUser(rootCtx(), "emp-1", superadmin.UpdateAnyUserRequest{CompanyID: &empty})
		assert.ErrorIs(t, err, user.ErrCompanyRequired)
	})

	t.Run("unknown company", func(t *testing.T) {
		f := setup(t)
		f.users.EXPECT().GetByID(gomock.Any(), "emp-1").Return(user.User{ID: "emp-1", Role: user.RoleEmployee}, nil)
		f.companies.EXPECT().GetByID(gomock.Any(), other).Return(company.Company{}, company.ErrCompanyNotFound)

		_, err := f.svc.UpdateUser(rootCtx(), "emp-1", superadmin.UpdateAnyUserRequest{CompanyID: &other})
		assert.ErrorIs(t, err, company.ErrCompanyNotFound)
	})
}
