package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/dashboard"
	dashboardmock "github.com/dayflow-hr/hrms-backend-go/internal/domain/dashboard/mock"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	usermock "github.com/dayflow-hr/hrms-backend-go/internal/domain/user/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	acme = "company-acme"
	now  = time.Date(2026, 7, 20, 10, 0, 0, 0, time.UTC)
	day  = 24 * time.Hour
)

func setup(t *testing.T) (*dashboardmock.MockDashboardRepository, *usermock.MockUserRepository, *DashboardServiceImpl) {
	ctrl := gomock.NewController(t)
	repo := dashboardmock.NewMockDashboardRepository(ctrl)
	users := usermock.NewMockUserRepository(ctrl)
	svc := NewDashboardService(repo, users).(*DashboardServiceImpl)
	svc.now = func() time.Time { return now }
	return repo, users, svc
}

func TestDashboardService_GetStats(t *testing.T) {
	repo, users, svc := setup(t)
	ctx := access.WithActor(context.Background(), access.Actor{UserID: "emp-1", Role: user.RoleEmployee, CompanyID: &acme})

	joined := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	users.EXPECT().GetByID(gomock.Any(), "emp-1").Return(user.User{ID: "emp-1", CompanyID: &acme, DateOfJoining: &joined}, nil)

	repo.EXPECT().CountPresentSince(gomock.Any(), "emp-1", time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)).Return(int64(12), nil)
	repo.EXPECT().CountApprovedLeaves(gomock.Any(), "emp-1").Return(int64(3), nil)
	repo.EXPECT().CountOpenTasks(gomock.Any(), "emp-1").Return(int64(4), nil)
	repo.EXPECT().CountCompanyStaff(gomock.Any(), acme).Return(int64(17), nil)
	repo.EXPECT().RecentAttendance(gomock.Any(), "emp-1", dashboard.RecentPerKind).Return([]dashboard.Activity{
		{Kind: dashboard.ActivityAttendance, Title: "Checked in", Date: now.Add(-1 * day)},
		{Kind: dashboard.ActivityAttendance, Title: "Checked in", Date: now.Add(-5 * day)},
	}, nil)
	repo.EXPECT().RecentLeaves(gomock.Any(), "emp-1", dashboard.RecentPerKind).Return([]dashboard.Activity{
		{Kind: dashboard.ActivityLeave, Title: "Sick Leave", Date: now.Add(-2 * day)},
		{Kind: dashboard.ActivityLeave, Title: "Paid Leave", Date: now.Add(-9 * day)},
	}, nil)
	repo.EXPECT().RecentTasks(gomock.Any(), "emp-1", dashboard.RecentPerKind).Return([]dashboard.Activity{
		{Kind: dashboard.ActivityTask, Title: "Report", Date: now.Add(-3 * day), Priority: "High"},
		{Kind: dashboard.ActivityTask, Title: "Review", Date: now.Add(-4 * day)},
	}, nil)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(12), stats.AttendanceCount)
	// six complete months accrue twelve days
	assert.Equal(t, int64(9), stats.LeaveBalance)
	assert.Equal(t, int64(4), stats.PendingTasks)
	assert.Equal(t, int64(17), stats.TotalEmployees)

	require.Len(t, stats.Activity, dashboard.ActivityLimit)
	var kinds []dashboard.ActivityKind
	for _, a := range stats.Activity {
		kinds = append(kinds, a.Type)
	}
	assert.Equal(t, []dashboard.ActivityKind{
		dashboard.ActivityAttendance,
		dashboard.ActivityLeave,
		dashboard.ActivityTask,
		dashboard.ActivityTask,
		dashboard.ActivityAttendance,
	}, kinds)
}

func TestDashboardService_GetStats_NoJoiningDate(t *testing.T) {
	repo, users, svc := setup(t)
	ctx := access.WithActor(context.Background(), access.Actor{UserID: "root", Role: user.RoleSuperAdmin})

	users.EXPECT().GetByID(gomock.Any(), "root").Return(user.User{ID: "root", Role: user.RoleSuperAdmin}, nil)
	repo.EXPECT().CountPresentSince(gomock.Any(), "root", gomock.Any()).Return(int64(0), nil)
	repo.EXPECT().CountApprovedLeaves(gomock.Any(), "root").Return(int64(0), nil)
	repo.EXPECT().CountOpenTasks(gomock.Any(), "root").Return(int64(0), nil)
	repo.EXPECT().RecentAttendance(gomock.Any(), "root", gomock.Any()).Return(nil, nil)
	repo.EXPECT().RecentLeaves(gomock.Any(), "root", gomock.Any()).Return(nil, nil)
	repo.EXPECT().RecentTasks(gomock.Any(), "root", gomock.Any()).Return(nil, nil)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.LeaveBalance)
	assert.Zero(t, stats.TotalEmployees)
	assert.NotNil(t, stats.Activity)
	assert.Empty(t, stats.Activity)
}

func TestDashboardService_GetStats_QueryFails(t *testing.T) {
	repo, users, svc := setup(t)
	ctx := access.WithActor(context.Background(), access.Actor{UserID: "emp-1", Role: user.RoleEmployee, CompanyID: &acme})
	boom := errors.New("connection reset")

	users.EXPECT().GetByID(gomock.Any(), "emp-1").Return(user.User{ID: "emp-1", CompanyID: &acme}, nil)
	repo.EXPECT().CountPresentSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), boom)
	repo.EXPECT().CountApprovedLeaves(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	repo.EXPECT().CountOpenTasks(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	repo.EXPECT().CountCompanyStaff(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	repo.EXPECT().RecentAttendance(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().RecentLeaves(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().RecentTasks(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := svc.GetStats(ctx)
	assert.ErrorIs(t, err, boom)
}
