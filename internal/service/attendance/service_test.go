package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/attendance"
	attendancemock "github.com/dayflow-hr/hrms-backend-go/internal/domain/attendance/mock"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	acme   = "company-acme"
	globex = "company-globex"
	now    = time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
)

func setup(t *testing.T) (*attendancemock.MockAttendanceRepository, *AttendanceServiceImpl) {
	ctrl := gomock.NewController(t)
	repo := attendancemock.NewMockAttendanceRepository(ctrl)
	svc := NewAttendanceService(repo).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return now }
	return repo, svc
}

func actorCtx(id string, role user.Role, companyID string) context.Context {
	return access.WithActor(context.Background(), access.Actor{UserID: id, Role: role, CompanyID: &companyID})
}

func TestAttendanceService_CheckIn(t *testing.T) {
	ctx := actorCtx("emp-1", user.RoleEmployee, acme)

	t.Run("opens a session for today", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().HasOpenSession(gomock.Any(), "emp-1").Return(false, nil)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
				assert.Equal(t, time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), a.Date)
				assert.Equal(t, now, a.CheckIn)
				assert.Equal(t, attendance.StatusPresent, a.Status)
				a.ID = "att-1"
				return a, nil
			})

		resp, err := svc.CheckIn(ctx)
		require.NoError(t, err)
		assert.Equal(t, "att-1", resp.ID)
		assert.Equal(t, "2026-04-02", resp.Date)
		assert.Nil(t, resp.CheckOut)
	})

	t.Run("already checked in", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().HasOpenSession(gomock.Any(), "emp-1").Return(true, nil)

		_, err := svc.CheckIn(ctx)
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	})

	t.Run("lost race to a concurrent check-in", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().HasOpenSession(gomock.Any(), "emp-1").Return(false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(attendance.Attendance{}, attendance.ErrAlreadyCheckedIn)

		_, err := svc.CheckIn(ctx)
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		_, svc := setup(t)
		_, err := svc.CheckIn(context.Background())
		assert.ErrorIs(t, err, access.ErrUnauthenticated)
	})
}

func TestAttendanceService_CheckOut(t *testing.T) {
	ctx := actorCtx("emp-1", user.RoleEmployee, acme)

	t.Run("closes the open session", func(t *testing.T) {
		repo, svc := setup(t)
		out := now
		repo.EXPECT().
			CloseOpenSession(gomock.Any(), "emp-1", now).
			Return(attendance.Attendance{ID: "att-1", UserID: "emp-1", CheckIn: now.Add(-8 * time.Hour), CheckOut: &out}, nil)

		resp, err := svc.CheckOut(ctx)
		require.NoError(t, err)
		require.NotNil(t, resp.CheckOut)
		assert.Equal(t, now.Format(time.RFC3339), *resp.CheckOut)
	})

	t.Run("not checked in", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().CloseOpenSession(gomock.Any(), "emp-1", now).Return(attendance.Attendance{}, attendance.ErrNotCheckedIn)

		_, err := svc.CheckOut(ctx)
		assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
	})
}

func TestAttendanceService_ListCompany(t *testing.T) {
	t.Run("manager sees the company", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().ListByCompany(gomock.Any(), acme).Return([]attendance.Attendance{
			{ID: "a1", UserID: "emp-1", UserName: "Bob"},
			{ID: "a2", UserID: "emp-2", UserName: "Eve"},
		}, nil)

		resp, err := svc.ListCompany(actorCtx("hr-1", user.RoleHR, acme))
		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "Bob", resp[0].User.Name)
	})

	t.Run("employee is forbidden", func(t *testing.T) {
		_, svc := setup(t)
		_, err := svc.ListCompany(actorCtx("emp-1", user.RoleEmployee, acme))
		assert.ErrorIs(t, err, access.ErrForbidden)
	})
}

func TestAttendanceService_Update(t *testing.T) {
	record := attendance.Attendance{ID: "att-1", UserID: "emp-1", CompanyID: &acme, CheckIn: now, Status: attendance.StatusPresent}

	t.Run("manager corrects the status", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), "att-1").Return(record, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) { return a, nil })

		status := "Half-day"
		resp, err := svc.Update(actorCtx("admin-1", user.RoleAdmin, acme), "att-1", attendance.UpdateAttendanceRequest{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusHalfDay, resp.Status)
	})

	t.Run("other tenant", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), "att-1").Return(record, nil)

		_, err := svc.Update(actorCtx("admin-2", user.RoleAdmin, globex), "att-1", attendance.UpdateAttendanceRequest{})
		assert.ErrorIs(t, err, access.ErrForbidden)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, svc := setup(t)
		status := "Vacation"
		_, err := svc.Update(actorCtx("admin-1", user.RoleAdmin, acme), "att-1", attendance.UpdateAttendanceRequest{Status: &status})
		assert.Error(t, err)
	})
}

func TestAttendanceService_Delete(t *testing.T) {
	record := attendance.Attendance{ID: "att-1", UserID: "emp-1", CompanyID: &acme}

	t.Run("owner cannot delete", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), "att-1").Return(record, nil)

		assert.ErrorIs(t, svc.Delete(actorCtx("emp-1", user.RoleEmployee, acme), "att-1"), access.ErrForbidden)
	})

	t.Run("superadmin", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), "att-1").Return(record, nil)
		repo.EXPECT().Delete(gomock.Any(), "att-1").Return(nil)

		ctx := access.WithActor(context.Background(), access.Actor{UserID: "root", Role: user.RoleSuperAdmin})
		assert.NoError(t, svc.Delete(ctx, "att-1"))
	})
}
