package announcement

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/announcement"
	announcementmock "github.com/dayflow-hr/hrms-backend-go/internal/domain/announcement/mock"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	acme   = "company-acme"
	globex = "company-globex"
	now    = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
)

func setup(t *testing.T) (*announcementmock.MockAnnouncementRepository, *AnnouncementServiceImpl) {
	ctrl := gomock.NewController(t)
	repo := announcementmock.NewMockAnnouncementRepository(ctrl)
	svc := NewAnnouncementService(repo).(*AnnouncementServiceImpl)
	svc.now = func() time.Time { return now }
	return repo, svc
}

func actorCtx(id string, role user.Role, companyID string) context.Context {
	return access.WithActor(context.Background(), access.Actor{UserID: id, Role: role, CompanyID: &companyID})
}

func TestAnnouncementService_Create(t *testing.T) {
	t.Run("defaults to info", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a announcement.Announcement) (announcement.Announcement, error) {
				assert.Equal(t, announcement.TypeInfo, a.Type)
				assert.Equal(t, acme, a.CompanyID)
				assert.Equal(t, "hr-1", a.CreatedBy)
				assert.True(t, a.IsActive)
				a.ID = "ann-1"
				a.AuthorName = "Helen"
				return a, nil
			})

		resp, err := svc.Create(actorCtx("hr-1", user.RoleHR, acme), announcement.CreateAnnouncementRequest{
			Title:   "Office closed",
			Message: "Public holiday on Friday",
		})
		require.NoError(t, err)
		assert.Equal(t, "Helen", resp.CreatedBy.Name)
		assert.Nil(t, resp.ExpiresAt)
	})

	t.Run("employee is forbidden", func(t *testing.T) {
		_, svc := setup(t)
		_, err := svc.Create(actorCtx("emp-1", user.RoleEmployee, acme), announcement.CreateAnnouncementRequest{Title: "x", Message: "y"})
		assert.ErrorIs(t, err, access.ErrForbidden)
	})

	t.Run("missing message", func(t *testing.T) {
		_, svc := setup(t)
		_, err := svc.Create(actorCtx("hr-1", user.RoleHR, acme), announcement.CreateAnnouncementRequest{Title: "x"})
		assert.Error(t, err)
	})
}

func TestAnnouncementService_List(t *testing.T) {
	repo, svc := setup(t)
	repo.EXPECT().ListVisible(gomock.Any(), acme, now).Return([]announcement.Announcement{
		{ID: "ann-2", CompanyID: acme, Title: "Newer", IsActive: true},
		{ID: "ann-1", CompanyID: acme, Title: "Older", IsActive: true},
	}, nil)

	resp, err := svc.List(actorCtx("emp-1", user.RoleEmployee, acme))
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "ann-2", resp[0].ID)
}

func TestAnnouncementService_UpdateAndDelete(t *testing.T) {
	existing := announcement.Announcement{ID: "ann-1", CompanyID: acme, Title: "Old", Message: "m", Type: announcement.TypeInfo, IsActive: true}

	t.Run("manager deactivates", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), "ann-1").Return(existing, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a announcement.Announcement) (announcement.Announcement, error) { return a, nil })

		inactive := false
		resp, err := svc.Update(actorCtx("admin-1", user.RoleAdmin, acme), "ann-1", announcement.UpdateAnnouncementRequest{IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, resp.IsActive)
	})

	t.Run("other company cannot delete", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), "ann-1").Return(existing, nil)

		assert.ErrorIs(t, svc.Delete(actorCtx("admin-2", user.RoleAdmin, globex), "ann-1"), access.ErrForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(announcement.Announcement{}, announcement.ErrAnnouncementNotFound)

		assert.ErrorIs(t, svc.Delete(actorCtx("admin-1", user.RoleAdmin, acme), "ghost"), announcement.ErrAnnouncementNotFound)
	})
}
