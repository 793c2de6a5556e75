package fixtures

import (
	"context"
	"errors"
	"testing"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/announcement"
	announcementmock "github.com/dayflow-hr/hrms-backend-go/internal/domain/announcement/mock"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/auth"
	authmock "github.com/dayflow-hr/hrms-backend-go/internal/domain/auth/mock"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/company"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	usermock "github.com/dayflow-hr/hrms-backend-go/internal/domain/user/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedSuperAdmin(t *testing.T) {
	t.Run("creates once", func(t *testing.T) {
		repo := usermock.NewMockUserRepository(gomock.NewController(t))
		repo.EXPECT().ExistsByRole(gomock.Any(), user.RoleSuperAdmin).Return(false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u user.User) (user.User, error) {
				assert.Equal(t, "root@dayflow.com", u.Email)
				assert.Equal(t, SuperAdminEmployeeCode, u.EmployeeCode)
				assert.Equal(t, user.RoleSuperAdmin, u.Role)
				assert.Nil(t, u.CompanyID)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret!")))
				u.ID = "root"
				return u, nil
			})

		created, err := SeedSuperAdmin(context.Background(), repo, " Root@Dayflow.com ", "s3cret!")
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("already present", func(t *testing.T) {
		repo := usermock.NewMockUserRepository(gomock.NewController(t))
		repo.EXPECT().ExistsByRole(gomock.Any(), user.RoleSuperAdmin).Return(true, nil)

		created, err := SeedSuperAdmin(context.Background(), repo, "root@dayflow.com", "")
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("password required", func(t *testing.T) {
		repo := usermock.NewMockUserRepository(gomock.NewController(t))
		repo.EXPECT().ExistsByRole(gomock.Any(), user.RoleSuperAdmin).Return(false, nil)

		_, err := SeedSuperAdmin(context.Background(), repo, "root@dayflow.com", "")
		assert.ErrorIs(t, err, ErrSuperAdminPasswordRequired)
	})
}

func TestDemoData_IsValid(t *testing.T) {
	admin := DemoAdmin()
	require.NoError(t, admin.Validate())

	for _, m := range DemoMembers() {
		req := m.Request
		assert.NoError(t, req.Validate(), req.Email)
	}
	for _, a := range DemoAnnouncements() {
		req := a
		assert.NoError(t, req.Validate(), req.Title)
	}
}

func TestSeedDemo(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := authmock.NewMockAuthService(ctrl)
	userSvc := usermock.NewMockUserService(ctrl)
	announcementSvc := announcementmock.NewMockAnnouncementService(ctrl)
	companyID := "0190a8d2-7c4e-7b1a-9f3e-2d5c6b7a8e90"

	authSvc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(auth.AuthResponse{
		User: user.UserResponse{ID: "admin-1", Name: "Alice Morgan", Email: "admin@acme.example", Role: user.RoleAdmin, CompanyID: &companyID, EmployeeCode: "ACALMO20260001"},
	}, nil)

	serial := 0
	userSvc.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).Times(len(DemoMembers())).
		DoAndReturn(func(ctx context.Context, req user.CreateEmployeeRequest) (user.CreateEmployeeResponse, error) {
			actor, err := access.ActorFromContext(ctx)
			require.NoError(t, err)
			assert.Equal(t, "admin-1", actor.UserID)
			serial++
			return user.CreateEmployeeResponse{
				User:              user.UserResponse{ID: req.Email, Name: req.Name, Email: req.Email, Role: user.RoleEmployee},
				TemporaryPassword: "tmp00000",
			}, nil
		})
	userSvc.EXPECT().Update(gomock.Any(), "hr@acme.example", gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
			require.NotNil(t, req.Role)
			assert.Equal(t, "HR", *req.Role)
			return user.UserResponse{ID: id, Role: user.RoleHR}, nil
		})
	announcementSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Times(len(DemoAnnouncements())).
		Return(announcement.AnnouncementResponse{}, nil)

	creds, err := SeedDemo(context.Background(), DemoServices{Auth: authSvc, User: userSvc, Announcement: announcementSvc})
	require.NoError(t, err)
	require.Len(t, creds, 1+len(DemoMembers()))
	assert.Equal(t, "demo-admin", creds[0].Password)
	assert.Equal(t, user.RoleHR, creds[1].Role)
	assert.Equal(t, len(DemoMembers()), serial)
}

func TestSeedDemo_AlreadySeeded(t *testing.T) {
	authSvc := authmock.NewMockAuthService(gomock.NewController(t))
	authSvc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(auth.AuthResponse{}, company.ErrCompanyNameExists)

	creds, err := SeedDemo(context.Background(), DemoServices{Auth: authSvc})
	require.NoError(t, err)
	assert.Empty(t, creds)
}

func TestSeedDemo_RegisterFails(t *testing.T) {
	authSvc := authmock.NewMockAuthService(gomock.NewController(t))
	authSvc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(auth.AuthResponse{}, errors.New("db down"))

	_, err := SeedDemo(context.Background(), DemoServices{Auth: authSvc})
	assert.Error(t, err)
}
