package superadmin

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/company"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/superadmin"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

type SuperAdminServiceImpl struct {
	superadmin.SuperAdminRepository
	company.CompanyRepository
	user.UserRepository
}

func NewSuperAdminService(repo superadmin.SuperAdminRepository, companyRepository company.CompanyRepository, userRepository user.UserRepository) superadmin.SuperAdminService {
	return &SuperAdminServiceImpl{
		SuperAdminRepository: repo,
		CompanyRepository:    companyRepository,
		UserRepository:       userRepository,
	}
}

func requireSuperAdmin(ctx context.Context) error {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return err
	}
	if !actor.IsSuperAdmin() {
		return access.ErrForbidden
	}
	return nil
}

// ListCompanies implements superadmin.SuperAdminService.
func (s *SuperAdminServiceImpl) ListCompanies(ctx context.Context) ([]superadmin.CompanySummary, error) {
	if err := requireSuperAdmin(ctx); err != nil {
		return nil, err
	}

	companies, err := s.ListCompanySummaries(ctx)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []superadmin.CompanySummary{}
	}
	return companies, nil
}

// ListAdmins implements superadmin.SuperAdminService.
func (s *SuperAdminServiceImpl) ListAdmins(ctx context.Context) ([]superadmin.AdminResponse, error) {
	if err := requireSuperAdmin(ctx); err != nil {
		return nil, err
	}

	managers, err := s.ListManagers(ctx)
	if err != nil {
		return nil, err
	}
	return superadmin.NewAdminResponses(managers), nil
}

// GetCompanyDetails implements superadmin.SuperAdminService.
func (s *SuperAdminServiceImpl) GetCompanyDetails(ctx context.Context, companyID string) (*superadmin.CompanyDetailsResponse, error) {
	if err := requireSuperAdmin(ctx); err != nil {
		return nil, err
	}

	c, err := s.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	var (
		users         []user.User
		attendance    int64
		leaves, tasks map[string]int64
		announcements int64
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		users, err = s.UserRepository.ListByCompany(gCtx, c.ID)
		return err
	})
	g.Go(func() error {
		var err error
		attendance, err = s.CountAttendanceByCompany(gCtx, c.ID)
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = s.CountLeavesByStatus(gCtx, c.ID)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.CountTasksByStatus(gCtx, c.ID)
		return err
	})
	g.Go(func() error {
		var err error
		announcements, err = s.CountActiveAnnouncements(gCtx, c.ID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("company details: %w", err)
	}

	resp := &superadmin.CompanyDetailsResponse{
		ID:          c.ID,
		CompanyName: c.Name,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		Users:       make([]user.UserResponse, 0, len(users)),
		Stats: superadmin.CompanyStats{
			TotalUsers:          len(users),
			AttendanceRecords:   attendance,
			Leaves:              leaves,
			Tasks:               tasks,
			ActiveAnnouncements: announcements,
		},
	}
	for _, u := range users {
		resp.Users = append(resp.Users, user.NewUserResponse(u))
	}
	return resp, nil
}

// GetSystemStats implements superadmin.SuperAdminService.
func (s *SuperAdminServiceImpl) GetSystemStats(ctx context.Context) (*superadmin.SystemStatsResponse, error) {
	if err := requireSuperAdmin(ctx); err != nil {
		return nil, err
	}

	var (
		overview superadmin.Overview
		recent   []user.User
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		overview, err = s.GetOverview(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.ListRecentUsers(gCtx, superadmin.RecentUsersLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("system stats: %w", err)
	}

	return &superadmin.SystemStatsResponse{
		Overview:    overview,
		RecentUsers: superadmin.NewAdminResponses(recent),
	}, nil
}

// DeleteCompany implements superadmin.SuperAdminService.
func (s *SuperAdminServiceImpl) DeleteCompany(ctx context.Context, companyID string) (*superadmin.DeleteCompanyResponse, error) {
	if err := requireSuperAdmin(ctx); err != nil {
		return nil, err
	}

	c, err := s.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	deleted, err := s.SuperAdminRepository.DeleteCompany(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	return &superadmin.DeleteCompanyResponse{
		CompanyID:    c.ID,
		CompanyName:  c.Name,
		DeletedUsers: deleted,
	}, nil
}

// UpdateUser implements superadmin.SuperAdminService.
func (s *SuperAdminServiceImpl) UpdateUser(ctx context.Context, userID string, req superadmin.UpdateAnyUserRequest) (superadmin.AdminResponse, error) {
	if err := requireSuperAdmin(ctx); err != nil {
		return superadmin.AdminResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return superadmin.AdminResponse{}, err
	}

	target, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return superadmin.AdminResponse{}, err
	}

	if req.CompanyID != nil && *req.CompanyID != "" {
		if _, err := s.CompanyRepository.GetByID(ctx, *req.CompanyID); err != nil {
			return superadmin.AdminResponse{}, err
		}
	}

	req.Apply(&target)
	if target.Role != user.RoleSuperAdmin && target.CompanyID == nil {
		return superadmin.AdminResponse{}, user.ErrCompanyRequired
	}

	updated, err := s.UserRepository.Update(ctx, target)
	if err != nil {
		return superadmin.AdminResponse{}, err
	}
	return superadmin.NewAdminResponse(updated), nil
}
