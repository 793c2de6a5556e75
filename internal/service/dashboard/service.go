package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	user.UserRepository
	now func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository, userRepository user.UserRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		UserRepository:      userRepository,
		now:                 time.Now,
	}
}

// GetStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (*dashboard.StatsResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.UserRepository.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	now := s.now()
	var (
		present, approved, openTasks, staff int64
		attendance, leaves, tasks           []dashboard.Activity
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Present days this month
	g.Go(func() error {
		n, err := s.CountPresentSince(gCtx, current.ID, dashboard.MonthStart(now))
		present = n
		return err
	})

	// 2. Approved leaves, for the balance
	g.Go(func() error {
		n, err := s.CountApprovedLeaves(gCtx, current.ID)
		approved = n
		return err
	})

	// 3. Pending and in-progress tasks
	g.Go(func() error {
		n, err := s.CountOpenTasks(gCtx, current.ID)
		openTasks = n
		return err
	})

	// 4. Company headcount
	if current.CompanyID != nil {
		companyID := *current.CompanyID
		g.Go(func() error {
			n, err := s.CountCompanyStaff(gCtx, companyID)
			staff = n
			return err
		})
	}

	// 5. Recent activity, per kind
	g.Go(func() error {
		var err error
		attendance, err = s.RecentAttendance(gCtx, current.ID, dashboard.RecentPerKind)
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = s.RecentLeaves(gCtx, current.ID, dashboard.RecentPerKind)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.RecentTasks(gCtx, current.ID, dashboard.RecentPerKind)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	return &dashboard.StatsResponse{
		AttendanceCount: present,
		LeaveBalance:    dashboard.LeaveBalance(current.DateOfJoining, now, approved),
		PendingTasks:    openTasks,
		TotalEmployees:  staff,
		Activity:        dashboard.NewActivityItems(dashboard.MergeActivity(dashboard.ActivityLimit, attendance, leaves, tasks)),
	}, nil
}
