package attendance

import (
	"context"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	now func() time.Time
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		now:                  time.Now,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	open, err := s.AttendanceRepository.HasOpenSession(ctx, actor.UserID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if open {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	now := s.now()
	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		UserID:  actor.UserID,
		Date:    time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		CheckIn: now,
		Status:  attendance.StatusPresent,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	closed, err := s.AttendanceRepository.CloseOpenSession(ctx, actor.UserID, s.now())
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(closed), nil
}

// ListMine implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMine(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return attendance.NewAttendanceResponses(records), nil
}

// ListCompany implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListCompany(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	companyID, err := access.RequireTenant(actor)
	if err != nil {
		return nil, err
	}
	if !actor.Role.IsTenantManager() {
		return nil, access.ErrForbidden
	}

	records, err := s.AttendanceRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return attendance.NewAttendanceResponses(records), nil
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if err := access.AuthorizeTenant(actor, record.Resource()); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	req.Apply(&record)
	updated, err := s.AttendanceRepository.Update(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.NewAttendanceResponse(updated), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := access.AuthorizeTenant(actor, record.Resource()); err != nil {
		return err
	}

	return s.AttendanceRepository.Delete(ctx, id)
}
