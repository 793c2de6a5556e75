package leave

import (
	"context"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
}

func NewLeaveService(leaveRepository leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{LeaveRepository: leaveRepository}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	created, err := s.LeaveRepository.Create(ctx, leave.Leave{
		UserID:    actor.UserID,
		Type:      leave.Type(req.Type),
		StartDate: req.Start,
		EndDate:   req.End,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.NewLeaveResponse(created), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context) ([]leave.LeaveResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	leaves, err := s.LeaveRepository.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return leave.NewLeaveResponses(leaves), nil
}

// ListCompany implements leave.LeaveService.
func (s *LeaveServiceImpl) ListCompany(ctx context.Context) ([]leave.LeaveResponse, error) {
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

	leaves, err := s.LeaveRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return leave.NewLeaveResponses(leaves), nil
}

// UpdateStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, id string, req leave.UpdateLeaveStatusRequest) (leave.LeaveResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	existing, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if err := access.AuthorizeTenant(actor, existing.Resource()); err != nil {
		return leave.LeaveResponse{}, err
	}

	updated, err := s.LeaveRepository.UpdateStatus(ctx, id, leave.Status(req.Status))
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.NewLeaveResponse(updated), nil
}

// Delete implements leave.LeaveService.
func (s *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := access.CanDeleteLeave(actor, existing.UserID, existing.IsPending()); err != nil {
		return err
	}

	return s.LeaveRepository.Delete(ctx, id)
}
