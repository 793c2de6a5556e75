package announcement

import (
	"context"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/announcement"
)

type AnnouncementServiceImpl struct {
	announcement.AnnouncementRepository
	now func() time.Time
}

func NewAnnouncementService(announcementRepository announcement.AnnouncementRepository) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{
		AnnouncementRepository: announcementRepository,
		now:                    time.Now,
	}
}

// Create implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}
	companyID, err := access.RequireTenant(actor)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}
	if !actor.Role.IsTenantManager() {
		return announcement.AnnouncementResponse{}, access.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	created, err := s.AnnouncementRepository.Create(ctx, announcement.Announcement{
		CompanyID: companyID,
		Title:     req.Title,
		Message:   req.Message,
		Type:      announcement.Type(req.Type),
		CreatedBy: actor.UserID,
		ExpiresAt: req.Expiry,
		IsActive:  true,
	})
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}
	return announcement.NewAnnouncementResponse(created), nil
}

// List implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) List(ctx context.Context) ([]announcement.AnnouncementResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	companyID, err := access.RequireTenant(actor)
	if err != nil {
		return nil, err
	}

	items, err := s.AnnouncementRepository.ListVisible(ctx, companyID, s.now())
	if err != nil {
		return nil, err
	}

	resp := make([]announcement.AnnouncementResponse, 0, len(items))
	for _, a := range items {
		resp = append(resp, announcement.NewAnnouncementResponse(a))
	}
	return resp, nil
}

// Update implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Update(ctx context.Context, id string, req announcement.UpdateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	existing, err := s.AnnouncementRepository.GetByID(ctx, id)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}
	if err := access.AuthorizeTenant(actor, existing.Resource()); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	req.Apply(&existing)
	updated, err := s.AnnouncementRepository.Update(ctx, existing)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}
	return announcement.NewAnnouncementResponse(updated), nil
}

// Delete implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.AnnouncementRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := access.AuthorizeTenant(actor, existing.Resource()); err != nil {
		return err
	}

	return s.AnnouncementRepository.Delete(ctx, id)
}
