package announcement

import (
	"strings"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
)

var typeNames = []string{string(TypeInfo), string(TypeWarning), string(TypeSuccess), string(TypeError)}

type AnnouncementResponse struct {
	ID        string           `json:"id"`
	CompanyID string           `json:"company_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      Type             `json:"type"`
	CreatedBy user.UserSummary `json:"created_by"`
	ExpiresAt *string          `json:"expires_at"`
	IsActive  bool             `json:"is_active"`
	CreatedAt string           `json:"created_at"`
}

func NewAnnouncementResponse(a Announcement) AnnouncementResponse {
	resp := AnnouncementResponse{
		ID:        a.ID,
		CompanyID: a.CompanyID,
		Title:     a.Title,
		Message:   a.Message,
		Type:      a.Type,
		CreatedBy: user.UserSummary{ID: a.CreatedBy, Name: a.AuthorName},
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
	if a.ExpiresAt != nil {
		exp := a.ExpiresAt.Format(time.RFC3339)
		resp.ExpiresAt = &exp
	}
	return resp
}

type CreateAnnouncementRequest struct {
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	Type      string  `json:"type"`
	ExpiresAt *string `json:"expires_at,omitempty"`

	Expiry *time.Time `json:"-"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Title = strings.TrimSpace(r.Title)
	r.Message = strings.TrimSpace(r.Message)

	if validator.IsEmpty(r.Title) {
		errs.Add("title", "title is required")
	}
	if validator.IsEmpty(r.Message) {
		errs.Add("message", "message is required")
	}
	if r.Type == "" {
		r.Type = string(TypeInfo)
	} else if !validator.IsInSlice(r.Type, typeNames) {
		errs.Add("type", "type must be one of info, warning, success, error")
	}
	if r.ExpiresAt != nil && *r.ExpiresAt != "" {
		if t, ok := validator.ParseDateOrDateTime(*r.ExpiresAt); ok {
			r.Expiry = &t
		} else {
			errs.Add("expires_at", "expires_at must be a date or ISO 8601 timestamp")
		}
	}

	return errs.OrNil()
}

type UpdateAnnouncementRequest struct {
	Title    *string `json:"title,omitempty"`
	Message  *string `json:"message,omitempty"`
	Type     *string `json:"type,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != nil && *r.Type != "" && !validator.IsInSlice(*r.Type, typeNames) {
		errs.Add("type", "type must be one of info, warning, success, error")
	}

	return errs.OrNil()
}

// Apply copies the provided fields onto a.
func (r UpdateAnnouncementRequest) Apply(a *Announcement) {
	if r.Title != nil && strings.TrimSpace(*r.Title) != "" {
		a.Title = strings.TrimSpace(*r.Title)
	}
	if r.Message != nil && strings.TrimSpace(*r.Message) != "" {
		a.Message = strings.TrimSpace(*r.Message)
	}
	if r.Type != nil && *r.Type != "" {
		a.Type = Type(*r.Type)
	}
	if r.IsActive != nil {
		a.IsActive = *r.IsActive
	}
}
