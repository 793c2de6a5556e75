package leave

import (
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
)

type LeaveResponse struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	User      *user.UserSummary `json:"user,omitempty"`
	Type      Type              `json:"type"`
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Reason    string            `json:"reason"`
	Status    Status            `json:"status"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
}

func NewLeaveResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		Type:      l.Type,
		StartDate: l.StartDate.Format("2006-01-02"),
		EndDate:   l.EndDate.Format("2006-01-02"),
		Reason:    l.Reason,
		Status:    l.Status,
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
		UpdatedAt: l.UpdatedAt.Format(time.RFC3339),
	}
	if l.UserName != "" {
		resp.User = &user.UserSummary{ID: l.UserID, Name: l.UserName, Email: l.UserEmail}
	}
	return resp
}

func NewLeaveResponses(leaves []Leave) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, NewLeaveResponse(l))
	}
	return out
}

type ApplyLeaveRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`

	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Type) {
		errs.Add("type", "type is required")
	} else if !validator.IsInSlice(r.Type, []string{string(TypePaid), string(TypeSick), string(TypeUnpaid)}) {
		errs.Add("type", "type must be one of Paid, Sick, Unpaid")
	}

	var startOK, endOK bool
	if validator.IsEmpty(r.StartDate) {
		errs.Add("start_date", "start_date is required")
	} else if r.Start, startOK = validator.ParseDateOrDateTime(r.StartDate); !startOK {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	if validator.IsEmpty(r.EndDate) {
		errs.Add("end_date", "end_date is required")
	} else if r.End, endOK = validator.ParseDateOrDateTime(r.EndDate); !endOK {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}
	if startOK && endOK && r.End.Before(r.Start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	return errs.OrNil()
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}) {
		errs.Add("status", "status must be one of Pending, Approved, Rejected")
	}

	return errs.OrNil()
}
