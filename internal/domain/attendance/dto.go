package attendance

import (
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	User      *user.UserSummary `json:"user,omitempty"`
	Date      string            `json:"date"`
	CheckIn   string            `json:"check_in"`
	CheckOut  *string           `json:"check_out"`
	Status    Status            `json:"status"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Date:      a.Date.Format("2006-01-02"),
		CheckIn:   a.CheckIn.Format(time.RFC3339),
		Status:    a.Status,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
	if a.CheckOut != nil {
		out := a.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &out
	}
	if a.UserName != "" {
		resp.User = &user.UserSummary{ID: a.UserID, Name: a.UserName, Email: a.UserEmail}
	}
	return resp
}

func NewAttendanceResponses(records []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, NewAttendanceResponse(a))
	}
	return out
}

// UpdateAttendanceRequest corrects a record. Omitted fields are kept.
type UpdateAttendanceRequest struct {
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Status   *string `json:"status,omitempty"`

	CheckInAt  *time.Time `json:"-"`
	CheckOutAt *time.Time `json:"-"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CheckIn != nil && *r.CheckIn != "" {
		if t, ok := validator.IsValidDateTime(*r.CheckIn); ok {
			r.CheckInAt = &t
		} else {
			errs.Add("check_in", "check_in must be an ISO 8601 timestamp")
		}
	}
	if r.CheckOut != nil && *r.CheckOut != "" {
		if t, ok := validator.IsValidDateTime(*r.CheckOut); ok {
			r.CheckOutAt = &t
		} else {
			errs.Add("check_out", "check_out must be an ISO 8601 timestamp")
		}
	}
	if r.Status != nil && *r.Status != "" && !validator.IsInSlice(*r.Status, statusNames()) {
		errs.Add("status", "status must be one of Present, Absent, Half-day, Leave")
	}
	if r.CheckInAt != nil && r.CheckOutAt != nil && r.CheckOutAt.Before(*r.CheckInAt) {
		errs.Add("check_out", "check_out must not be before check_in")
	}

	return errs.OrNil()
}

// Apply copies the provided fields onto a.
func (r UpdateAttendanceRequest) Apply(a *Attendance) {
	if r.CheckInAt != nil {
		a.CheckIn = *r.CheckInAt
	}
	if r.CheckOutAt != nil {
		a.CheckOut = r.CheckOutAt
	}
	if r.Status != nil && *r.Status != "" {
		a.Status = Status(*r.Status)
	}
}

func statusNames() []string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}
	return names
}
