package attendance

import (
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "Half-day"
	StatusLeave   Status = "Leave"
)

var Statuses = []Status{StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave}

// Attendance is one check-in. A nil CheckOut marks an open session.
type Attendance struct {
	ID        string
	UserID    string
	Date      time.Time
	CheckIn   time.Time
	CheckOut  *time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	// Join
	CompanyID *string
	UserName  string
	UserEmail string
}

// IsOpen reports whether the session has not been checked out.
func (a Attendance) IsOpen() bool {
	return a.CheckOut == nil
}

// Resource exposes the record's tenancy to the access guard.
func (a Attendance) Resource() *access.Resource {
	return &access.Resource{CompanyID: a.CompanyID, OwnerID: a.UserID}
}
