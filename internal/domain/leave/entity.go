package leave

import (
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
)

type Type string

const (
	TypePaid   Type = "Paid"
	TypeSick   Type = "Sick"
	TypeUnpaid Type = "Unpaid"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

type Leave struct {
	ID        string
	UserID    string
	Type      Type
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	// Join
	CompanyID *string
	UserName  string
	UserEmail string
}

// IsPending reports whether the request still awaits a decision.
func (l Leave) IsPending() bool {
	return l.Status == StatusPending
}

// Resource exposes the record's tenancy to the access guard.
func (l Leave) Resource() *access.Resource {
	return &access.Resource{CompanyID: l.CompanyID, OwnerID: l.UserID}
}
