package announcement

import (
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
)

type Type string

const (
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
	TypeSuccess Type = "success"
	TypeError   Type = "error"
)

type Announcement struct {
	ID        string
	CompanyID string
	Title     string
	Message   string
	Type      Type
	CreatedBy string
	ExpiresAt *time.Time
	IsActive  bool
	CreatedAt time.Time

	// Join
	AuthorName string
}

// IsVisible reports whether the announcement is shown at now.
func (a Announcement) IsVisible(now time.Time) bool {
	return a.IsActive && (a.ExpiresAt == nil || a.ExpiresAt.After(now))
}

// Resource exposes the announcement's tenancy to the access guard.
func (a Announcement) Resource() *access.Resource {
	companyID := a.CompanyID
	return &access.Resource{CompanyID: &companyID, OwnerID: a.CreatedBy}
}
