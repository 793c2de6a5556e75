package attendance

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/repository_mock.go -package=mock . AttendanceRepository

type AttendanceRepository interface {
	// Create inserts a session and returns ErrAlreadyCheckedIn when the user
	// already has an open one.
	Create(ctx context.Context, a Attendance) (Attendance, error)
	// HasOpenSession reports whether userID has a session without check-out.
	HasOpenSession(ctx context.Context, userID string) (bool, error)
	// CloseOpenSession stamps the check-out of the latest open session in a
	// single conditional update, or returns ErrNotCheckedIn.
	CloseOpenSession(ctx context.Context, userID string, at time.Time) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)
	ListByCompany(ctx context.Context, companyID string) ([]Attendance, error)
	Update(ctx context.Context, a Attendance) (Attendance, error)
	Delete(ctx context.Context, id string) error
}
