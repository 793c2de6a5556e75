package task

import "context"

// Filter narrows a company task listing.
type Filter struct {
	CompanyID  string
	AssignedTo *string
}

//go:generate mockgen -destination=mock/repository_mock.go -package=mock . TaskRepository

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	// GetByID loads the task with its assignee, assigner and comments.
	GetByID(ctx context.Context, id string) (Task, error)
	List(ctx context.Context, filter Filter) ([]Task, error)
	// ListAssigned returns the user's tasks ordered by due date.
	ListAssigned(ctx context.Context, companyID, userID string) ([]Task, error)
	Update(ctx context.Context, t Task) error
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, c Comment) (Comment, error)
}
