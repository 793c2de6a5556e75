package task

import "context"

//go:generate mockgen -destination=mock/service_mock.go -package=mock . TaskService

type TaskService interface {
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	List(ctx context.Context) ([]TaskResponse, error)
	ListMine(ctx context.Context) ([]TaskResponse, error)
	GetByID(ctx context.Context, id string) (TaskResponse, error)
	Update(ctx context.Context, id string, req UpdateTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, id string, req AddCommentRequest) (TaskResponse, error)
}
