package user

import "context"

//go:generate mockgen -destination=mock/service_mock.go -package=mock . UserService

// UserService acts on behalf of the actor stored in ctx.
type UserService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
	GetProfile(ctx context.Context) (UserResponse, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (ProfileResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
}
