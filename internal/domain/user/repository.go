package user

import "context"

//go:generate mockgen -destination=mock/repository_mock.go -package=mock . UserRepository

// UserRepository persists users. Lookups return ErrUserNotFound when absent,
// Create and Update return ErrUserEmailExists or ErrEmployeeCodeTaken on
// unique violations.
type UserRepository interface {
	EmployeeCodeFinder

	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmailOrEmployeeCode(ctx context.Context, identifier string) (User, error)
	ListByCompany(ctx context.Context, companyID string) ([]User, error)
	Update(ctx context.Context, u User) (User, error)
	Delete(ctx context.Context, id string) error
	ExistsByRole(ctx context.Context, role Role) (bool, error)
}
