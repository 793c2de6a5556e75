package user

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/jwt"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const (
	tempPasswordLength   = 8
	tempPasswordAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

type UserServiceImpl struct {
	user.UserRepository
	jwt.Service
	now func() time.Time
}

func NewUserService(userRepository user.UserRepository, jwtService jwt.Service) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		now:            time.Now,
	}
}

// CreateEmployee implements user.UserService.
func (s *UserServiceImpl) CreateEmployee(ctx context.Context, req user.CreateEmployeeRequest) (user.CreateEmployeeResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return user.CreateEmployeeResponse{}, err
	}
	companyID, err := access.RequireTenant(actor)
	if err != nil {
		return user.CreateEmployeeResponse{}, err
	}
	if !actor.Role.IsTenantManager() {
		return user.CreateEmployeeResponse{}, access.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return user.CreateEmployeeResponse{}, err
	}

	creator, err := s.UserRepository.GetByID(ctx, actor.UserID)
	if err != nil {
		return user.CreateEmployeeResponse{}, fmt.Errorf("load creator: %w", err)
	}
	companyName := ""
	if creator.CompanyName != nil {
		companyName = *creator.CompanyName
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return user.CreateEmployeeResponse{}, fmt.Errorf("generate temporary password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return user.CreateEmployeeResponse{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	joined := now
	if req.JoiningDate != nil {
		joined = *req.JoiningDate
	}
	monthly := decimal.Zero
	if req.Salary != nil {
		monthly = *req.Salary
	}

	newUser := user.User{
		CompanyID:     &companyID,
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  string(hash),
		Role:          user.RoleEmployee,
		Phone:         req.Phone,
		Department:    req.Department,
		Designation:   req.Designation,
		DateOfJoining: &joined,
		Salary:        user.MonthlySalary(monthly),
	}

	created, err := user.CreateWithEmployeeCode(ctx, s.UserRepository, newUser, companyName, now)
	if err != nil {
		return user.CreateEmployeeResponse{}, err
	}

	return user.CreateEmployeeResponse{
		User:              user.NewUserResponse(created),
		TemporaryPassword: tempPassword,
	}, nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	companyID, err := access.RequireTenant(actor)
	if err != nil {
		return nil, err
	}

	users, err := s.UserRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, user.NewUserResponse(u))
	}
	return resp, nil
}

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context) (user.UserResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, actor.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(u), nil
}

// UpdateProfile implements user.UserService.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.ProfileResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return user.ProfileResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return user.ProfileResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, actor.UserID)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	req.ApplyProfile(&u)
	if err := s.applyPassword(&u, req.Password); err != nil {
		return user.ProfileResponse{}, err
	}

	updated, err := s.UserRepository.Update(ctx, u)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	token, _, err := s.Service.GenerateAccessToken(updated)
	if err != nil {
		return user.ProfileResponse{}, fmt.Errorf("generate token: %w", err)
	}

	return user.ProfileResponse{User: user.NewUserResponse(updated), Token: token}, nil
}

// GetByID implements user.UserService.
func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	target, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	if err := access.Authorize(actor, &access.Resource{CompanyID: target.CompanyID, OwnerID: target.ID}); err != nil {
		return user.UserResponse{}, err
	}

	return user.NewUserResponse(target), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	target, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	if err := access.AuthorizeTenant(actor, &access.Resource{CompanyID: target.CompanyID, OwnerID: target.ID}); err != nil {
		return user.UserResponse{}, err
	}

	if req.ParsedRole != nil && *req.ParsedRole != target.Role {
		if err := access.CanChangeRole(actor, target, *req.ParsedRole); err != nil {
			return user.UserResponse{}, err
		}
		if *req.ParsedRole != user.RoleSuperAdmin && target.CompanyID == nil {
			return user.UserResponse{}, user.ErrCompanyRequired
		}
		target.Role = *req.ParsedRole
	}

	req.Apply(&target)

	updated, err := s.UserRepository.Update(ctx, target)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(updated), nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	target, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := access.CanDeleteUser(actor, &target); err != nil {
		return err
	}

	return s.UserRepository.Delete(ctx, id)
}

func (s *UserServiceImpl) applyPassword(u *user.User, password *string) error {
	if password == nil || *password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// generateTempPassword returns a random lower-case alphanumeric password.
func generateTempPassword() (string, error) {
	base := big.NewInt(int64(len(tempPasswordAlphabet)))
	out := make([]byte, tempPasswordLength)
	for i := range out {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			return "", err
		}
		out[i] = tempPasswordAlphabet[n.Int64()]
	}
	return string(out), nil
}

