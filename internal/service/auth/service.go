package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/company"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/hrms-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	postgresql.Transactor
	user.UserRepository
	company.CompanyRepository
	jwt.Service
	now func() time.Time
}

func NewAuthService(transactor postgresql.Transactor, userRepository user.UserRepository, companyRepository company.CompanyRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		Transactor:        transactor,
		UserRepository:    userRepository,
		CompanyRepository: companyRepository,
		Service:           jwtService,
		now:               time.Now,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now()
	var admin user.User
	err = a.Transactor.InTx(ctx, func(txCtx context.Context) error {
		newCompany, err := a.CompanyRepository.Create(txCtx, company.Company{Name: req.CompanyName})
		if err != nil {
			return err
		}

		joined := now
		admin, err = user.CreateWithEmployeeCode(txCtx, a.UserRepository, user.User{
			CompanyID:     &newCompany.ID,
			Name:          req.Name,
			Email:         req.Email,
			PasswordHash:  hashed,
			Role:          user.RoleAdmin,
			Phone:         req.Phone,
			DateOfJoining: &joined,
		}, newCompany.Name, now)
		return err
	})
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return a.issue(admin)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmailOrEmployeeCode(ctx, req.Identifier())
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	return a.issue(userData)
}

func (a *AuthServiceImpl) issue(u user.User) (auth.AuthResponse, error) {
	token, expiresAt, err := a.Service.GenerateAccessToken(u)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return auth.AuthResponse{
		User:      user.NewUserResponse(u),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
