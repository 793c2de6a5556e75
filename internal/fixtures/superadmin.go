// Package fixtures seeds the platform operator and an optional demo tenant.
package fixtures

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

// SuperAdminEmployeeCode is fixed; generated codes always end in four digits
// after a year so they can never collide with it.
const SuperAdminEmployeeCode = "SUPERADMIN001"

var ErrSuperAdminPasswordRequired = errors.New("SUPERADMIN_PASSWORD is required to create the SuperAdmin")

// SeedSuperAdmin creates the SuperAdmin unless one already exists. It
// reports whether a user was created.
func SeedSuperAdmin(ctx context.Context, userRepository user.UserRepository, email, password string) (bool, error) {
	exists, err := userRepository.ExistsByRole(ctx, user.RoleSuperAdmin)
	if err != nil {
		return false, fmt.Errorf("check for superadmin: %w", err)
	}
	if exists {
		return false, nil
	}

	if password == "" {
		return false, ErrSuperAdminPasswordRequired
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !validator.IsValidEmail(email) {
		return false, fmt.Errorf("invalid SUPERADMIN_EMAIL %q", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash superadmin password: %w", err)
	}

	_, err = userRepository.Create(ctx, user.User{
		Name:         "Super Admin",
		Email:        email,
		PasswordHash: string(hash),
		EmployeeCode: SuperAdminEmployeeCode,
		Role:         user.RoleSuperAdmin,
	})
	if err != nil {
		return false, fmt.Errorf("create superadmin: %w", err)
	}
	return true, nil
}
