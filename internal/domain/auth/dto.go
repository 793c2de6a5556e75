package auth

import (
	"strings"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name"`
	Phone       string `json:"phone"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.Phone = strings.TrimSpace(r.Phone)

	// Admin
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if !validator.MinLength(r.Name, 2) {
		errs.Add("name", "name must be at least 2 characters")
	}

	// Email
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	}

	// Password
	if r.Password == "" {
		errs.Add("password", "password is required")
	} else if len(r.Password) < 6 {
		errs.Add("password", "password must be at least 6 characters")
	}

	// Company
	if validator.IsEmpty(r.CompanyName) {
		errs.Add("company_name", "company_name is required")
	} else if !validator.MinLength(r.CompanyName, 2) {
		errs.Add("company_name", "company name must be at least 2 characters")
	} else if len(r.CompanyName) > 255 {
		errs.Add("company_name", "company_name must not exceed 255 characters")
	}

	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs.Add("phone", "phone number must be at least 10 digits")
	}

	return errs.OrNil()
}

// LoginRequest identifies the user by email or employee code; the field
// keeps the name "email" for existing clients.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.TrimSpace(r.Email)
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email or employee code is required")
	}
	if r.Password == "" {
		errs.Add("password", "password is required")
	}

	return errs.OrNil()
}

// Identifier returns the login key normalised for lookup: emails are
// matched case-insensitively, employee codes are stored upper-case.
func (r LoginRequest) Identifier() string {
	if strings.Contains(r.Email, "@") {
		return strings.ToLower(r.Email)
	}
	return strings.ToUpper(r.Email)
}

type AuthResponse struct {
	User      user.UserResponse `json:"user"`
	Token     string            `json:"token"`
	ExpiresAt int64             `json:"expires_at"`
}
