package user

import (
	"strings"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID              string      `json:"id"`
	CompanyID       *string     `json:"company_id,omitempty"`
	CompanyName     *string     `json:"company_name,omitempty"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	EmployeeCode    string      `json:"employee_code"`
	Role            Role        `json:"role"`
	Phone           string      `json:"phone"`
	Department      string      `json:"department"`
	Designation     string      `json:"designation"`
	Address         string      `json:"address"`
	ResidingAddress string      `json:"residing_address"`
	Gender          string      `json:"gender"`
	MaritalStatus   string      `json:"marital_status"`
	Nationality     string      `json:"nationality"`
	PersonalEmail   string      `json:"personal_email"`
	Image           string      `json:"image"`
	DateOfBirth     *string     `json:"date_of_birth,omitempty"`
	DateOfJoining   *string     `json:"date_of_joining,omitempty"`
	Salary          Salary      `json:"salary"`
	BankDetails     BankDetails `json:"bank_details"`
	CreatedAt       string      `json:"created_at"`
	UpdatedAt       string      `json:"updated_at"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		CompanyID:       u.CompanyID,
		CompanyName:     u.CompanyName,
		Name:            u.Name,
		Email:           u.Email,
		EmployeeCode:    u.EmployeeCode,
		Role:            u.Role,
		Phone:           u.Phone,
		Department:      u.Department,
		Designation:     u.Designation,
		Address:         u.Address,
		ResidingAddress: u.ResidingAddress,
		Gender:          u.Gender,
		MaritalStatus:   u.MaritalStatus,
		Nationality:     u.Nationality,
		PersonalEmail:   u.PersonalEmail,
		Image:           u.Image,
		DateOfBirth:     formatDate(u.DateOfBirth),
		DateOfJoining:   formatDate(u.DateOfJoining),
		Salary:          u.Salary,
		BankDetails:     u.BankDetails,
		CreatedAt:       u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       u.UpdatedAt.Format(time.RFC3339),
	}
}

// UserSummary is the short form embedded in other records.
type UserSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	EmployeeCode string `json:"employee_code,omitempty"`
	Department   string `json:"department,omitempty"`
}

// CreateEmployeeRequest is sent by Admin/HR to provision a new employee.
type CreateEmployeeRequest struct {
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	Department    string           `json:"department"`
	Designation   string           `json:"designation"`
	Salary        *decimal.Decimal `json:"salary,omitempty"`
	DateOfJoining *string          `json:"date_of_joining,omitempty"`

	// Parsed by Validate
	JoiningDate *time.Time `json:"-"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if !validator.MinLength(r.Name, 2) {
		errs.Add("name", "name must be at least 2 characters")
	}

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	}

	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs.Add("phone", "phone number must be at least 10 digits")
	}

	if r.Salary != nil && r.Salary.IsNegative() {
		errs.Add("salary", "salary must not be negative")
	}

	if r.DateOfJoining != nil && *r.DateOfJoining != "" {
		if t, ok := validator.ParseDateOrDateTime(*r.DateOfJoining); ok {
			r.JoiningDate = &t
		} else {
			errs.Add("date_of_joining", "date_of_joining must be in YYYY-MM-DD format")
		}
	}

	return errs.OrNil()
}

type CreateEmployeeResponse struct {
	User              UserResponse `json:"user"`
	TemporaryPassword string       `json:"temp_password"`
}

// ProfileFields are the personal details editable both by the user and by
// the managers of their company. Nil or empty fields keep the stored value.
type ProfileFields struct {
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Address         *string `json:"address,omitempty"`
	ResidingAddress *string `json:"residing_address,omitempty"`
	Gender          *string `json:"gender,omitempty"`
	MaritalStatus   *string `json:"marital_status,omitempty"`
	Nationality     *string `json:"nationality,omitempty"`
	PersonalEmail   *string `json:"personal_email,omitempty"`
	Image           *string `json:"image,omitempty"`
	DateOfBirth     *string `json:"date_of_birth,omitempty"`

	BirthDate *time.Time `json:"-"`
}

func (r *ProfileFields) validate(errs *validator.ValidationErrors) {
	if r.Name != nil && *r.Name != "" && !validator.MinLength(*r.Name, 2) {
		errs.Add("name", "name must be at least 2 characters")
	}
	if r.Email != nil && *r.Email != "" {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &email
		if !validator.IsValidEmail(email) {
			errs.Add("email", "invalid email format")
		}
	}
	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs.Add("phone", "phone number must be at least 10 digits")
	}
	if r.PersonalEmail != nil && *r.PersonalEmail != "" && !validator.IsValidEmail(*r.PersonalEmail) {
		errs.Add("personal_email", "invalid email format")
	}
	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		if t, ok := validator.ParseDateOrDateTime(*r.DateOfBirth); ok {
			r.BirthDate = &t
		} else {
			errs.Add("date_of_birth", "date_of_birth must be in YYYY-MM-DD format")
		}
	}
}

// UpdateProfileRequest is sent by a user for their own record. It is the
// only request that can change a password.
type UpdateProfileRequest struct {
	ProfileFields
	Password *string `json:"password,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors
	r.ProfileFields.validate(&errs)
	if r.Password != nil && *r.Password != "" && len(*r.Password) < 6 {
		errs.Add("password", "password must be at least 6 characters")
	}
	return errs.OrNil()
}

// ProfileResponse is returned after a profile update together with a fresh
// token.
type ProfileResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// UpdateUserRequest is used by Admin/HR on records of their company.
type UpdateUserRequest struct {
	ProfileFields
	Department  *string      `json:"department,omitempty"`
	Designation *string      `json:"designation,omitempty"`
	Role        *string      `json:"role,omitempty"`
	Salary      *Salary      `json:"salary,omitempty"`
	BankDetails *BankDetails `json:"bank_details,omitempty"`
	JoiningDate *string      `json:"date_of_joining,omitempty"`

	ParsedRole    *Role      `json:"-"`
	DateOfJoining *time.Time `json:"-"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors
	r.ProfileFields.validate(&errs)

	if r.Role != nil && *r.Role != "" {
		role, ok := ParseRole(*r.Role)
		if !ok {
			errs.Add("role", "invalid role")
		} else {
			r.ParsedRole = &role
		}
	}
	if r.Salary != nil && (r.Salary.Monthly.IsNegative() || r.Salary.Yearly.IsNegative()) {
		errs.Add("salary", "salary must not be negative")
	}
	if r.JoiningDate != nil && *r.JoiningDate != "" {
		if t, ok := validator.ParseDateOrDateTime(*r.JoiningDate); ok {
			r.DateOfJoining = &t
		} else {
			errs.Add("date_of_joining", "date_of_joining must be in YYYY-MM-DD format")
		}
	}

	return errs.OrNil()
}

// ApplyProfile copies the non-empty profile fields of r onto u.
func (r ProfileFields) ApplyProfile(u *User) {
	setString(&u.Name, r.Name)
	setString(&u.Email, r.Email)
	setString(&u.Phone, r.Phone)
	setString(&u.Address, r.Address)
	setString(&u.ResidingAddress, r.ResidingAddress)
	setString(&u.Gender, r.Gender)
	setString(&u.MaritalStatus, r.MaritalStatus)
	setString(&u.Nationality, r.Nationality)
	setString(&u.PersonalEmail, r.PersonalEmail)
	setString(&u.Image, r.Image)
	if r.BirthDate != nil {
		u.DateOfBirth = r.BirthDate
	}
}

// Apply copies every non-empty field of req onto u. The role is applied by
// the caller once the change has been authorized.
func (r UpdateUserRequest) Apply(u *User) {
	r.ProfileFields.ApplyProfile(u)
	setString(&u.Department, r.Department)
	setString(&u.Designation, r.Designation)
	if r.DateOfJoining != nil {
		u.DateOfJoining = r.DateOfJoining
	}
	if r.BankDetails != nil {
		u.BankDetails = *r.BankDetails
	}
	if r.Salary != nil {
		u.Salary = *r.Salary
		if u.Salary.Yearly.IsZero() {
			u.Salary = MonthlySalary(u.Salary.Monthly)
		}
	}
}

func setString(dst *string, src *string) {
	if src != nil && strings.TrimSpace(*src) != "" {
		*dst = strings.TrimSpace(*src)
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
