package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleEmployee   Role = "Employee"   // Regular employee, own records only
	RoleHR         Role = "HR"         // Manages records inside their company
	RoleAdmin      Role = "Admin"      // Company administrator, may change roles
	RoleSuperAdmin Role = "SuperAdmin" // Platform-wide, not bound to a company
)

// Roles lists every assignable role.
var Roles = []Role{RoleEmployee, RoleHR, RoleAdmin, RoleSuperAdmin}

// ParseRole returns the Role named by s.
func ParseRole(s string) (Role, bool) {
	for _, r := range Roles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// IsTenantManager reports whether the role manages records of its own company.
func (r Role) IsTenantManager() bool {
	return r == RoleAdmin || r == RoleHR
}

type Salary struct {
	Monthly decimal.Decimal `json:"monthly"`
	Yearly  decimal.Decimal `json:"yearly"`
}

type BankDetails struct {
	AccountNumber string `json:"account_number,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
	IFSCCode      string `json:"ifsc_code,omitempty"`
	PANNumber     string `json:"pan_number,omitempty"`
	UANNumber     string `json:"uan_number,omitempty"`
}

type User struct {
	ID              string
	CompanyID       *string
	Name            string
	Email           string
	PasswordHash    string
	EmployeeCode    string
	Role            Role
	Phone           string
	Department      string
	Designation     string
	Address         string
	ResidingAddress string
	Gender          string
	MaritalStatus   string
	Nationality     string
	PersonalEmail   string
	Image           string
	DateOfBirth     *time.Time
	DateOfJoining   *time.Time
	Salary          Salary
	BankDetails     BankDetails
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	CompanyName *string
}

// IsSuperAdmin checks if user is the platform operator
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsAdmin checks if user administers a company
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// MonthlySalary builds a Salary whose yearly figure is twelve months.
func MonthlySalary(monthly decimal.Decimal) Salary {
	return Salary{Monthly: monthly, Yearly: monthly.Mul(decimal.NewFromInt(12))}
}
