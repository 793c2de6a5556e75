package superadmin

import (
	"strings"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
)

// RecentUsersLimit is the number of newest users shown in system stats.
const RecentUsersLimit = 10

type CompanySummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AdminCount    int64  `json:"admin_count"`
	HRCount       int64  `json:"hr_count"`
	EmployeeCount int64  `json:"employee_count"`
	TotalUsers    int64  `json:"total_users"`
}

// AdminResponse is a user as listed by the console.
type AdminResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	EmployeeCode string    `json:"employee_code"`
	Role         user.Role `json:"role"`
	CompanyID    *string   `json:"company_id,omitempty"`
	CompanyName  *string   `json:"company_name,omitempty"`
	CreatedAt    string    `json:"created_at"`
}

func NewAdminResponse(u user.User) AdminResponse {
	return AdminResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		EmployeeCode: u.EmployeeCode,
		Role:         u.Role,
		CompanyID:    u.CompanyID,
		CompanyName:  u.CompanyName,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
	}
}

func NewAdminResponses(users []user.User) []AdminResponse {
	out := make([]AdminResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewAdminResponse(u))
	}
	return out
}

type CompanyStats struct {
	TotalUsers          int              `json:"total_users"`
	AttendanceRecords   int64            `json:"attendance_records"`
	Leaves              map[string]int64 `json:"leaves"`
	Tasks               map[string]int64 `json:"tasks"`
	ActiveAnnouncements int64            `json:"active_announcements"`
}

type CompanyDetailsResponse struct {
	ID          string              `json:"id"`
	CompanyName string              `json:"company_name"`
	CreatedAt   string              `json:"created_at"`
	Users       []user.UserResponse `json:"users"`
	Stats       CompanyStats        `json:"stats"`
}

type Overview struct {
	TotalCompanies     int64 `json:"total_companies"`
	TotalUsers         int64 `json:"total_users"`
	TotalAdmins        int64 `json:"total_admins"`
	TotalEmployees     int64 `json:"total_employees"`
	TotalAttendance    int64 `json:"total_attendance"`
	TotalLeaves        int64 `json:"total_leaves"`
	TotalTasks         int64 `json:"total_tasks"`
	TotalAnnouncements int64 `json:"total_announcements"`
}

type SystemStatsResponse struct {
	Overview    Overview        `json:"overview"`
	RecentUsers []AdminResponse `json:"recent_users"`
}

type DeleteCompanyResponse struct {
	CompanyID    string `json:"company_id"`
	CompanyName  string `json:"company_name"`
	DeletedUsers int64  `json:"deleted_users"`
}

// UpdateAnyUserRequest may move a user to any role or company.
type UpdateAnyUserRequest struct {
	Name          *string      `json:"name,omitempty"`
	Email         *string      `json:"email,omitempty"`
	Role          *string      `json:"role,omitempty"`
	CompanyID     *string      `json:"company_id,omitempty"`
	Designation   *string      `json:"designation,omitempty"`
	Department    *string      `json:"department,omitempty"`
	Phone         *string      `json:"phone,omitempty"`
	Salary        *user.Salary `json:"salary,omitempty"`
	DateOfJoining *string      `json:"date_of_joining,omitempty"`

	ParsedRole  *user.Role `json:"-"`
	JoiningDate *time.Time `json:"-"`
}

func (r *UpdateAnyUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && !validator.MinLength(*r.Name, 2) {
		errs.Add("name", "name must be at least 2 characters")
	}
	if r.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &email
		if !validator.IsValidEmail(email) {
			errs.Add("email", "invalid email format")
		}
	}
	if r.Role != nil {
		role, ok := user.ParseRole(*r.Role)
		if !ok {
			errs.Add("role", "invalid role")
		} else {
			r.ParsedRole = &role
		}
	}
	if r.CompanyID != nil && *r.CompanyID != "" && !validator.IsValidUUID(*r.CompanyID) {
		errs.Add("company_id", "company_id must be a valid id")
	}
	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs.Add("phone", "phone number must be at least 10 digits")
	}
	if r.Salary != nil && (r.Salary.Monthly.IsNegative() || r.Salary.Yearly.IsNegative()) {
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

// Apply copies every provided field onto u. An empty company_id detaches
// the user from its company.
func (r UpdateAnyUserRequest) Apply(u *user.User) {
	if r.Name != nil {
		u.Name = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.ParsedRole != nil {
		u.Role = *r.ParsedRole
	}
	if r.CompanyID != nil {
		if *r.CompanyID == "" {
			u.CompanyID = nil
		} else {
			companyID := *r.CompanyID
			u.CompanyID = &companyID
		}
		u.CompanyName = nil
	}
	if r.Designation != nil {
		u.Designation = *r.Designation
	}
	if r.Department != nil {
		u.Department = *r.Department
	}
	if r.Phone != nil {
		u.Phone = *r.Phone
	}
	if r.Salary != nil {
		u.Salary = *r.Salary
	}
	if r.JoiningDate != nil {
		u.DateOfJoining = r.JoiningDate
	}
}

// StatusKey turns a stored status into a JSON friendly map key, e.g.
// "In Progress" becomes "in_progress".
func StatusKey(status string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(status)), " ", "_")
}
