package fixtures

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/announcement"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/company"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func salaryPtr(monthly int64) *decimal.Decimal {
	d := decimal.NewFromInt(monthly)
	return &d
}

// DemoServices are the services the demo seed goes through, so the seeded
// rows get the same codes, hashes and checks as API-created ones.
type DemoServices struct {
	Auth         auth.AuthService
	User         user.UserService
	Announcement announcement.AnnouncementService
}

// DemoMember is one seeded employee plus the role it is promoted to.
type DemoMember struct {
	Request user.CreateEmployeeRequest
	Role    user.Role
}

// DemoCredential is printed by the seeder so the demo accounts can log in.
type DemoCredential struct {
	Name         string
	Email        string
	EmployeeCode string
	Role         user.Role
	Password     string
}

// DemoAdmin registers the demo company.
func DemoAdmin() auth.RegisterRequest {
	return auth.RegisterRequest{
		Name:        "Alice Morgan",
		Email:       "admin@acme.example",
		Password:    "demo-admin",
		CompanyName: "Acme Corp",
		Phone:       "+1 555 010 0100",
	}
}

func DemoMembers() []DemoMember {
	return []DemoMember{
		{
			Request: user.CreateEmployeeRequest{
				Name: "Henry Ross", Email: "hr@acme.example",
				Department: "People", Designation: "HR Manager",
				Salary: salaryPtr(6500), DateOfJoining: strPtr("2024-02-01"),
			},
			Role: user.RoleHR,
		},
		{
			Request: user.CreateEmployeeRequest{
				Name: "John Doe", Email: "john@acme.example",
				Department: "Engineering", Designation: "Backend Engineer",
				Salary: salaryPtr(5200), DateOfJoining: strPtr("2024-06-15"),
			},
			Role: user.RoleEmployee,
		},
		{
			Request: user.CreateEmployeeRequest{
				Name: "Maria Lopez", Email: "maria@acme.example",
				Department: "Sales", Designation: "Account Executive",
				Salary: salaryPtr(4300), DateOfJoining: strPtr("2025-01-06"),
			},
			Role: user.RoleEmployee,
		},
	}
}

func DemoAnnouncements() []announcement.CreateAnnouncementRequest {
	return []announcement.CreateAnnouncementRequest{
		{Title: "Welcome to Dayflow", Message: "Check in each morning from the dashboard and apply for leave under My Leaves.", Type: string(announcement.TypeInfo)},
		{Title: "Quarterly review", Message: "Managers, please close open tasks before the end of the quarter.", Type: string(announcement.TypeWarning)},
	}
}

// SeedDemo registers the demo company, its members and announcements. An
// existing demo company is left untouched and yields no credentials.
func SeedDemo(ctx context.Context, svc DemoServices) ([]DemoCredential, error) {
	adminReq := DemoAdmin()
	registered, err := svc.Auth.Register(ctx, adminReq)
	if errors.Is(err, company.ErrCompanyNameExists) || errors.Is(err, user.ErrUserEmailExists) {
		slog.Info("Demo company already present, skipping", "company", adminReq.CompanyName)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("register demo company: %w", err)
	}

	admin := registered.User
	actorCtx := access.WithActor(ctx, access.Actor{UserID: admin.ID, Role: admin.Role, CompanyID: admin.CompanyID})
	creds := []DemoCredential{{
		Name:         admin.Name,
		Email:        admin.Email,
		EmployeeCode: admin.EmployeeCode,
		Role:         admin.Role,
		Password:     adminReq.Password,
	}}

	for _, member := range DemoMembers() {
		created, err := svc.User.CreateEmployee(actorCtx, member.Request)
		if err != nil {
			return creds, fmt.Errorf("create demo member %s: %w", member.Request.Email, err)
		}

		role := created.User.Role
		if member.Role != user.RoleEmployee {
			updated, err := svc.User.Update(actorCtx, created.User.ID, user.UpdateUserRequest{Role: strPtr(string(member.Role))})
			if err != nil {
				return creds, fmt.Errorf("promote demo member %s: %w", member.Request.Email, err)
			}
			role = updated.Role
		}

		creds = append(creds, DemoCredential{
			Name:         created.User.Name,
			Email:        created.User.Email,
			EmployeeCode: created.User.EmployeeCode,
			Role:         role,
			Password:     created.TemporaryPassword,
		})
	}

	for _, req := range DemoAnnouncements() {
		if _, err := svc.Announcement.Create(actorCtx, req); err != nil {
			return creds, fmt.Errorf("create demo announcement %q: %w", req.Title, err)
		}
	}

	return creds, nil
}
