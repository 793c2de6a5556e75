package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/company"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// TestMain connects to TEST_DATABASE_URL when it is set. Without it every
// test in this package skips.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		db, err := database.NewPostgreSQLDB(ctx, dsn)
		if err == nil {
			err = db.Migrate(ctx)
		}
		cancel()
		if err != nil {
			fmt.Fprintln(os.Stderr, "test database setup failed:", err)
			os.Exit(1)
		}
		testDB = db
	}

	code := m.Run()
	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

// setupTestDB skips without a database and truncates every table otherwise.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}

	_, err := testDB.Exec(context.Background(),
		`TRUNCATE TABLE task_comments, tasks, announcements, leaves, attendances, users, companies CASCADE`)
	require.NoError(t, err)
	return testDB
}

func createTestCompany(t *testing.T, ctx context.Context, name string) company.Company {
	t.Helper()
	created, err := postgresql.NewCompanyRepository(testDB).Create(ctx, company.Company{Name: name})
	require.NoError(t, err)
	return created
}

func createTestUser(t *testing.T, ctx context.Context, c *company.Company, name, email, code string, role user.Role) user.User {
	t.Helper()
	u := user.User{
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$hash",
		EmployeeCode: code,
		Role:         role,
	}
	if c != nil {
		u.CompanyID = &c.ID
	}
	created, err := postgresql.NewUserRepository(testDB).Create(ctx, u)
	require.NoError(t, err)
	return created
}
