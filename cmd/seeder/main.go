// Command seeder creates the platform SuperAdmin and, with -demo, a demo
// company with a few employees.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/dayflow-hr/hrms-backend-go/internal/config"
	"github.com/dayflow-hr/hrms-backend-go/internal/fixtures"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/hrms-backend-go/internal/repository/postgresql"
	announcementService "github.com/dayflow-hr/hrms-backend-go/internal/service/announcement"
	serviceAuth "github.com/dayflow-hr/hrms-backend-go/internal/service/auth"
	userService "github.com/dayflow-hr/hrms-backend-go/internal/service/user"
)

func main() {
	demo := flag.Bool("demo", false, "also seed the Acme Corp demo company")
	flag.Parse()

	if err := run(*demo); err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
}

func run(demo bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	userRepo := postgresql.NewUserRepository(db)

	created, err := fixtures.SeedSuperAdmin(ctx, userRepo, cfg.SuperAdmin.Email, cfg.SuperAdmin.Password)
	if err != nil {
		return err
	}
	if created {
		slog.Info("SuperAdmin created", "email", cfg.SuperAdmin.Email, "employee_code", fixtures.SuperAdminEmployeeCode)
	} else {
		slog.Info("SuperAdmin already exists")
	}

	if !demo {
		return nil
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	creds, err := fixtures.SeedDemo(ctx, fixtures.DemoServices{
		Auth:         serviceAuth.NewAuthService(postgresql.NewTransactor(db), userRepo, postgresql.NewCompanyRepository(db), jwtService),
		User:         userService.NewUserService(userRepo, jwtService),
		Announcement: announcementService.NewAnnouncementService(postgresql.NewAnnouncementRepository(db)),
	})
	if err != nil {
		return err
	}
	if len(creds) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROLE\tNAME\tEMAIL\tEMPLOYEE CODE\tPASSWORD")
	for _, c := range creds {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.Role, c.Name, c.Email, c.EmployeeCode, c.Password)
	}
	return tw.Flush()
}
