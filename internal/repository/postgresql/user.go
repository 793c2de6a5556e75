package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `
	u.id, u.company_id, u.name, u.email, u.password_hash, u.employee_code, u.role,
	u.phone, u.department, u.designation, u.address, u.residing_address, u.gender,
	u.marital_status, u.nationality, u.personal_email, u.image, u.date_of_birth,
	u.date_of_joining, u.salary_monthly, u.salary_yearly, u.bank_details,
	u.created_at, u.updated_at, c.name`

const userFrom = `FROM users u LEFT JOIN companies c ON c.id = u.company_id`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.CompanyID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.EmployeeCode,
		&u.Role,
		&u.Phone,
		&u.Department,
		&u.Designation,
		&u.Address,
		&u.ResidingAddress,
		&u.Gender,
		&u.MaritalStatus,
		&u.Nationality,
		&u.PersonalEmail,
		&u.Image,
		&u.DateOfBirth,
		&u.DateOfJoining,
		&u.Salary.Monthly,
		&u.Salary.Yearly,
		&u.BankDetails,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.CompanyName,
	)
	return u, err
}

func collectUsers(rows pgx.Rows) ([]user.User, error) {
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// mapUserWriteError turns unique violations into domain errors.
func mapUserWriteError(err error) error {
	if constraint, ok := uniqueViolation(err); ok {
		switch constraint {
		case "users_email_key":
			return user.ErrUserEmailExists
		case "users_employee_code_key":
			return user.ErrEmployeeCodeTaken
		}
	}
	return err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}

	query := `
		INSERT INTO users (
			id, company_id, name, email, password_hash, employee_code, role,
			phone, department, designation, address, residing_address, gender,
			marital_status, nationality, personal_email, image, date_of_birth,
			date_of_joining, salary_monthly, salary_yearly, bank_details
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22
		)
		RETURNING id`

	args := []any{
		id.String(),
		newUser.CompanyID,
		newUser.Name,
		newUser.Email,
		newUser.PasswordHash,
		newUser.EmployeeCode,
		newUser.Role,
		newUser.Phone,
		newUser.Department,
		newUser.Designation,
		newUser.Address,
		newUser.ResidingAddress,
		newUser.Gender,
		newUser.MaritalStatus,
		newUser.Nationality,
		newUser.PersonalEmail,
		newUser.Image,
		newUser.DateOfBirth,
		newUser.DateOfJoining,
		newUser.Salary.Monthly,
		newUser.Salary.Yearly,
		newUser.BankDetails,
	}

	// Inside a transaction the insert runs under a savepoint so a unique
	// violation leaves the outer transaction usable for a retry.
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		err = pgx.BeginFunc(ctx, tx, func(sp pgx.Tx) error {
			return sp.QueryRow(ctx, query, args...).Scan(&newUser.ID)
		})
	} else {
		err = q.QueryRow(ctx, query, args...).Scan(&newUser.ID)
	}
	if err != nil {
		return user.User{}, mapUserWriteError(err)
	}

	return r.GetByID(ctx, newUser.ID)
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` `+userFrom+` WHERE u.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("get user %s: %w", id, err)
	}
	return u, nil
}

// GetByEmailOrEmployeeCode implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmailOrEmployeeCode(ctx context.Context, identifier string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` ` + userFrom + `
		WHERE u.email = lower($1) OR u.employee_code = upper($1)
		LIMIT 1`

	u, err := scanUser(q.QueryRow(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("get user by identifier: %w", err)
	}
	return u, nil
}

// ListByCompany implements user.UserRepository.
func (r *userRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+userColumns+` `+userFrom+`
		WHERE u.company_id = $1
		ORDER BY u.role, u.name`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list users of company %s: %w", companyID, err)
	}
	return collectUsers(rows)
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users SET
			company_id = $2, name = $3, email = $4, password_hash = $5, role = $6,
			phone = $7, department = $8, designation = $9, address = $10,
			residing_address = $11, gender = $12, marital_status = $13,
			nationality = $14, personal_email = $15, image = $16, date_of_birth = $17,
			date_of_joining = $18, salary_monthly = $19, salary_yearly = $20,
			bank_details = $21, updated_at = NOW()
		WHERE id = $1`

	tag, err := q.Exec(ctx, query,
		u.ID,
		u.CompanyID,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.Phone,
		u.Department,
		u.Designation,
		u.Address,
		u.ResidingAddress,
		u.Gender,
		u.MaritalStatus,
		u.Nationality,
		u.PersonalEmail,
		u.Image,
		u.DateOfBirth,
		u.DateOfJoining,
		u.Salary.Monthly,
		u.Salary.Yearly,
		u.BankDetails,
	)
	if err != nil {
		return user.User{}, mapUserWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return user.User{}, user.ErrUserNotFound
	}

	return r.GetByID(ctx, u.ID)
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// ExistsByRole implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByRole(ctx context.Context, role user.Role) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE role = $1)`, role).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// LatestEmployeeCodeWithPrefix implements user.EmployeeCodeFinder.
func (r *userRepositoryImpl) LatestEmployeeCodeWithPrefix(ctx context.Context, prefix string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_code FROM users
		WHERE starts_with(employee_code, $1)
		ORDER BY created_at DESC, employee_code DESC
		LIMIT 1`

	var code string
	err := q.QueryRow(ctx, query, prefix).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("latest employee code for %s: %w", prefix, err)
	}
	return code, nil
}
