package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/company"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	id, err := uuid.NewV7()
	if err != nil {
		return company.Company{}, fmt.Errorf("generate company id: %w", err)
	}

	query := `
		INSERT INTO companies (id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at`

	var created company.Company
	err = q.QueryRow(ctx, query, id.String(), newCompany.Name).Scan(
		&created.ID,
		&created.Name,
		&created.CreatedAt,
	)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == "companies_name_key" {
			return company.Company{}, company.ErrCompanyNameExists
		}
		return company.Company{}, fmt.Errorf("create company: %w", err)
	}
	return created, nil
}

// GetByID implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	var found company.Company
	err := q.QueryRow(ctx, `SELECT id, name, created_at FROM companies WHERE id = $1`, id).Scan(
		&found.ID,
		&found.Name,
		&found.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("get company %s: %w", id, err)
	}
	return found, nil
}

// Delete implements company.CompanyRepository.
func (c *companyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}
