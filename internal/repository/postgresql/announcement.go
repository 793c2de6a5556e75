package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/announcement"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const announcementSelect = `
	SELECT a.id, a.company_id, a.title, a.message, a.type, a.created_by,
		a.expires_at, a.is_active, a.created_at, u.name
	FROM announcements a
	JOIN users u ON u.id = a.created_by`

type announcementRepositoryImpl struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepositoryImpl{db: db}
}

func scanAnnouncement(row pgx.Row) (announcement.Announcement, error) {
	var a announcement.Announcement
	err := row.Scan(
		&a.ID,
		&a.CompanyID,
		&a.Title,
		&a.Message,
		&a.Type,
		&a.CreatedBy,
		&a.ExpiresAt,
		&a.IsActive,
		&a.CreatedAt,
		&a.AuthorName,
	)
	return a, err
}

// Create implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("generate announcement id: %w", err)
	}

	query := `
		INSERT INTO announcements (id, company_id, title, message, type, created_by, expires_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err = q.QueryRow(ctx, query,
		id.String(), a.CompanyID, a.Title, a.Message, a.Type, a.CreatedBy, a.ExpiresAt, a.IsActive,
	).Scan(&a.ID)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("create announcement: %w", err)
	}

	return r.GetByID(ctx, a.ID)
}

// GetByID implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAnnouncement(q.QueryRow(ctx, announcementSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.Announcement{}, fmt.Errorf("get announcement %s: %w", id, err)
	}
	return a, nil
}

// ListVisible implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) ListVisible(ctx context.Context, companyID string, now time.Time) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := announcementSelect + `
		WHERE a.company_id = $1
			AND a.is_active
			AND (a.expires_at IS NULL OR a.expires_at > $2)
		ORDER BY a.created_at DESC`

	rows, err := q.Query(ctx, query, companyID, now)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()

	list := []announcement.Announcement{}
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Update implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) Update(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE announcements
		SET title = $2, message = $3, type = $4, is_active = $5
		WHERE id = $1`

	tag, err := q.Exec(ctx, query, a.ID, a.Title, a.Message, a.Type, a.IsActive)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("update announcement %s: %w", a.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
	}

	return r.GetByID(ctx, a.ID)
}

// Delete implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete announcement %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}
	return nil
}

// DeactivateExpired implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE announcements
		SET is_active = FALSE
		WHERE is_active AND expires_at IS NOT NULL AND expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("deactivate expired announcements: %w", err)
	}
	return tag.RowsAffected(), nil
}
