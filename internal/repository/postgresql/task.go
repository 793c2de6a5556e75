package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/task"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const taskSelect = `
	SELECT t.id, t.company_id, t.title, t.description, t.assigned_to, t.assigned_by,
		t.priority, t.status, t.due_date, t.completed_at, t.attachments,
		t.created_at, t.updated_at,
		ato.name, ato.email, ato.employee_code, ato.department,
		aby.name, aby.email
	FROM tasks t
	JOIN users ato ON ato.id = t.assigned_to
	JOIN users aby ON aby.id = t.assigned_by`

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID,
		&t.CompanyID,
		&t.Title,
		&t.Description,
		&t.AssignedTo,
		&t.AssignedBy,
		&t.Priority,
		&t.Status,
		&t.DueDate,
		&t.CompletedAt,
		&t.Attachments,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.Assignee.Name,
		&t.Assignee.Email,
		&t.Assignee.EmployeeCode,
		&t.Assignee.Department,
		&t.Assigner.Name,
		&t.Assigner.Email,
	)
	return t, err
}

// attachComments loads the comments of tasks in one round trip.
func (r *taskRepositoryImpl) attachComments(ctx context.Context, tasks []task.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	ids := make([]string, len(tasks))
	index := make(map[string]int, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
		index[t.ID] = i
		tasks[i].Comments = []task.Comment{}
	}

	query := `
		SELECT c.id, c.task_id, c.user_id, u.name, c.text, c.created_at
		FROM task_comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.task_id = ANY($1::uuid[])
		ORDER BY c.created_at`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("list task comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c task.Comment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.UserID, &c.UserName, &c.Text, &c.CreatedAt); err != nil {
			return fmt.Errorf("scan task comment: %w", err)
		}
		i := index[c.TaskID]
		tasks[i].Comments = append(tasks[i].Comments, c)
	}
	return rows.Err()
}

func (r *taskRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := []task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachComments(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return task.Task{}, fmt.Errorf("generate task id: %w", err)
	}
	if t.Attachments == nil {
		t.Attachments = []task.Attachment{}
	}

	query := `
		INSERT INTO tasks (
			id, company_id, title, description, assigned_to, assigned_by,
			priority, status, due_date, attachments
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	err = q.QueryRow(ctx, query,
		id.String(),
		t.CompanyID,
		t.Title,
		t.Description,
		t.AssignedTo,
		t.AssignedBy,
		t.Priority,
		t.Status,
		t.DueDate,
		t.Attachments,
	).Scan(&t.ID)
	if err != nil {
		return task.Task{}, fmt.Errorf("create task: %w", err)
	}

	return r.GetByID(ctx, t.ID)
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTask(q.QueryRow(ctx, taskSelect+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("get task %s: %w", id, err)
	}

	tasks := []task.Task{t}
	if err := r.attachComments(ctx, tasks); err != nil {
		return task.Task{}, err
	}
	return tasks[0], nil
}

// List implements task.TaskRepository.
func (r *taskRepositoryImpl) List(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	if filter.AssignedTo != nil {
		return r.list(ctx, taskSelect+`
			WHERE t.company_id = $1 AND t.assigned_to = $2
			ORDER BY t.created_at DESC`, filter.CompanyID, *filter.AssignedTo)
	}
	return r.list(ctx, taskSelect+`
		WHERE t.company_id = $1
		ORDER BY t.created_at DESC`, filter.CompanyID)
}

// ListAssigned implements task.TaskRepository.
func (r *taskRepositoryImpl) ListAssigned(ctx context.Context, companyID, userID string) ([]task.Task, error) {
	return r.list(ctx, taskSelect+`
		WHERE t.company_id = $1 AND t.assigned_to = $2
		ORDER BY t.due_date ASC`, companyID, userID)
}

// Update implements task.TaskRepository.
func (r *taskRepositoryImpl) Update(ctx context.Context, t task.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks SET
			title = $2, description = $3, assigned_to = $4, priority = $5,
			status = $6, due_date = $7, completed_at = $8, updated_at = NOW()
		WHERE id = $1`

	tag, err := q.Exec(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		t.AssignedTo,
		t.Priority,
		t.Status,
		t.DueDate,
		t.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("update task %s: %w", t.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// Delete implements task.TaskRepository.
func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// AddComment implements task.TaskRepository.
func (r *taskRepositoryImpl) AddComment(ctx context.Context, c task.Comment) (task.Comment, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return task.Comment{}, fmt.Errorf("generate comment id: %w", err)
	}

	query := `
		INSERT INTO task_comments (id, task_id, user_id, text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	if err := q.QueryRow(ctx, query, id.String(), c.TaskID, c.UserID, c.Text).Scan(&c.ID, &c.CreatedAt); err != nil {
		return task.Comment{}, fmt.Errorf("add comment to task %s: %w", c.TaskID, err)
	}
	return c, nil
}
