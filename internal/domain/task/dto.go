package task

import (
	"strings"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
)

var (
	priorityNames = []string{string(PriorityLow), string(PriorityMedium), string(PriorityHigh), string(PriorityUrgent)}
	statusNames   = []string{string(StatusPending), string(StatusInProgress), string(StatusCompleted), string(StatusCancelled)}
)

type CommentResponse struct {
	ID        string           `json:"id"`
	User      user.UserSummary `json:"user"`
	Text      string           `json:"text"`
	CreatedAt string           `json:"created_at"`
}

type TaskResponse struct {
	ID          string            `json:"id"`
	CompanyID   string            `json:"company_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	AssignedTo  user.UserSummary  `json:"assigned_to"`
	AssignedBy  user.UserSummary  `json:"assigned_by"`
	Priority    Priority          `json:"priority"`
	Status      Status            `json:"status"`
	DueDate     string            `json:"due_date"`
	CompletedAt *string           `json:"completed_at"`
	Attachments []Attachment      `json:"attachments"`
	Comments    []CommentResponse `json:"comments"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

func NewTaskResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		CompanyID:   t.CompanyID,
		Title:       t.Title,
		Description: t.Description,
		AssignedTo: user.UserSummary{
			ID:           t.AssignedTo,
			Name:         t.Assignee.Name,
			Email:        t.Assignee.Email,
			EmployeeCode: t.Assignee.EmployeeCode,
			Department:   t.Assignee.Department,
		},
		AssignedBy:  user.UserSummary{ID: t.AssignedBy, Name: t.Assigner.Name, Email: t.Assigner.Email},
		Priority:    t.Priority,
		Status:      t.Status,
		DueDate:     t.DueDate.Format(time.RFC3339),
		Attachments: t.Attachments,
		Comments:    make([]CommentResponse, 0, len(t.Comments)),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
	if resp.Attachments == nil {
		resp.Attachments = []Attachment{}
	}
	if t.CompletedAt != nil {
		done := t.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &done
	}
	for _, c := range t.Comments {
		resp.Comments = append(resp.Comments, CommentResponse{
			ID:        c.ID,
			User:      user.UserSummary{ID: c.UserID, Name: c.UserName},
			Text:      c.Text,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}

func NewTaskResponses(tasks []Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskResponse(t))
	}
	return out
}

type CreateTaskRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	AssignedTo  string       `json:"assigned_to"`
	Priority    string       `json:"priority"`
	DueDate     string       `json:"due_date"`
	Attachments []Attachment `json:"attachments"`

	Due time.Time `json:"-"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)

	if validator.IsEmpty(r.Title) {
		errs.Add("title", "title is required")
	}
	if validator.IsEmpty(r.Description) {
		errs.Add("description", "description is required")
	}
	if validator.IsEmpty(r.AssignedTo) {
		errs.Add("assigned_to", "assigned_to is required")
	}
	if r.Priority == "" {
		r.Priority = string(PriorityMedium)
	} else if !validator.IsInSlice(r.Priority, priorityNames) {
		errs.Add("priority", "priority must be one of Low, Medium, High, Urgent")
	}

	var ok bool
	if validator.IsEmpty(r.DueDate) {
		errs.Add("due_date", "due_date is required")
	} else if r.Due, ok = validator.ParseDateOrDateTime(r.DueDate); !ok {
		errs.Add("due_date", "due_date must be a date or ISO 8601 timestamp")
	}

	return errs.OrNil()
}

// UpdateTaskRequest is applied in full by Admin/HR; Employees may only move
// the status.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Status      *string `json:"status,omitempty"`
	AssignedTo  *string `json:"assigned_to,omitempty"`

	Due *time.Time `json:"-"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Priority != nil && *r.Priority != "" && !validator.IsInSlice(*r.Priority, priorityNames) {
		errs.Add("priority", "priority must be one of Low, Medium, High, Urgent")
	}
	if r.Status != nil && *r.Status != "" && !validator.IsInSlice(*r.Status, statusNames) {
		errs.Add("status", "status must be one of Pending, In Progress, Completed, Cancelled")
	}
	if r.DueDate != nil && *r.DueDate != "" {
		if t, ok := validator.ParseDateOrDateTime(*r.DueDate); ok {
			r.Due = &t
		} else {
			errs.Add("due_date", "due_date must be a date or ISO 8601 timestamp")
		}
	}

	return errs.OrNil()
}

// NewStatus returns the requested status, if any.
func (r UpdateTaskRequest) NewStatus() (Status, bool) {
	if r.Status == nil || *r.Status == "" {
		return "", false
	}
	return Status(*r.Status), true
}

// NewAssignee returns the requested assignee, if any.
func (r UpdateTaskRequest) NewAssignee() (string, bool) {
	if r.AssignedTo == nil || strings.TrimSpace(*r.AssignedTo) == "" {
		return "", false
	}
	return strings.TrimSpace(*r.AssignedTo), true
}

// ApplyDetails copies title, description, priority and due date onto t.
func (r UpdateTaskRequest) ApplyDetails(t *Task) {
	if r.Title != nil && strings.TrimSpace(*r.Title) != "" {
		t.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil && strings.TrimSpace(*r.Description) != "" {
		t.Description = strings.TrimSpace(*r.Description)
	}
	if r.Priority != nil && *r.Priority != "" {
		t.Priority = Priority(*r.Priority)
	}
	if r.Due != nil {
		t.DueDate = *r.Due
	}
}

type AddCommentRequest struct {
	Text string `json:"text"`
}

func (r *AddCommentRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Text = strings.TrimSpace(r.Text)
	if validator.IsEmpty(r.Text) {
		errs.Add("text", "text is required")
	}

	return errs.OrNil()
}
