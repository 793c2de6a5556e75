package task

import (
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// Open statuses count as outstanding work on the dashboard.
var OpenStatuses = []Status{StatusPending, StatusInProgress}

type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Comment struct {
	ID        string
	TaskID    string
	UserID    string
	UserName  string
	Text      string
	CreatedAt time.Time
}

type Task struct {
	ID          string
	CompanyID   string
	Title       string
	Description string
	AssignedTo  string
	AssignedBy  string
	Priority    Priority
	Status      Status
	DueDate     time.Time
	CompletedAt *time.Time
	Attachments []Attachment
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join
	Assignee Person
	Assigner Person
	Comments []Comment
}

// Person is the joined display data of an assignee or assigner.
type Person struct {
	Name         string
	Email        string
	EmployeeCode string
	Department   string
}

// Resource exposes the task's tenancy to the access guard; the assignee
// owns the task.
func (t Task) Resource() *access.Resource {
	companyID := t.CompanyID
	return &access.Resource{CompanyID: &companyID, OwnerID: t.AssignedTo}
}

// SetStatus moves the task to status and stamps the completion time when it
// becomes Completed.
func (t *Task) SetStatus(status Status, now time.Time) {
	if status == StatusCompleted && t.Status != StatusCompleted {
		t.CompletedAt = &now
	}
	if status != StatusCompleted {
		t.CompletedAt = nil
	}
	t.Status = status
}
