package task

import (
	"context"
	"errors"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/task"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
)

type TaskServiceImpl struct {
	task.TaskRepository
	user.UserRepository
	now func() time.Time
}

func NewTaskService(taskRepository task.TaskRepository, userRepository user.UserRepository) task.TaskService {
	return &TaskServiceImpl{
		TaskRepository: taskRepository,
		UserRepository: userRepository,
		now:            time.Now,
	}
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}
	companyID, err := access.RequireTenant(actor)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if !actor.Role.IsTenantManager() {
		return task.TaskResponse{}, access.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	if err := s.checkAssignee(ctx, companyID, req.AssignedTo); err != nil {
		return task.TaskResponse{}, err
	}

	created, err := s.TaskRepository.Create(ctx, task.Task{
		CompanyID:   companyID,
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		AssignedBy:  actor.UserID,
		Priority:    task.Priority(req.Priority),
		Status:      task.StatusPending,
		DueDate:     req.Due,
		Attachments: req.Attachments,
	})
	if err != nil {
		return task.TaskResponse{}, err
	}
	return task.NewTaskResponse(created), nil
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context) ([]task.TaskResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	companyID, err := access.RequireTenant(actor)
	if err != nil {
		return nil, err
	}

	filter := task.Filter{CompanyID: companyID}
	if !actor.Role.IsTenantManager() {
		filter.AssignedTo = &actor.UserID
	}

	tasks, err := s.TaskRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return task.NewTaskResponses(tasks), nil
}

// ListMine implements task.TaskService.
func (s *TaskServiceImpl) ListMine(ctx context.Context) ([]task.TaskResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	companyID, err := access.RequireTenant(actor)
	if err != nil {
		return nil, err
	}

	tasks, err := s.TaskRepository.ListAssigned(ctx, companyID, actor.UserID)
	if err != nil {
		return nil, err
	}
	return task.NewTaskResponses(tasks), nil
}

// GetByID implements task.TaskService.
func (s *TaskServiceImpl) GetByID(ctx context.Context, id string) (task.TaskResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if err := access.Authorize(actor, t.Resource()); err != nil {
		return task.TaskResponse{}, err
	}
	return task.NewTaskResponse(t), nil
}

// Update implements task.TaskService. Admin/HR may change every field;
// the assignee may only move the status.
func (s *TaskServiceImpl) Update(ctx context.Context, id string, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if err := access.Authorize(actor, t.Resource()); err != nil {
		return task.TaskResponse{}, err
	}

	if actor.Role.IsTenantManager() || actor.IsSuperAdmin() {
		req.ApplyDetails(&t)
		if assignee, ok := req.NewAssignee(); ok && assignee != t.AssignedTo {
			if err := s.checkAssignee(ctx, t.CompanyID, assignee); err != nil {
				return task.TaskResponse{}, err
			}
			t.AssignedTo = assignee
		}
	}
	if status, ok := req.NewStatus(); ok {
		t.SetStatus(status, s.now())
	}

	if err := s.TaskRepository.Update(ctx, t); err != nil {
		return task.TaskResponse{}, err
	}
	return s.reload(ctx, t.ID)
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := access.AuthorizeTenant(actor, t.Resource()); err != nil {
		return err
	}

	return s.TaskRepository.Delete(ctx, id)
}

// AddComment implements task.TaskService.
func (s *TaskServiceImpl) AddComment(ctx context.Context, id string, req task.AddCommentRequest) (task.TaskResponse, error) {
	actor, err := access.ActorFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if !actor.IsSuperAdmin() && !actor.SameTenant(&t.CompanyID) {
		return task.TaskResponse{}, access.ErrForbidden
	}
	if actor.UserID != t.AssignedTo && actor.UserID != t.AssignedBy && !actor.Role.IsTenantManager() && !actor.IsSuperAdmin() {
		return task.TaskResponse{}, task.ErrCommentNotAllowed
	}

	if _, err := s.TaskRepository.AddComment(ctx, task.Comment{
		TaskID: t.ID,
		UserID: actor.UserID,
		Text:   req.Text,
	}); err != nil {
		return task.TaskResponse{}, err
	}
	return s.reload(ctx, t.ID)
}

// checkAssignee requires the user to exist and belong to companyID.
func (s *TaskServiceImpl) checkAssignee(ctx context.Context, companyID, userID string) error {
	assignee, err := s.UserRepository.GetByID(ctx, userID)
	if errors.Is(err, user.ErrUserNotFound) {
		return task.ErrAssigneeNotFound
	}
	if err != nil {
		return err
	}
	if assignee.CompanyID == nil || *assignee.CompanyID != companyID {
		return task.ErrAssigneeOutsideScope
	}
	return nil
}

func (s *TaskServiceImpl) reload(ctx context.Context, id string) (task.TaskResponse, error) {
	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return task.NewTaskResponse(t), nil
}
