package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/announcement"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/company"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/task"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Authentication
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, access.ErrUnauthenticated):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTooManyRequests):
		TooManyRequests(w, err.Error())

	// Authorization
	case errors.Is(err, access.ErrForbidden),
		errors.Is(err, access.ErrTenantRequired),
		errors.Is(err, access.ErrRoleChangeDenied),
		errors.Is(err, access.ErrSelfDeletion),
		errors.Is(err, task.ErrAssigneeOutsideScope),
		errors.Is(err, task.ErrCommentNotAllowed):
		Forbidden(w, err.Error())

	// Not found
	case errors.Is(err, access.ErrRecordNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, company.ErrCompanyNotFound),
		errors.Is(err, attendance.ErrAttendanceNotFound),
		errors.Is(err, leave.ErrLeaveNotFound),
		errors.Is(err, task.ErrTaskNotFound),
		errors.Is(err, task.ErrAssigneeNotFound),
		errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, err.Error())

	// Conflicts
	case errors.Is(err, user.ErrUserEmailExists),
		errors.Is(err, user.ErrEmployeeCodeConflict),
		errors.Is(err, user.ErrEmployeeCodeTaken),
		errors.Is(err, user.ErrCompanyRequired),
		errors.Is(err, company.ErrCompanyNameExists),
		errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrNotCheckedIn),
		errors.Is(err, access.ErrAdminDeletion),
		errors.Is(err, access.ErrLeaveNotPending):
		Conflict(w, err.Error())

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
