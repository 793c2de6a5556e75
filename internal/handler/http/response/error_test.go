package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/access"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/task"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", validator.ValidationErrors{{Field: "email", Message: "invalid email format"}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"bad credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"no actor", access.ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"rate limited", auth.ErrTooManyRequests, http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"other tenant", access.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"self deletion", access.ErrSelfDeletion, http.StatusForbidden, "FORBIDDEN"},
		{"foreign assignee", task.ErrAssigneeOutsideScope, http.StatusForbidden, "FORBIDDEN"},
		{"wrapped not found", fmt.Errorf("get task: %w", task.ErrTaskNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"missing user", user.ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"double check-in", attendance.ErrAlreadyCheckedIn, http.StatusBadRequest, "CONFLICT"},
		{"admin deletion", access.ErrAdminDeletion, http.StatusBadRequest, "CONFLICT"},
		{"duplicate email", user.ErrUserEmailExists, http.StatusBadRequest, "CONFLICT"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, c.code, body.Error.Code)
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "password", Message: "password must be at least 6 characters"},
	})

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{
		"name":     "name is required",
		"password": "password must be at least 6 characters",
	}, body.Error.Details)
}

func TestHandleError_HidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("pq: password authentication failed"))

	assert.NotContains(t, rec.Body.String(), "password authentication")
}
