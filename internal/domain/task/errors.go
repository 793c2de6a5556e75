package task

import "errors"

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrAssigneeNotFound     = errors.New("assigned user not found")
	ErrAssigneeOutsideScope = errors.New("cannot assign tasks to users outside your company")
	ErrCommentNotAllowed    = errors.New("not authorized to comment on this task")
)
