package user

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserEmailExists      = errors.New("email already registered")
	ErrEmployeeCodeConflict = errors.New("could not allocate a unique employee code")
	ErrCompanyRequired      = errors.New("company is required for this role")
)

// ErrEmployeeCodeTaken is returned by the store when a generated code lost
// the race to another insert; callers regenerate and retry.
var ErrEmployeeCodeTaken = errors.New("employee code already taken")
