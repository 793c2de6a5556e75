package attendance

import "errors"

// Attendance domain errors
var (
	// Session errors
	ErrAlreadyCheckedIn = errors.New("you are already checked in")
	ErrNotCheckedIn     = errors.New("you are not checked in")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
