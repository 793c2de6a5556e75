package dashboard

import "time"

// ActivityKind names the source collection of an activity item
type ActivityKind string

const (
	ActivityAttendance ActivityKind = "attendance"
	ActivityLeave      ActivityKind = "leave"
	ActivityTask       ActivityKind = "task"
)

// Activity is one entry of the recent activity feed
type Activity struct {
	Kind     ActivityKind
	Title    string
	Date     time.Time
	Status   string
	Priority string
}

type ActivityItem struct {
	Type     ActivityKind `json:"type"`
	Title    string       `json:"title"`
	Date     string       `json:"date"`
	Status   string       `json:"status"`
	Priority string       `json:"priority,omitempty"`
}

type StatsResponse struct {
	AttendanceCount int64          `json:"attendance_count"`
	LeaveBalance    int64          `json:"leave_balance"`
	PendingTasks    int64          `json:"pending_tasks"`
	TotalEmployees  int64          `json:"total_employees"`
	Activity        []ActivityItem `json:"activity"`
}

func NewActivityItems(activity []Activity) []ActivityItem {
	items := make([]ActivityItem, 0, len(activity))
	for _, a := range activity {
		items = append(items, ActivityItem{
			Type:     a.Kind,
			Title:    a.Title,
			Date:     a.Date.Format(time.RFC3339),
			Status:   a.Status,
			Priority: a.Priority,
		})
	}
	return items
}
