package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func TestCompleteMonths(t *testing.T) {
	cases := []struct {
		name     string
		from, to time.Time
		want     int
	}{
		{"same day", date(2025, 1, 15), date(2025, 1, 15), 0},
		{"one day short", date(2025, 1, 15), date(2025, 2, 14), 0},
		{"exactly one month", date(2025, 1, 15), date(2025, 2, 15), 1},
		{"three months", date(2025, 2, 10), date(2025, 5, 10), 3},
		{"across years", date(2024, 11, 1), date(2025, 2, 1), 3},
		{"month end to shorter month", date(2025, 1, 31), date(2025, 2, 28), 1},
		{"future", date(2025, 6, 1), date(2025, 5, 1), 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CompleteMonths(c.from, c.to), c.name)
	}
}

func TestLeaveBalance(t *testing.T) {
	now := date(2025, 5, 10)

	joined := date(2025, 2, 10)
	assert.Equal(t, int64(5), LeaveBalance(&joined, now, 1), "three months, one approved")

	veteran := date(2019, 1, 1)
	assert.Equal(t, int64(24), LeaveBalance(&veteran, now, 0), "capped allocation")
	assert.Equal(t, int64(0), LeaveBalance(&veteran, now, 30), "never negative")

	future := date(2025, 7, 1)
	assert.Equal(t, int64(0), LeaveBalance(&future, now, 0))
	assert.Equal(t, int64(0), LeaveBalance(nil, now, 0))
}

func TestMonthStart(t *testing.T) {
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), MonthStart(date(2025, 5, 31)))
}

func TestMergeActivity(t *testing.T) {
	attendance := []Activity{
		{Kind: ActivityAttendance, Title: "Checked In", Date: date(2025, 5, 9)},
		{Kind: ActivityAttendance, Title: "Checked Out", Date: date(2025, 5, 2)},
	}
	leaves := []Activity{
		{Kind: ActivityLeave, Title: "Leave Request (Sick)", Date: date(2025, 5, 8)},
	}
	tasks := []Activity{
		{Kind: ActivityTask, Title: "Quarterly report", Date: date(2025, 5, 10)},
		{Kind: ActivityTask, Title: "Onboarding", Date: date(2025, 5, 1)},
	}

	got := MergeActivity(ActivityLimit, attendance, leaves, tasks)

	var titles []string
	for _, a := range got {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{"Quarterly report", "Checked In", "Leave Request (Sick)", "Checked Out", "Onboarding"}, titles)

	assert.Len(t, MergeActivity(3, attendance, leaves, tasks), 3)
	assert.Empty(t, MergeActivity(ActivityLimit))
}
