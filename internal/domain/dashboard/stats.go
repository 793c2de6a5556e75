package dashboard

import (
	"sort"
	"time"
)

const (
	// LeaveAccrualPerMonth is the number of leave days earned per month of service
	LeaveAccrualPerMonth = 2
	// MaxLeaveAllocation caps the accrued allocation
	MaxLeaveAllocation = 24
	// RecentPerKind is how many records of each kind feed the activity list
	RecentPerKind = 2
	// ActivityLimit is the length of the merged activity list
	ActivityLimit = 5
)

// CompleteMonths counts whole calendar months between from and to. A month
// is complete once the day of month of from has been reached again.
func CompleteMonths(from, to time.Time) int {
	to = to.In(from.Location())
	if to.Before(from) {
		return 0
	}

	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() && !isLastDayOfMonth(to) {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// LeaveBalance is the accrued allocation minus approved leaves, never below
// zero. Users without a joining date, or joining in the future, have none.
func LeaveBalance(joinedAt *time.Time, now time.Time, approved int64) int64 {
	if joinedAt == nil || joinedAt.After(now) {
		return 0
	}

	allocated := int64(CompleteMonths(*joinedAt, now) * LeaveAccrualPerMonth)
	if allocated > MaxLeaveAllocation {
		allocated = MaxLeaveAllocation
	}
	if balance := allocated - approved; balance > 0 {
		return balance
	}
	return 0
}

// MonthStart returns midnight of the first day of now's month.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// MergeActivity merges the lists newest first and keeps at most limit items.
func MergeActivity(limit int, lists ...[]Activity) []Activity {
	var merged []Activity
	for _, l := range lists {
		merged = append(merged, l...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

func isLastDayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 1).Month() != t.Month()
}
