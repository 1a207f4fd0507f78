package calendar

import (
	"time"

	"hr-leave-agent/internal/employee"
)

// Entry is one out-of-office span on a team calendar. Entries are immutable
// once appended; there is no deletion path.
type Entry struct {
	ID           string
	Team         employee.Team
	EmployeeID   string
	EmployeeName string
	StartDate    time.Time
	EndDate      time.Time
	LeaveType    employee.LeaveType
}
