// Package seed holds the fixed dataset the repositories are initialized from.
// All runtime mutations are lost on restart; that is a documented limitation
// of this system, not a bug.
package seed

import (
	"time"

	"hr-leave-agent/internal/calendar"
	"hr-leave-agent/internal/employee"
	"hr-leave-agent/internal/policy"

	"github.com/google/uuid"
)

func Employees() []employee.Employee {
	return []employee.Employee{
		{
			ID: "E001", FullName: "Priya Sharma", Team: employee.TeamEngineering, Role: "Senior Developer",
			Balances: map[employee.LeaveType]int{employee.LeavePTO: 12, employee.LeaveSick: 5, employee.LeavePersonal: 3},
		},
		{
			ID: "E002", FullName: "James Chen", Team: employee.TeamEngineering, Role: "DevOps Engineer",
			Balances: map[employee.LeaveType]int{employee.LeavePTO: 3, employee.LeaveSick: 5, employee.LeavePersonal: 3},
		},
		{
			ID: "E003", FullName: "Sarah Johnson", Team: employee.TeamMarketing, Role: "Content Manager",
			Balances: map[employee.LeaveType]int{employee.LeavePTO: 8, employee.LeaveSick: 4, employee.LeavePersonal: 2},
		},
		{
			ID: "E004", FullName: "Raj Patel", Team: employee.TeamEngineering, Role: "Junior Developer",
			Balances: map[employee.LeaveType]int{employee.LeavePTO: 0, employee.LeaveSick: 2, employee.LeavePersonal: 1},
		},
		{
			ID: "E005", FullName: "Maria Garcia", Team: employee.TeamSales, Role: "Account Executive",
			Balances: map[employee.LeaveType]int{employee.LeavePTO: 15, employee.LeaveSick: 5, employee.LeavePersonal: 3},
		},
	}
}

func Policies() []policy.Policy {
	return []policy.Policy{
		{
			Topic: "pto",
			Body: "Annual PTO allowance: 20 days for full-time employees, accrued at 1.67 days/month. " +
				"Requests of 1-2 days need 3 business days notice. Requests of 3+ days need 2 weeks notice. " +
				"Unused PTO carries over up to 5 days into the next calendar year. " +
				"No more than 10 consecutive business days without VP approval. Manager approval required for all requests.",
		},
		{
			Topic: "sick_leave",
			Body: "5 sick days per year, no advance notice needed but notify your manager by 9 AM. " +
				"Doctor's note required if you're out 3+ consecutive days. Sick days don't carry over.",
		},
		{
			Topic: "remote_work",
			Body: "Up to 2 days/week remote with manager approval. Core hours 10 AM - 4 PM ET. " +
				"VPN required for all remote access. Full-time remote needs VP sign-off.",
		},
		{
			Topic: "bereavement",
			Body: "5 paid days for immediate family (spouse, parent, child, sibling). " +
				"3 paid days for extended family. Does not count against PTO.",
		},
		{
			Topic: "parental",
			Body: "16 weeks fully paid for primary caregivers, 6 weeks for secondary. " +
				"Notify HR at least 30 days before expected start date.",
		},
	}
}

func CalendarEntries() []calendar.Entry {
	return []calendar.Entry{
		entry(employee.TeamEngineering, "E002", "James Chen", "2026-02-23", "2026-02-25", employee.LeavePTO),
		entry(employee.TeamEngineering, "E001", "Priya Sharma", "2026-03-09", "2026-03-13", employee.LeavePTO),
		entry(employee.TeamEngineering, "E004", "Raj Patel", "2026-03-16", "2026-03-16", employee.LeaveSick),
		entry(employee.TeamMarketing, "E003", "Sarah Johnson", "2026-03-02", "2026-03-06", employee.LeavePTO),
		entry(employee.TeamSales, "E005", "Maria Garcia", "2026-03-10", "2026-03-14", employee.LeavePTO),
	}
}

func entry(team employee.Team, employeeID, name, start, end string, lt employee.LeaveType) calendar.Entry {
	startDate, _ := time.Parse("2006-01-02", start)
	endDate, _ := time.Parse("2006-01-02", end)
	return calendar.Entry{
		ID:           uuid.New().String(),
		Team:         team,
		EmployeeID:   employeeID,
		EmployeeName: name,
		StartDate:    startDate,
		EndDate:      endDate,
		LeaveType:    lt,
	}
}
