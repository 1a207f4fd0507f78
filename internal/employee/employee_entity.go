package employee

import "strings"

// LeaveType is the closed set of leave categories balances are tracked under.
type LeaveType string

const (
	LeavePTO      LeaveType = "PTO"
	LeaveSick     LeaveType = "Sick"
	LeavePersonal LeaveType = "Personal"
)

// LeaveTypes lists all leave types in their fixed enumeration order.
func LeaveTypes() []LeaveType {
	return []LeaveType{LeavePTO, LeaveSick, LeavePersonal}
}

// ParseLeaveType resolves user-facing spellings, case-insensitively. The
// aliases match what the conversational layer has historically produced.
func ParseLeaveType(s string) (LeaveType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pto", "vacation":
		return LeavePTO, true
	case "sick", "sick_leave", "sick leave":
		return LeaveSick, true
	case "personal", "personal_day", "personal day":
		return LeavePersonal, true
	default:
		return "", false
	}
}

type Team string

const (
	TeamEngineering Team = "engineering"
	TeamMarketing   Team = "marketing"
	TeamSales       Team = "sales"
)

func Teams() []Team {
	return []Team{TeamEngineering, TeamMarketing, TeamSales}
}

func ParseTeam(s string) (Team, bool) {
	normalized := Team(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range Teams() {
		if t == normalized {
			return t, true
		}
	}
	return "", false
}

type Employee struct {
	ID       string
	FullName string
	Team     Team
	Role     string
	Balances map[LeaveType]int // remaining days, never negative
}
