package events

import "time"

const LeaveDecidedTopic = "hr.leave.decision.v1"

const (
	LeaveEventApproved = "leave_request.approved"
	LeaveEventDenied   = "leave_request.denied"
)

type LeaveDecidedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Team       string    `json:"team"`
	LeaveType  string    `json:"leave_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Days       int       `json:"days"`
	OccurredAt time.Time `json:"occurred_at"`
}
