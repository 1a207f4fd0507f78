package leave

const (
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

type SubmitLeaveRequest struct {
	EmployeeID string
	LeaveType  string
	StartDate  string
	EndDate    string
}

// SubmitLeaveResponse covers both business outcomes: an approval (with the
// post-deduction balance and a request ID) or a denial (with the shortfall
// and no mutation). Denial is a valid outcome, not a fault.
type SubmitLeaveResponse struct {
	Status           string `json:"status"`
	RequestID        string `json:"request_id,omitempty"`
	EmployeeID       string `json:"employee_id"`
	Name             string `json:"name"`
	LeaveType        string `json:"leave_type"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	DaysRequested    int    `json:"days_requested"`
	RemainingBalance int    `json:"remaining_balance"`
	ShortfallDays    int    `json:"shortfall_days,omitempty"`
	Reason           string `json:"reason,omitempty"`
	Message          string `json:"message,omitempty"`
}

func (r SubmitLeaveResponse) Denied() bool {
	return r.Status == StatusDenied
}
