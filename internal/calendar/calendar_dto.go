package calendar

type EntryResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	LeaveType    string `json:"leave_type"`
}

type TeamCalendarResponse struct {
	Team        string          `json:"team"`
	Month       string          `json:"month"` // normalized YYYY-MM
	OutOfOffice []EntryResponse `json:"out_of_office"`
	Note        string          `json:"note,omitempty"`
}
