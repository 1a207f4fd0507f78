package employee

// BalanceResponse is the CheckLeaveBalance payload: the remaining days per
// leave type plus identifying fields for response synthesis downstream.
type BalanceResponse struct {
	EmployeeID      string         `json:"employee_id"`
	Name            string         `json:"name"`
	Team            string         `json:"team"`
	Role            string         `json:"role"`
	Balances        map[string]int `json:"balances"`
	AnnualAllowance map[string]int `json:"annual_allowance"`
}
