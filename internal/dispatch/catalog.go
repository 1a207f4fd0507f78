package dispatch

import (
	"strconv"
	"time"

	"hr-leave-agent/internal/shared/apperror"
)

// Action is the closed set of operations the dispatcher can route to. Adding
// an action means extending this enum, the catalog, and the dispatcher's
// switch together.
type Action string

const (
	ActionCheckLeaveBalance  Action = "check_leave_balance"
	ActionSubmitLeaveRequest Action = "submit_leave_request"
	ActionGetCompanyPolicy   Action = "get_company_policy"
	ActionGetTeamCalendar    Action = "get_team_calendar"
)

type ParamType string

const (
	ParamString  ParamType = "string"
	ParamInteger ParamType = "integer"
	ParamDate    ParamType = "date"
)

type ParameterSpec struct {
	Name        string    `json:"name"`
	Type        ParamType `json:"type"`
	Required    bool      `json:"required"`
	Description string    `json:"description"`
}

// ActionSpec is the contract between the dispatcher and its caller. The
// descriptions are consumed verbatim by the external intent classifier.
type ActionSpec struct {
	Name        Action          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterSpec `json:"parameters"`
}

var catalog = []ActionSpec{
	{
		Name:        ActionCheckLeaveBalance,
		Description: "Look up how many PTO, sick and personal days an employee has remaining.",
		Parameters: []ParameterSpec{
			{Name: "employee_id", Type: ParamString, Required: true, Description: "Employee identifier, e.g. E001"},
		},
	},
	{
		Name:        ActionSubmitLeaveRequest,
		Description: "Submit a leave request for an employee over a date range. Deducts the balance and books the team calendar when approved.",
		Parameters: []ParameterSpec{
			{Name: "employee_id", Type: ParamString, Required: true, Description: "Employee identifier, e.g. E001"},
			{Name: "leave_type", Type: ParamString, Required: true, Description: "One of PTO, Sick or Personal"},
			{Name: "start_date", Type: ParamDate, Required: true, Description: "First day of leave, YYYY-MM-DD"},
			{Name: "end_date", Type: ParamDate, Required: true, Description: "Last day of leave, YYYY-MM-DD"},
		},
	},
	{
		Name:        ActionGetCompanyPolicy,
		Description: "Retrieve the company policy text for a topic such as pto, sick leave, remote work, bereavement or parental leave.",
		Parameters: []ParameterSpec{
			{Name: "topic", Type: ParamString, Required: true, Description: "Free-text policy topic keyword"},
		},
	},
	{
		Name:        ActionGetTeamCalendar,
		Description: "List who on a team is out of office during a given month.",
		Parameters: []ParameterSpec{
			{Name: "team_name", Type: ParamString, Required: true, Description: "One of engineering, marketing or sales"},
			{Name: "month", Type: ParamString, Required: true, Description: "Month, e.g. 2026-03 or March 2026"},
		},
	},
}

// Catalog returns the action specs in their fixed order.
func Catalog() []ActionSpec {
	out := make([]ActionSpec, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup resolves an action name against the catalog.
func Lookup(name string) (ActionSpec, bool) {
	for _, spec := range catalog {
		if string(spec.Name) == name {
			return spec, true
		}
	}
	return ActionSpec{}, false
}

// ValidateParams enforces presence of required parameters and that typed
// parameters parse. Business-level validation stays in the operations.
func ValidateParams(spec ActionSpec, params map[string]string) error {
	for _, p := range spec.Parameters {
		v, ok := params[p.Name]
		if !ok || v == "" {
			if p.Required {
				return apperror.RequiredField(p.Name)
			}
			continue
		}
		switch p.Type {
		case ParamInteger:
			if _, err := strconv.Atoi(v); err != nil {
				return apperror.InvalidField(p.Name)
			}
		case ParamDate:
			if _, err := time.Parse("2006-01-02", v); err != nil {
				return apperror.InvalidField(p.Name)
			}
		}
	}
	return nil
}
