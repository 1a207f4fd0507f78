package dispatch

import (
	"context"

	"hr-leave-agent/internal/calendar"
	"hr-leave-agent/internal/employee"
	"hr-leave-agent/internal/leave"
	"hr-leave-agent/internal/policy"
	"hr-leave-agent/internal/shared/apperror"

	"go.uber.org/zap"
)

// Dispatcher is the single entry point of the core: it validates the action
// name and parameters, routes to the matching operation, and normalizes every
// outcome into a Result. It performs no business logic of its own and never
// lets an error escape the envelope.
type Dispatcher interface {
	Invoke(ctx context.Context, req ActionRequest) Result
}

type dispatcher struct {
	employees employee.Service
	leaves    leave.Service
	policies  policy.Service
	calendars calendar.Service
	logger    *zap.Logger
}

func NewDispatcher(
	employees employee.Service,
	leaves leave.Service,
	policies policy.Service,
	calendars calendar.Service,
	logger ...*zap.Logger,
) Dispatcher {
	l := zap.L().Named("dispatch")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dispatch")
	}
	return &dispatcher{
		employees: employees,
		leaves:    leaves,
		policies:  policies,
		calendars: calendars,
		logger:    l,
	}
}

func (d *dispatcher) Invoke(ctx context.Context, req ActionRequest) Result {
	spec, ok := Lookup(req.Action)
	if !ok {
		// Caller/catalog mismatch, worth surfacing as a configuration concern.
		d.logger.Warn("unknown action invoked", zap.String("action", req.Action))
		return errorResult(req.Action, apperror.UnknownAction(req.Action))
	}

	params := req.Parameters
	if params == nil {
		params = map[string]string{}
	}
	if err := ValidateParams(spec, params); err != nil {
		d.logger.Warn("action parameter validation failed",
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return errorResult(req.Action, err)
	}

	switch spec.Name {
	case ActionCheckLeaveBalance:
		payload, err := d.employees.CheckLeaveBalance(ctx, params["employee_id"])
		return d.wrap(req.Action, payload, false, err)

	case ActionSubmitLeaveRequest:
		payload, err := d.leaves.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: params["employee_id"],
			LeaveType:  params["leave_type"],
			StartDate:  params["start_date"],
			EndDate:    params["end_date"],
		})
		return d.wrap(req.Action, payload, payload.Denied(), err)

	case ActionGetCompanyPolicy:
		payload, err := d.policies.GetCompanyPolicy(ctx, params["topic"])
		return d.wrap(req.Action, payload, false, err)

	case ActionGetTeamCalendar:
		payload, err := d.calendars.GetTeamCalendar(ctx, params["team_name"], params["month"])
		return d.wrap(req.Action, payload, false, err)
	}

	// Unreachable while the catalog and this switch stay in lockstep.
	return errorResult(req.Action, apperror.UnknownAction(req.Action))
}

func (d *dispatcher) wrap(action string, payload any, denied bool, err error) Result {
	if err != nil {
		return errorResult(action, err)
	}
	status := StatusSuccess
	if denied {
		status = StatusDenied
	}
	return Result{
		Status:  status,
		Action:  action,
		Payload: payload,
	}
}

func errorResult(action string, err error) Result {
	httpErr := apperror.ToHTTP(err)
	return Result{
		Status:    StatusError,
		Action:    action,
		ErrorCode: httpErr.Code,
		Message:   httpErr.Message,
	}
}
