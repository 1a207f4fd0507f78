package leave

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hr-leave-agent/internal/calendar"
	"hr-leave-agent/internal/employee"
	"hr-leave-agent/internal/events"
	leaveerrors "hr-leave-agent/internal/leave/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type Service interface {
	Submit(ctx context.Context, req SubmitLeaveRequest) (SubmitLeaveResponse, error)
}

type service struct {
	employees employee.Repository
	calendars calendar.Repository
	publisher EventPublisher
	logger    *zap.Logger
}

func NewService(employees employee.Repository, calendars calendar.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		employees: employees,
		calendars: calendars,
		publisher: NewNoopEventPublisher(),
		logger:    l,
	}
}

func NewServiceWithEvents(
	employees employee.Repository,
	calendars calendar.Repository,
	publisher EventPublisher,
	logger ...*zap.Logger,
) Service {
	s := NewService(employees, calendars, logger...).(*service)
	if publisher != nil {
		s.publisher = publisher
	}
	return s
}

func (s *service) Submit(ctx context.Context, req SubmitLeaveRequest) (SubmitLeaveResponse, error) {
	s.logger.Debug("submit leave requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	leaveType, startDate, endDate, err := validateSubmitRequest(req)
	if err != nil {
		s.logger.Warn("submit leave validation failed", zap.Error(err))
		return SubmitLeaveResponse{}, err
	}

	emp, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrRecordNotFound) {
			return SubmitLeaveResponse{}, leaveerrors.ErrEmployeeNotFound
		}
		return SubmitLeaveResponse{}, err
	}

	// Inclusive span, never below one day.
	days := int(endDate.Sub(startDate).Hours()/24) + 1
	if days < 1 {
		days = 1
	}

	outcome, err := s.employees.DeductBalance(ctx, emp.ID, leaveType, days)
	if err != nil {
		s.logger.Error("submit leave deduct failed", zap.Error(err))
		return SubmitLeaveResponse{}, err
	}

	resp := SubmitLeaveResponse{
		EmployeeID:    emp.ID,
		Name:          emp.FullName,
		LeaveType:     string(leaveType),
		StartDate:     startDate.Format(dateLayout),
		EndDate:       endDate.Format(dateLayout),
		DaysRequested: days,
	}

	if !outcome.OK {
		resp.Status = StatusDenied
		resp.RemainingBalance = outcome.Remaining
		resp.ShortfallDays = days - outcome.Remaining
		resp.Reason = fmt.Sprintf(
			"insufficient balance: requested %d %s day(s) but only %d remaining",
			days, leaveType, outcome.Remaining,
		)
		s.logger.Info("submit leave denied",
			zap.String("employee_id", emp.ID),
			zap.String("leave_type", string(leaveType)),
			zap.Int("requested_days", days),
			zap.Int("remaining", outcome.Remaining),
		)
		s.publishDecision(ctx, events.LeaveEventDenied, resp, emp.Team)
		return resp, nil
	}

	entry := calendar.Entry{
		ID:           uuid.New().String(),
		Team:         emp.Team,
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		StartDate:    startDate,
		EndDate:      endDate,
		LeaveType:    leaveType,
	}
	if err := s.calendars.Append(ctx, entry); err != nil {
		s.logger.Error("submit leave calendar append failed", zap.Error(err))
		return SubmitLeaveResponse{}, err
	}

	resp.Status = StatusApproved
	resp.RequestID = newRequestID(emp.ID, startDate)
	resp.RemainingBalance = outcome.Remaining
	resp.Message = fmt.Sprintf(
		"Leave request %s approved: %d %s day(s) deducted, %d remaining.",
		resp.RequestID, days, leaveType, outcome.Remaining,
	)

	s.logger.Info("submit leave approved",
		zap.String("request_id", resp.RequestID),
		zap.String("employee_id", emp.ID),
		zap.String("leave_type", string(leaveType)),
		zap.Int("days", days),
		zap.Int("remaining", outcome.Remaining),
	)
	s.publishDecision(ctx, events.LeaveEventApproved, resp, emp.Team)
	return resp, nil
}

// publishDecision is best-effort: a broker outage must not fail the request.
func (s *service) publishDecision(ctx context.Context, eventType string, resp SubmitLeaveResponse, team employee.Team) {
	err := s.publisher.PublishLeaveDecided(ctx, events.LeaveDecidedEvent{
		EventType:  eventType,
		RequestID:  resp.RequestID,
		EmployeeID: resp.EmployeeID,
		Team:       string(team),
		LeaveType:  resp.LeaveType,
		StartDate:  resp.StartDate,
		EndDate:    resp.EndDate,
		Days:       resp.DaysRequested,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn("publish leave decision failed",
			zap.String("event_type", eventType),
			zap.String("employee_id", resp.EmployeeID),
			zap.Error(err),
		)
	}
}

func validateSubmitRequest(req SubmitLeaveRequest) (employee.LeaveType, time.Time, time.Time, error) {
	if strings.TrimSpace(req.EmployeeID) == "" {
		return "", time.Time{}, time.Time{}, leaveerrors.ErrEmployeeIDRequired
	}
	leaveType, ok := employee.ParseLeaveType(req.LeaveType)
	if !ok {
		return "", time.Time{}, time.Time{}, leaveerrors.ErrUnknownLeaveType
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return "", time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return "", time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return "", time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return leaveType, startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

// newRequestID follows the LR-<year>-<empnum>-<yyyymmdd> convention used on
// confirmation emails.
func newRequestID(employeeID string, startDate time.Time) string {
	suffix := employeeID
	if len(suffix) > 3 {
		suffix = suffix[len(suffix)-3:]
	}
	return fmt.Sprintf("LR-%d-%s-%s", startDate.Year(), suffix, startDate.Format("20060102"))
}
