package leave_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hr-leave-agent/internal/calendar"
	"hr-leave-agent/internal/employee"
	"hr-leave-agent/internal/events"
	"hr-leave-agent/internal/leave"
	leaveerrors "hr-leave-agent/internal/leave/errors"

	"github.com/stretchr/testify/assert"
)

type fakeEventPublisher struct {
	published []events.LeaveDecidedEvent
	err       error
}

func (f *fakeEventPublisher) PublishLeaveDecided(_ context.Context, event events.LeaveDecidedEvent) error {
	f.published = append(f.published, event)
	return f.err
}

type leaveServiceDeps struct {
	employees employee.Repository
	calendars calendar.Repository
	publisher *fakeEventPublisher
	service   leave.Service
}

func setupLeaveServiceTest(t *testing.T, ptoBalance int) *leaveServiceDeps {
	t.Helper()

	employees := employee.NewInMemoryRepository([]employee.Employee{
		{
			ID: "E003", FullName: "Sarah Johnson", Team: employee.TeamMarketing, Role: "Content Manager",
			Balances: map[employee.LeaveType]int{employee.LeavePTO: ptoBalance, employee.LeaveSick: 4, employee.LeavePersonal: 2},
		},
	})
	calendars := calendar.NewInMemoryRepository(nil)
	publisher := &fakeEventPublisher{}

	return &leaveServiceDeps{
		employees: employees,
		calendars: calendars,
		publisher: publisher,
		service:   leave.NewServiceWithEvents(employees, calendars, publisher),
	}
}

func TestLeaveService_Submit_Approved(t *testing.T) {
	ctx := context.Background()
	deps := setupLeaveServiceTest(t, 5)

	resp, err := deps.service.Submit(ctx, leave.SubmitLeaveRequest{
		EmployeeID: "E003",
		LeaveType:  "PTO",
		StartDate:  "2024-03-10",
		EndDate:    "2024-03-12",
	})
	assert.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, resp.Status)
	assert.Equal(t, 3, resp.DaysRequested)
	assert.Equal(t, 2, resp.RemainingBalance)
	assert.Equal(t, "LR-2024-003-20240310", resp.RequestID)

	// Balance deducted exactly once.
	e, err := deps.employees.FindByID(ctx, "E003")
	assert.NoError(t, err)
	assert.Equal(t, 2, e.Balances[employee.LeavePTO])

	// Calendar entry booked on the employee's team.
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	entries, err := deps.calendars.FindByTeamAndRange(ctx, employee.TeamMarketing, from, to)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "E003", entries[0].EmployeeID)
	assert.Equal(t, employee.LeavePTO, entries[0].LeaveType)
	assert.Equal(t, "2024-03-10", entries[0].StartDate.Format("2006-01-02"))
	assert.Equal(t, "2024-03-12", entries[0].EndDate.Format("2006-01-02"))

	// Approval event published.
	assert.Len(t, deps.publisher.published, 1)
	assert.Equal(t, events.LeaveEventApproved, deps.publisher.published[0].EventType)
	assert.Equal(t, 3, deps.publisher.published[0].Days)
}

func TestLeaveService_Submit_Denied(t *testing.T) {
	ctx := context.Background()
	deps := setupLeaveServiceTest(t, 2)

	resp, err := deps.service.Submit(ctx, leave.SubmitLeaveRequest{
		EmployeeID: "E003",
		LeaveType:  "PTO",
		StartDate:  "2024-03-10",
		EndDate:    "2024-03-12",
	})
	assert.NoError(t, err)
	assert.Equal(t, leave.StatusDenied, resp.Status)
	assert.True(t, resp.Denied())
	assert.Equal(t, 3, resp.DaysRequested)
	assert.Equal(t, 2, resp.RemainingBalance)
	assert.Equal(t, 1, resp.ShortfallDays)
	assert.Contains(t, resp.Reason, "insufficient balance")
	assert.Empty(t, resp.RequestID)

	// No side effect on denial: balance and calendar untouched.
	e, err := deps.employees.FindByID(ctx, "E003")
	assert.NoError(t, err)
	assert.Equal(t, 2, e.Balances[employee.LeavePTO])

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	entries, err := deps.calendars.FindByTeamAndRange(ctx, employee.TeamMarketing, from, to)
	assert.NoError(t, err)
	assert.Empty(t, entries)

	// Denial is still a decision event.
	assert.Len(t, deps.publisher.published, 1)
	assert.Equal(t, events.LeaveEventDenied, deps.publisher.published[0].EventType)
}

func TestLeaveService_Submit_SingleDayMinimum(t *testing.T) {
	ctx := context.Background()
	deps := setupLeaveServiceTest(t, 5)

	resp, err := deps.service.Submit(ctx, leave.SubmitLeaveRequest{
		EmployeeID: "E003",
		LeaveType:  "Sick",
		StartDate:  "2024-04-01",
		EndDate:    "2024-04-01",
	})
	assert.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, resp.Status)
	assert.Equal(t, 1, resp.DaysRequested)
	assert.Equal(t, 3, resp.RemainingBalance)
}

func TestLeaveService_Submit_LeaveTypeAliases(t *testing.T) {
	ctx := context.Background()
	deps := setupLeaveServiceTest(t, 5)

	resp, err := deps.service.Submit(ctx, leave.SubmitLeaveRequest{
		EmployeeID: "E003",
		LeaveType:  "vacation",
		StartDate:  "2024-05-06",
		EndDate:    "2024-05-07",
	})
	assert.NoError(t, err)
	assert.Equal(t, "PTO", resp.LeaveType)
	assert.Equal(t, 3, resp.RemainingBalance)
}

func TestLeaveService_Submit_Validation(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		req     leave.SubmitLeaveRequest
		wantErr error
	}{
		{
			name:    "missing employee id",
			req:     leave.SubmitLeaveRequest{LeaveType: "PTO", StartDate: "2024-03-10", EndDate: "2024-03-12"},
			wantErr: leaveerrors.ErrEmployeeIDRequired,
		},
		{
			name:    "unknown leave type",
			req:     leave.SubmitLeaveRequest{EmployeeID: "E003", LeaveType: "sabbatical", StartDate: "2024-03-10", EndDate: "2024-03-12"},
			wantErr: leaveerrors.ErrUnknownLeaveType,
		},
		{
			name:    "bad start date",
			req:     leave.SubmitLeaveRequest{EmployeeID: "E003", LeaveType: "PTO", StartDate: "March 10", EndDate: "2024-03-12"},
			wantErr: leaveerrors.ErrInvalidDateFormat,
		},
		{
			name:    "bad end date",
			req:     leave.SubmitLeaveRequest{EmployeeID: "E003", LeaveType: "PTO", StartDate: "2024-03-10", EndDate: "12-03-2024"},
			wantErr: leaveerrors.ErrInvalidDateFormat,
		},
		{
			name:    "end before start",
			req:     leave.SubmitLeaveRequest{EmployeeID: "E003", LeaveType: "PTO", StartDate: "2024-03-12", EndDate: "2024-03-10"},
			wantErr: leaveerrors.ErrInvalidDateRange,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deps := setupLeaveServiceTest(t, 5)

			_, err := deps.service.Submit(ctx, tc.req)
			assert.True(t, errors.Is(err, tc.wantErr))

			// Validation failures must never mutate state.
			e, findErr := deps.employees.FindByID(ctx, "E003")
			assert.NoError(t, findErr)
			assert.Equal(t, 5, e.Balances[employee.LeavePTO])
			assert.Empty(t, deps.publisher.published)
		})
	}
}

func TestLeaveService_Submit_UnknownEmployee(t *testing.T) {
	deps := setupLeaveServiceTest(t, 5)

	_, err := deps.service.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: "E999",
		LeaveType:  "PTO",
		StartDate:  "2024-03-10",
		EndDate:    "2024-03-12",
	})
	assert.True(t, errors.Is(err, leaveerrors.ErrEmployeeNotFound))
}

func TestLeaveService_Submit_PublisherFailureDoesNotFailRequest(t *testing.T) {
	ctx := context.Background()
	deps := setupLeaveServiceTest(t, 5)
	deps.publisher.err = errors.New("broker down")

	resp, err := deps.service.Submit(ctx, leave.SubmitLeaveRequest{
		EmployeeID: "E003",
		LeaveType:  "PTO",
		StartDate:  "2024-03-10",
		EndDate:    "2024-03-11",
	})
	assert.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, resp.Status)
}
