package calendar

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	calendarerrors "hr-leave-agent/internal/calendar/errors"
	"hr-leave-agent/internal/employee"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type Service interface {
	GetTeamCalendar(ctx context.Context, teamName, month string) (TeamCalendarResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("calendar.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.service")
	}
	return &service{repo: repo, logger: l, now: time.Now}
}

func (s *service) GetTeamCalendar(ctx context.Context, teamName, month string) (TeamCalendarResponse, error) {
	if strings.TrimSpace(teamName) == "" {
		return TeamCalendarResponse{}, calendarerrors.ErrTeamNameRequired
	}
	team, ok := employee.ParseTeam(teamName)
	if !ok {
		s.logger.Warn("get team calendar unknown team", zap.String("team_name", teamName))
		return TeamCalendarResponse{}, calendarerrors.ErrUnknownTeam
	}

	year, m, err := parseMonth(month, s.now().Year())
	if err != nil {
		return TeamCalendarResponse{}, err
	}

	from := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	entries, err := s.repo.FindByTeamAndRange(ctx, team, from, to)
	if err != nil {
		return TeamCalendarResponse{}, err
	}

	resp := TeamCalendarResponse{
		Team:        string(team),
		Month:       fmt.Sprintf("%04d-%02d", year, int(m)),
		OutOfOffice: make([]EntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.OutOfOffice = append(resp.OutOfOffice, EntryResponse{
			EmployeeID:   e.EmployeeID,
			EmployeeName: e.EmployeeName,
			StartDate:    e.StartDate.Format(dateLayout),
			EndDate:      e.EndDate.Format(dateLayout),
			LeaveType:    string(e.LeaveType),
		})
	}
	if len(resp.OutOfOffice) == 0 {
		resp.Note = "Nobody scheduled off."
	}

	s.logger.Debug("get team calendar success",
		zap.String("team", string(team)),
		zap.String("month", resp.Month),
		zap.Int("entries", len(resp.OutOfOffice)),
	)
	return resp, nil
}

// parseMonth accepts "2026-03", "March", "march 2026", "Mar 2026" or "3".
// defaultYear fills in when the input names no year.
func parseMonth(input string, defaultYear int) (int, time.Month, error) {
	v := strings.TrimSpace(input)
	if v == "" {
		return 0, 0, calendarerrors.ErrMonthRequired
	}

	if t, err := time.Parse("2006-01", v); err == nil {
		return t.Year(), t.Month(), nil
	}

	for _, layout := range []string{"January 2006", "Jan 2006"} {
		if t, err := time.Parse(layout, normalizeMonthName(v)); err == nil {
			return t.Year(), t.Month(), nil
		}
	}

	if t, err := time.Parse("January", normalizeMonthName(v)); err == nil {
		return defaultYear, t.Month(), nil
	}
	if t, err := time.Parse("Jan", normalizeMonthName(v)); err == nil {
		return defaultYear, t.Month(), nil
	}

	if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 12 {
		return defaultYear, time.Month(n), nil
	}

	return 0, 0, calendarerrors.ErrInvalidMonth
}

// normalizeMonthName title-cases the month word so time.Parse accepts it.
func normalizeMonthName(v string) string {
	fields := strings.Fields(strings.ToLower(v))
	if len(fields) == 0 {
		return v
	}
	fields[0] = strings.ToUpper(fields[0][:1]) + fields[0][1:]
	return strings.Join(fields, " ")
}
