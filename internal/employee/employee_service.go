package employee

import (
	"context"
	"errors"

	employeeerrors "hr-leave-agent/internal/employee/errors"

	"go.uber.org/zap"
)

// Annual grants per leave type, mirrored from company policy.
var annualAllowance = map[LeaveType]int{
	LeavePTO:      20,
	LeaveSick:     5,
	LeavePersonal: 3,
}

type Service interface {
	CheckLeaveBalance(ctx context.Context, employeeID string) (BalanceResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) CheckLeaveBalance(ctx context.Context, employeeID string) (BalanceResponse, error) {
	if employeeID == "" {
		return BalanceResponse{}, employeeerrors.ErrEmployeeIDRequired
	}

	e, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			s.logger.Warn("check leave balance unknown employee", zap.String("employee_id", employeeID))
			return BalanceResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return BalanceResponse{}, err
	}

	balances := make(map[string]int, len(e.Balances))
	allowance := make(map[string]int, len(annualAllowance))
	for _, lt := range LeaveTypes() {
		balances[string(lt)] = e.Balances[lt]
		allowance[string(lt)] = annualAllowance[lt]
	}

	s.logger.Debug("check leave balance success", zap.String("employee_id", employeeID))
	return BalanceResponse{
		EmployeeID:      e.ID,
		Name:            e.FullName,
		Team:            string(e.Team),
		Role:            e.Role,
		Balances:        balances,
		AnnualAllowance: allowance,
	}, nil
}
