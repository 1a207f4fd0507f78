package employee_test

import (
	"context"
	"errors"
	"testing"

	"hr-leave-agent/internal/employee"
	employeeerrors "hr-leave-agent/internal/employee/errors"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeService_CheckLeaveBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored balances with identifying fields", func(t *testing.T) {
		svc := employee.NewService(employee.NewInMemoryRepository(seedEmployees()))

		resp, err := svc.CheckLeaveBalance(ctx, "E001")
		assert.NoError(t, err)
		assert.Equal(t, "E001", resp.EmployeeID)
		assert.Equal(t, "Priya Sharma", resp.Name)
		assert.Equal(t, "engineering", resp.Team)
		assert.Equal(t, map[string]int{"PTO": 12, "Sick": 5, "Personal": 3}, resp.Balances)
		assert.Equal(t, 20, resp.AnnualAllowance["PTO"])
	})

	t.Run("is idempotent without intervening mutation", func(t *testing.T) {
		svc := employee.NewService(employee.NewInMemoryRepository(seedEmployees()))

		first, err := svc.CheckLeaveBalance(ctx, "E002")
		assert.NoError(t, err)
		second, err := svc.CheckLeaveBalance(ctx, "E002")
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("unknown employee yields NotFound", func(t *testing.T) {
		svc := employee.NewService(employee.NewInMemoryRepository(seedEmployees()))

		_, err := svc.CheckLeaveBalance(ctx, "E999")
		assert.True(t, errors.Is(err, employeeerrors.ErrEmployeeNotFound))
	})

	t.Run("empty employee id yields InvalidInput", func(t *testing.T) {
		svc := employee.NewService(employee.NewInMemoryRepository(seedEmployees()))

		_, err := svc.CheckLeaveBalance(ctx, "")
		assert.True(t, errors.Is(err, employeeerrors.ErrEmployeeIDRequired))
	})
}
