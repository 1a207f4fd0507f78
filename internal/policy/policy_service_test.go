package policy_test

import (
	"context"
	"errors"
	"testing"

	"hr-leave-agent/internal/policy"
	policyerrors "hr-leave-agent/internal/policy/errors"
	"hr-leave-agent/internal/seed"
	"hr-leave-agent/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func newPolicyService() policy.Service {
	return policy.NewService(policy.NewInMemoryRepository(seed.Policies()))
}

func TestPolicyService_GetCompanyPolicy(t *testing.T) {
	ctx := context.Background()
	svc := newPolicyService()

	t.Run("matches normalized multi-word topic", func(t *testing.T) {
		resp, err := svc.GetCompanyPolicy(ctx, "remote work")
		assert.NoError(t, err)
		assert.Equal(t, "remote_work", resp.Topic)
		assert.Contains(t, resp.Policy, "2 days/week remote")
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		resp, err := svc.GetCompanyPolicy(ctx, "Remote Work")
		assert.NoError(t, err)
		assert.Equal(t, "remote_work", resp.Topic)
	})

	t.Run("matches when query contains the topic", func(t *testing.T) {
		resp, err := svc.GetCompanyPolicy(ctx, "what is the parental leave situation")
		assert.NoError(t, err)
		assert.Equal(t, "parental", resp.Topic)
	})

	t.Run("matches when topic contains the query", func(t *testing.T) {
		resp, err := svc.GetCompanyPolicy(ctx, "sick")
		assert.NoError(t, err)
		assert.Equal(t, "sick_leave", resp.Topic)
	})

	t.Run("first match in fixed order wins", func(t *testing.T) {
		// "pto" is a substring of no other topic, but a generic "leave" query
		// hits sick_leave before parental because of enumeration order.
		resp, err := svc.GetCompanyPolicy(ctx, "leave")
		assert.NoError(t, err)
		assert.Equal(t, "sick_leave", resp.Topic)
	})

	t.Run("no match echoes the topic", func(t *testing.T) {
		_, err := svc.GetCompanyPolicy(ctx, "xyz-nonexistent")
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeNotFound, appErr.Code)
		assert.Contains(t, appErr.Message, "xyz-nonexistent")
		assert.Contains(t, appErr.Message, "remote_work")
	})

	t.Run("empty topic yields InvalidInput", func(t *testing.T) {
		_, err := svc.GetCompanyPolicy(ctx, "   ")
		assert.True(t, errors.Is(err, policyerrors.ErrTopicRequired))
	})
}
