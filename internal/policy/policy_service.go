package policy

import (
	"context"
	"strings"

	policyerrors "hr-leave-agent/internal/policy/errors"

	"go.uber.org/zap"
)

type PolicyResponse struct {
	Topic  string `json:"topic"`
	Policy string `json:"policy"`
}

type Service interface {
	GetCompanyPolicy(ctx context.Context, topic string) (PolicyResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("policy.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("policy.service")
	}
	return &service{repo: repo, logger: l}
}

// GetCompanyPolicy matches the topic case-insensitively in both directions
// ("remote" hits remote_work, "remote work policy" does too). The first match
// in the repository's fixed order wins.
func (s *service) GetCompanyPolicy(ctx context.Context, topic string) (PolicyResponse, error) {
	query := normalizeTopic(topic)
	if query == "" {
		return PolicyResponse{}, policyerrors.ErrTopicRequired
	}

	policies, err := s.repo.List(ctx)
	if err != nil {
		return PolicyResponse{}, err
	}

	for _, p := range policies {
		if strings.Contains(query, p.Topic) || strings.Contains(p.Topic, query) {
			s.logger.Debug("get company policy matched",
				zap.String("query", topic),
				zap.String("topic", p.Topic),
			)
			return PolicyResponse{Topic: p.Topic, Policy: p.Body}, nil
		}
	}

	topics, err := s.repo.Topics(ctx)
	if err != nil {
		return PolicyResponse{}, err
	}
	s.logger.Warn("get company policy no match", zap.String("query", topic))
	return PolicyResponse{}, policyerrors.PolicyNotFound(topic, topics)
}

func normalizeTopic(topic string) string {
	v := strings.ToLower(strings.TrimSpace(topic))
	return strings.ReplaceAll(v, " ", "_")
}
