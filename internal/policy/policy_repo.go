package policy

import "context"

// Policies are static for the process lifetime, so the repository takes no
// lock; the slice order is the deterministic tie-break order for matching.
type Repository interface {
	List(ctx context.Context) ([]Policy, error)
	Topics(ctx context.Context) ([]string, error)
}

type inMemoryRepository struct {
	policies []Policy
}

func NewInMemoryRepository(seed []Policy) Repository {
	policies := make([]Policy, len(seed))
	copy(policies, seed)
	return &inMemoryRepository{policies: policies}
}

func (r *inMemoryRepository) List(ctx context.Context) ([]Policy, error) {
	out := make([]Policy, len(r.policies))
	copy(out, r.policies)
	return out, nil
}

func (r *inMemoryRepository) Topics(ctx context.Context) ([]string, error) {
	topics := make([]string, len(r.policies))
	for i, p := range r.policies {
		topics[i] = p.Topic
	}
	return topics, nil
}
