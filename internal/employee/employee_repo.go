package employee

import (
	"context"
	"errors"
	"sync"
)

// ErrRecordNotFound is the repository-level sentinel; services map it onto
// the apperror taxonomy.
var ErrRecordNotFound = errors.New("employee record not found")

// DeductOutcome reports the result of an atomic balance deduction. When OK is
// false the deduction was refused and Remaining holds the untouched balance.
type DeductOutcome struct {
	OK        bool
	Remaining int
}

type Repository interface {
	FindByID(ctx context.Context, id string) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	// DeductBalance atomically subtracts days from the employee's balance for
	// the given leave type. It refuses (OK=false, no mutation) when days
	// exceed the stored balance, so a balance can never go negative.
	DeductBalance(ctx context.Context, id string, leaveType LeaveType, days int) (DeductOutcome, error)
}

type inMemoryRepository struct {
	mu        sync.RWMutex
	employees map[string]*Employee
	order     []string
}

// NewInMemoryRepository seeds the repository once; it is the sole owner of
// employee state for the process lifetime.
func NewInMemoryRepository(seed []Employee) Repository {
	r := &inMemoryRepository{
		employees: make(map[string]*Employee, len(seed)),
		order:     make([]string, 0, len(seed)),
	}
	for i := range seed {
		e := seed[i]
		balances := make(map[LeaveType]int, len(e.Balances))
		for k, v := range e.Balances {
			balances[k] = v
		}
		e.Balances = balances
		r.employees[e.ID] = &e
		r.order = append(r.order, e.ID)
	}
	return r
}

func (r *inMemoryRepository) FindByID(ctx context.Context, id string) (*Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return copyEmployee(e), nil
}

func (r *inMemoryRepository) List(ctx context.Context) ([]Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Employee, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *copyEmployee(r.employees[id]))
	}
	return out, nil
}

func (r *inMemoryRepository) DeductBalance(ctx context.Context, id string, leaveType LeaveType, days int) (DeductOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[id]
	if !ok {
		return DeductOutcome{}, ErrRecordNotFound
	}

	remaining := e.Balances[leaveType]
	if days > remaining {
		return DeductOutcome{OK: false, Remaining: remaining}, nil
	}

	e.Balances[leaveType] = remaining - days
	return DeductOutcome{OK: true, Remaining: remaining - days}, nil
}

// copyEmployee returns a detached copy so callers never alias repository state.
func copyEmployee(e *Employee) *Employee {
	cp := *e
	cp.Balances = make(map[LeaveType]int, len(e.Balances))
	for k, v := range e.Balances {
		cp.Balances[k] = v
	}
	return &cp
}
