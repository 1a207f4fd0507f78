package calendar

import (
	"context"
	"sort"
	"sync"
	"time"

	"hr-leave-agent/internal/employee"
)

type Repository interface {
	Append(ctx context.Context, entry Entry) error
	// FindByTeamAndRange returns the team's entries whose [StartDate, EndDate]
	// intersects [from, to], ordered by start date ascending.
	FindByTeamAndRange(ctx context.Context, team employee.Team, from, to time.Time) ([]Entry, error)
}

type inMemoryRepository struct {
	mu      sync.RWMutex
	entries map[employee.Team][]Entry
}

func NewInMemoryRepository(seed []Entry) Repository {
	r := &inMemoryRepository{
		entries: make(map[employee.Team][]Entry),
	}
	for _, e := range seed {
		r.entries[e.Team] = append(r.entries[e.Team], e)
	}
	return r
}

func (r *inMemoryRepository) Append(ctx context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.Team] = append(r.entries[entry.Team], entry)
	return nil
}

func (r *inMemoryRepository) FindByTeamAndRange(ctx context.Context, team employee.Team, from, to time.Time) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Entry
	for _, e := range r.entries[team] {
		if e.EndDate.Before(from) || e.StartDate.After(to) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}
