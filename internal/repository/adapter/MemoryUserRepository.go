package adapter

import (
	"context"
	"sort"
	"sync"

	"github.com/Shreya020904/Planner-ui/internal/clock"
	repository "github.com/Shreya020904/Planner-ui/internal/repository/port"
)

// MemoryUserRepository keeps users in process memory. It backs the service
// when no database is configured and is used by tests.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	byID  map[string]*repository.User
}

func NewMemoryUserRepository(clk clock.Clock) *MemoryUserRepository {
	if clk == nil {
		clk = clock.Real()
	}
	return &MemoryUserRepository{clock: clk, byID: make(map[string]*repository.User)}
}

var _ repository.UserRepository = (*MemoryUserRepository)(nil)

func (r *MemoryUserRepository) Create(_ context.Context, u *repository.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.DisplayName == u.DisplayName {
			return repository.ErrDuplicateDisplayName
		}
	}
	now := r.clock.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	stored := *u
	r.byID[u.ID] = &stored
	return nil
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (*repository.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *MemoryUserRepository) FindByDisplayName(_ context.Context, displayName string) (*repository.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.byID {
		if u.DisplayName == displayName {
			out := *u
			return &out, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *MemoryUserRepository) List(context.Context) ([]repository.User, error) {
	r.mu.RLock()
	users := make([]repository.User, 0, len(r.byID))
	for _, u := range r.byID {
		users = append(users, *u)
	}
	r.mu.RUnlock()

	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID < users[j].ID
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (r *MemoryUserRepository) UpdateProfile(_ context.Context, id, designation string, yearsOfExperience int) (*repository.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	u.Designation = designation
	u.YearsOfExperience = yearsOfExperience
	u.UpdatedAt = r.clock.Now().UTC()
	out := *u
	return &out, nil
}

func (r *MemoryUserRepository) UpdateAvatar(_ context.Context, id, avatar string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Avatar = avatar
	u.UpdatedAt = r.clock.Now().UTC()
	return nil
}
