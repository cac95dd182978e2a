package adapter

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Shreya020904/Planner-ui/internal/clock"
	task "github.com/Shreya020904/Planner-ui/internal/pkg/task/application/domain"
	repository "github.com/Shreya020904/Planner-ui/internal/pkg/task/persistence/repository/port"
)

// MemoryTaskRepository keeps tasks in process memory.
type MemoryTaskRepository struct {
	clock clock.Clock

	mu    sync.RWMutex
	tasks map[string]task.Task
}

func NewMemoryTaskRepository(clk clock.Clock) *MemoryTaskRepository {
	if clk == nil {
		clk = clock.Real()
	}
	return &MemoryTaskRepository{clock: clk, tasks: make(map[string]task.Task)}
}

var _ repository.TaskRepository = (*MemoryTaskRepository)(nil)

func (r *MemoryTaskRepository) Create(_ context.Context, t *task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = uuid.NewString()
	t.CreatedAt = r.clock.Now().UTC()
	r.tasks[t.ID] = *t
	return nil
}

func (r *MemoryTaskRepository) List(context.Context) ([]task.Task, error) {
	r.mu.RLock()
	out := make([]task.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, t)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MemoryTaskRepository) UpdateStatus(_ context.Context, id string, status task.Status) (*task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	t.Status = status
	r.tasks[id] = t
	return &t, nil
}
