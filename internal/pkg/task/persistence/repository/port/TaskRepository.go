package repository

import (
	"context"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	task "github.com/Shreya020904/Planner-ui/internal/pkg/task/application/domain"
)

// ErrTaskNotFound is returned when no task has the requested id.
var ErrTaskNotFound = apperror.New(apperror.ErrNotFound, "task not found")

// TaskRepository stores scheduled tasks.
type TaskRepository interface {
	// Create assigns ID and CreatedAt.
	Create(ctx context.Context, t *task.Task) error
	// List returns every task, oldest first.
	List(ctx context.Context) ([]task.Task, error)
	UpdateStatus(ctx context.Context, id string, status task.Status) (*task.Task, error)
}
