package usecase

import (
	"context"
	"errors"
	"fmt"

	task "github.com/Shreya020904/Planner-ui/internal/pkg/task/application/domain"
	repository "github.com/Shreya020904/Planner-ui/internal/pkg/task/persistence/repository/port"
)

type UpdateTaskStatusInput struct {
	TaskID string
	Status string
}

// UpdateTaskStatusUseCase moves a task to another board column.
type UpdateTaskStatusUseCase struct {
	Repo repository.TaskRepository
}

func NewUpdateTaskStatusUseCase(repo repository.TaskRepository) *UpdateTaskStatusUseCase {
	return &UpdateTaskStatusUseCase{Repo: repo}
}

func (uc *UpdateTaskStatusUseCase) Execute(ctx context.Context, in UpdateTaskStatusInput) (*task.Task, error) {
	st, err := task.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}
	t, err := uc.Repo.UpdateStatus(ctx, in.TaskID, st)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return t, nil
}
