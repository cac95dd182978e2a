package usecase

import (
	"context"
	"fmt"

	task "github.com/Shreya020904/Planner-ui/internal/pkg/task/application/domain"
	repository "github.com/Shreya020904/Planner-ui/internal/pkg/task/persistence/repository/port"
)

// ListTasksInput optionally narrows the board to one column.
type ListTasksInput struct {
	Status string
}

type ListTasksUseCase struct {
	Repo repository.TaskRepository
}

func NewListTasksUseCase(repo repository.TaskRepository) *ListTasksUseCase {
	return &ListTasksUseCase{Repo: repo}
}

func (uc *ListTasksUseCase) Execute(ctx context.Context, in ListTasksInput) ([]task.Task, error) {
	var want task.Status
	if in.Status != "" {
		st, err := task.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		want = st
	}

	all, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if want == "" {
		return all, nil
	}
	out := make([]task.Task, 0, len(all))
	for _, t := range all {
		if t.Status == want {
			out = append(out, t)
		}
	}
	return out, nil
}
