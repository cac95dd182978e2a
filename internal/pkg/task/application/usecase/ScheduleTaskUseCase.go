package usecase

import (
	"context"
	"fmt"

	task "github.com/Shreya020904/Planner-ui/internal/pkg/task/application/domain"
	repository "github.com/Shreya020904/Planner-ui/internal/pkg/task/persistence/repository/port"
)

// ScheduleTaskInput is the task scheduler form.
type ScheduleTaskInput struct {
	Name string
	Type string
	Date string
	Time string
}

type ScheduleTaskUseCase struct {
	Repo repository.TaskRepository
}

func NewScheduleTaskUseCase(repo repository.TaskRepository) *ScheduleTaskUseCase {
	return &ScheduleTaskUseCase{Repo: repo}
}

func (uc *ScheduleTaskUseCase) Execute(ctx context.Context, in ScheduleTaskInput) (*task.Task, error) {
	t, err := task.New(in.Name, in.Type, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if err := uc.Repo.Create(ctx, &t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return &t, nil
}
