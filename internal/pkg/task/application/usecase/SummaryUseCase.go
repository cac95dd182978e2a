package usecase

import (
	"context"
	"fmt"

	"github.com/Shreya020904/Planner-ui/internal/clock"
	task "github.com/Shreya020904/Planner-ui/internal/pkg/task/application/domain"
	repository "github.com/Shreya020904/Planner-ui/internal/pkg/task/persistence/repository/port"
)

// SummaryUseCase feeds the dashboard.
type SummaryUseCase struct {
	Repo  repository.TaskRepository
	Clock clock.Clock
}

func NewSummaryUseCase(repo repository.TaskRepository, clk clock.Clock) *SummaryUseCase {
	if clk == nil {
		clk = clock.Real()
	}
	return &SummaryUseCase{Repo: repo, Clock: clk}
}

func (uc *SummaryUseCase) Execute(ctx context.Context) (*task.Summary, error) {
	all, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	s := task.Summarize(all, uc.Clock.Now().UTC())
	return &s, nil
}
