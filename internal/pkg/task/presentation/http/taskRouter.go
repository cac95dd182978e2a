package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Shreya020904/Planner-ui/internal/auth"
	"github.com/Shreya020904/Planner-ui/internal/clock"
	"github.com/Shreya020904/Planner-ui/internal/pkg/task/application/usecase"
	repository "github.com/Shreya020904/Planner-ui/internal/pkg/task/persistence/repository/port"
	"github.com/Shreya020904/Planner-ui/internal/pkg/task/presentation/controller"
)

type Deps struct {
	Tasks repository.TaskRepository
	Clock clock.Clock
	Auth  *auth.Authenticator
}

// RegisterRoutes mounts the scheduler, scrum board and dashboard endpoints.
func RegisterRoutes(g *gin.RouterGroup, d Deps) {
	scheduleCtl := controller.NewScheduleTaskController(usecase.NewScheduleTaskUseCase(d.Tasks))
	listCtl := controller.NewListTasksController(usecase.NewListTasksUseCase(d.Tasks))
	statusCtl := controller.NewUpdateTaskStatusController(usecase.NewUpdateTaskStatusUseCase(d.Tasks))
	summaryCtl := controller.NewSummaryController(usecase.NewSummaryUseCase(d.Tasks, d.Clock))

	t := g.Group("/tasks", d.Auth.RequireAuth())
	// GET /api/v1/tasks?status= -> scrum board
	t.GET("", listCtl.Handle())
	// POST /api/v1/tasks -> schedule a task
	t.POST("", scheduleCtl.Handle())
	// PATCH /api/v1/tasks/:taskId/status -> move between columns
	t.PATCH("/:taskId/status", statusCtl.Handle())
	// GET /api/v1/tasks/summary -> dashboard counters
	t.GET("/summary", summaryCtl.Handle())
}
