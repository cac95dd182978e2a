package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	"github.com/Shreya020904/Planner-ui/internal/pkg/task/application/usecase"
)

// ListTasksController serves the scrum board, optionally one ?status= column.
type ListTasksController struct {
	UC *usecase.ListTasksUseCase
}

func NewListTasksController(uc *usecase.ListTasksUseCase) *ListTasksController {
	return &ListTasksController{UC: uc}
}

func (h *ListTasksController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		tasks, err := h.UC.Execute(ctx, usecase.ListTasksInput{Status: c.Query("status")})
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
	}
}
