package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	"github.com/Shreya020904/Planner-ui/internal/pkg/task/application/usecase"
)

type UpdateTaskStatusController struct {
	UC *usecase.UpdateTaskStatusUseCase
}

func NewUpdateTaskStatusController(uc *usecase.UpdateTaskStatusUseCase) *UpdateTaskStatusController {
	return &UpdateTaskStatusController{UC: uc}
}

type updateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *UpdateTaskStatusController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateTaskStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperror.Respond(c, apperror.New(apperror.ErrValidation, err.Error()))
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		t, err := h.UC.Execute(ctx, usecase.UpdateTaskStatusInput{TaskID: c.Param("taskId"), Status: req.Status})
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}
