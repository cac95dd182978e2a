package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	"github.com/Shreya020904/Planner-ui/internal/pkg/task/application/usecase"
)

// ScheduleTaskController handles the task scheduler form (one controller per endpoint)
type ScheduleTaskController struct {
	UC *usecase.ScheduleTaskUseCase
}

func NewScheduleTaskController(uc *usecase.ScheduleTaskUseCase) *ScheduleTaskController {
	return &ScheduleTaskController{UC: uc}
}

type scheduleTaskRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Date string `json:"date"`
	Time string `json:"time"`
}

func (h *ScheduleTaskController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req scheduleTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperror.Respond(c, apperror.New(apperror.ErrValidation, err.Error()))
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		t, err := h.UC.Execute(ctx, usecase.ScheduleTaskInput{Name: req.Name, Type: req.Type, Date: req.Date, Time: req.Time})
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, t)
	}
}
