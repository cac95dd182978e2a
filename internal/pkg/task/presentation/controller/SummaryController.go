package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	"github.com/Shreya020904/Planner-ui/internal/pkg/task/application/usecase"
)

// SummaryController returns the dashboard counters.
type SummaryController struct {
	UC *usecase.SummaryUseCase
}

func NewSummaryController(uc *usecase.SummaryUseCase) *SummaryController {
	return &SummaryController{UC: uc}
}

func (h *SummaryController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		s, err := h.UC.Execute(ctx)
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}
