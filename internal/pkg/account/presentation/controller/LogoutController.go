package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	"github.com/Shreya020904/Planner-ui/internal/auth"
	"github.com/Shreya020904/Planner-ui/internal/pkg/account/application/usecase"
)

type LogoutController struct {
	UC *usecase.LogoutUseCase
}

func NewLogoutController(uc *usecase.LogoutUseCase) *LogoutController {
	return &LogoutController{UC: uc}
}

func (h *LogoutController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, auth.DeviceID(c)); err != nil {
			apperror.Respond(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
