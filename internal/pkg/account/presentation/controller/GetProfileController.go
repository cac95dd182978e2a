package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	"github.com/Shreya020904/Planner-ui/internal/auth"
	account "github.com/Shreya020904/Planner-ui/internal/pkg/account/application/domain"
	"github.com/Shreya020904/Planner-ui/internal/pkg/account/application/usecase"
)

// GetProfileController resolves the profile remembered on the calling
// device. ?display_name= overrides the device cache; without either the
// name in the session token is used.
type GetProfileController struct {
	UC *usecase.ResolveIdentityUseCase
}

func NewGetProfileController(uc *usecase.ResolveIdentityUseCase) *GetProfileController {
	return &GetProfileController{UC: uc}
}

func (h *GetProfileController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		in := usecase.ResolveIdentityInput{
			DeviceID:    auth.DeviceID(c),
			DisplayName: c.Query("display_name"),
		}
		if in.DisplayName == "" && in.DeviceID == "" {
			in.DisplayName = auth.DisplayName(c)
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		res, err := h.UC.Execute(ctx, in)
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user":     account.ProfileOf(res.User),
			"resynced": res.Resynced,
		})
	}
}
