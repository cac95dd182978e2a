package controller

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	"github.com/Shreya020904/Planner-ui/internal/auth"
	account "github.com/Shreya020904/Planner-ui/internal/pkg/account/application/domain"
	"github.com/Shreya020904/Planner-ui/internal/pkg/account/application/usecase"
)

// maxUploadBytes caps the raw upload before compression.
const maxUploadBytes = 10 << 20

type UpdateAvatarController struct {
	UC *usecase.UpdateAvatarUseCase
}

func NewUpdateAvatarController(uc *usecase.UpdateAvatarUseCase) *UpdateAvatarController {
	return &UpdateAvatarController{UC: uc}
}

func (h *UpdateAvatarController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("avatar")
		if err != nil {
			apperror.Respond(c, apperror.New(apperror.ErrValidation, "avatar file is required"))
			return
		}
		if fh.Size > maxUploadBytes {
			apperror.Respond(c, account.ErrMediaProcessing)
			return
		}
		f, err := fh.Open()
		if err != nil {
			apperror.Respond(c, account.ErrMediaProcessing)
			return
		}
		defer f.Close()
		raw, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
		if err != nil {
			apperror.Respond(c, account.ErrMediaProcessing)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		avatar, err := h.UC.Execute(ctx, usecase.UpdateAvatarInput{UserID: auth.UserID(c), Image: raw})
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"avatar": avatar})
	}
}
