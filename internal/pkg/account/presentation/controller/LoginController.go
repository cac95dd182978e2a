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

type LoginController struct {
	UC       *usecase.LoginUseCase
	Validity time.Duration
}

func NewLoginController(uc *usecase.LoginUseCase, validity time.Duration) *LoginController {
	return &LoginController{UC: uc, Validity: validity}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *LoginController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperror.Respond(c, apperror.New(apperror.ErrValidation, err.Error()))
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		out, err := h.UC.Execute(ctx, usecase.LoginInput{
			DeviceID:    auth.DeviceID(c),
			DisplayName: req.Username,
			Password:    req.Password,
		})
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"token":      out.Token,
			"expires_in": int64(h.Validity.Seconds()),
			"user":       account.ProfileOf(out.User),
		})
	}
}
