package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	account "github.com/Shreya020904/Planner-ui/internal/pkg/account/application/domain"
	"github.com/Shreya020904/Planner-ui/internal/pkg/account/application/usecase"
)

// SignupController handles account registration (one controller per endpoint)
type SignupController struct {
	UC *usecase.SignupUseCase
}

func NewSignupController(uc *usecase.SignupUseCase) *SignupController {
	return &SignupController{UC: uc}
}

type signupRequest struct {
	Username          string `json:"username"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	ConfirmPassword   string `json:"confirm_password"`
	Designation       string `json:"designation"`
	YearsOfExperience int    `json:"years_of_experience"`
}

func (h *SignupController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperror.Respond(c, apperror.New(apperror.ErrValidation, err.Error()))
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		u, err := h.UC.Execute(ctx, usecase.SignupInput{
			DisplayName:       req.Username,
			Email:             req.Email,
			Password:          req.Password,
			ConfirmPassword:   req.ConfirmPassword,
			Designation:       req.Designation,
			YearsOfExperience: req.YearsOfExperience,
		})
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, account.ProfileOf(*u))
	}
}
