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

type UpdateProfileController struct {
	UC *usecase.UpdateProfileUseCase
}

func NewUpdateProfileController(uc *usecase.UpdateProfileUseCase) *UpdateProfileController {
	return &UpdateProfileController{UC: uc}
}

type updateProfileRequest struct {
	Designation       string `json:"designation"`
	YearsOfExperience int    `json:"years_of_experience"`
}

func (h *UpdateProfileController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperror.Respond(c, apperror.New(apperror.ErrValidation, err.Error()))
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		u, err := h.UC.Execute(ctx, usecase.UpdateProfileInput{
			UserID:            auth.UserID(c),
			Designation:       req.Designation,
			YearsOfExperience: req.YearsOfExperience,
		})
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, account.ProfileOf(*u))
	}
}
