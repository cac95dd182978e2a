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

type ListOtherUsersController struct {
	UC *usecase.ListOtherUsersUseCase
}

func NewListOtherUsersController(uc *usecase.ListOtherUsersUseCase) *ListOtherUsersController {
	return &ListOtherUsersController{UC: uc}
}

func (h *ListOtherUsersController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		users, err := h.UC.Execute(ctx, usecase.ListOtherUsersInput{CurrentUserID: auth.UserID(c)})
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		out := make([]account.Profile, 0, len(users))
		for _, u := range users {
			out = append(out, account.ProfileOf(u))
		}
		c.JSON(http.StatusOK, gin.H{"users": out, "count": len(out)})
	}
}
