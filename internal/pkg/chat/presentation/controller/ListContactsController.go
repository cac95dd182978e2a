package controller

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	"github.com/Shreya020904/Planner-ui/internal/auth"
	"github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/usecase"
)

// ListContactsController serves the contact sidebar. Pins live in the
// websocket session; plain HTTP callers may pass them as ?pinned=a,b.
type ListContactsController struct {
	UC *usecase.ListContactsUseCase
}

func NewListContactsController(uc *usecase.ListContactsUseCase) *ListContactsController {
	return &ListContactsController{UC: uc}
}

func (h *ListContactsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var pinned []string
		if raw := c.Query("pinned"); raw != "" {
			pinned = strings.Split(raw, ",")
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		list, err := h.UC.Execute(ctx, usecase.ListContactsInput{
			UserID: auth.UserID(c),
			Query:  c.Query("q"),
			Pinned: pinned,
		})
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
