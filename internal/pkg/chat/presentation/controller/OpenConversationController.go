package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	"github.com/Shreya020904/Planner-ui/internal/auth"
	"github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/usecase"
)

// OpenConversationController resolves the chat id for a picked contact.
type OpenConversationController struct {
	UC *usecase.OpenConversationUseCase
}

func NewOpenConversationController(uc *usecase.OpenConversationUseCase) *OpenConversationController {
	return &OpenConversationController{UC: uc}
}

type openConversationRequest struct {
	PeerID string `json:"peer_id" binding:"required"`
}

func (h *OpenConversationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req openConversationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperror.Respond(c, apperror.New(apperror.ErrValidation, err.Error()))
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		id, err := h.UC.Execute(ctx, usecase.OpenConversationInput{UserID: auth.UserID(c), PeerID: req.PeerID})
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"conversation_id": id, "peer_id": req.PeerID})
	}
}
