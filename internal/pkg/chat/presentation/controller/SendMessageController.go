package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	"github.com/Shreya020904/Planner-ui/internal/auth"
	chat "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/domain"
	"github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/usecase"
)

// SendMessageController handles the send-message endpoint only (one controller per endpoint)
type SendMessageController struct {
	UC *usecase.SendMessageUseCase
}

func NewSendMessageController(uc *usecase.SendMessageUseCase) *SendMessageController {
	return &SendMessageController{UC: uc}
}

// sendMessageRequest is the DTO for the HTTP request body
type sendMessageRequest struct {
	Body string `json:"body"`
}

// Handle appends the caller's message to the chat. Live subscribers pick it
// up through the feed; the response only echoes what was stored.
func (h *SendMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperror.Respond(c, apperror.New(apperror.ErrValidation, err.Error()))
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		msg, err := h.UC.Execute(ctx, usecase.SendMessageInput{
			ConversationID: chat.ConversationID(c.Param("chatId")),
			SenderID:       auth.UserID(c),
			Body:           req.Body,
		})
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}
