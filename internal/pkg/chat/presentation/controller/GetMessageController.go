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

// GetMessageController returns the ordered history of one chat (one controller per endpoint)
type GetMessageController struct {
	UC *usecase.GetMessageUseCase
}

func NewGetMessageController(uc *usecase.GetMessageUseCase) *GetMessageController {
	return &GetMessageController{UC: uc}
}

func (h *GetMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		chatID := chat.ConversationID(c.Param("chatId"))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		msgs, err := h.UC.Execute(ctx, usecase.GetMessageInput{ConversationID: chatID, UserID: auth.UserID(c)})
		if err != nil {
			apperror.Respond(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"conversation_id": chatID,
			"messages":        msgs,
			"count":           len(msgs),
		})
	}
}
