package handlers

import (
	"net/http"

	"tailortalk/models"
	"tailortalk/services/agent"
	"tailortalk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversation agent over HTTP.
type ChatHandler struct {
	Agent agent.AgentService
}

func NewChatHandler(a agent.AgentService) *ChatHandler {
	return &ChatHandler{Agent: a}
}

// HandleChat runs one conversation turn. The transport always succeeds:
// even malformed input yields a 200 with an error-prefixed response string.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid chat request", zap.Error(err))
		c.JSON(http.StatusOK, models.ChatResponse{
			Response: "❌ Internal error: " + err.Error(),
		})
		return
	}

	response := h.Agent.Run(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, models.ChatResponse{Response: response})
}
