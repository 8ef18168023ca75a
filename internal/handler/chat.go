package handler

import (
	"net/http"

	"rea/internal/model"
	"rea/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles conversational search requests
type ChatHandler struct {
	searchService *service.SearchService
	defaultLimit  int
	maxLimit      int
}

// NewChatHandler creates a new chat handler
func NewChatHandler(searchService *service.SearchService, defaultLimit, maxLimit int) *ChatHandler {
	return &ChatHandler{
		searchService: searchService,
		defaultLimit:  defaultLimit,
		maxLimit:      maxLimit,
	}
}

// Chat handles POST /api/v1/chat. The caller owns the conversation history and
// sends the full turn sequence each time.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	limit := capLimit(req.Limit, h.defaultLimit, h.maxLimit)
	response := h.searchService.Chat(c.Request.Context(), req.Messages, limit)

	c.JSON(http.StatusOK, response)
}

// capLimit clamps a requested result limit into the configured range
func capLimit(limit, defaultLimit, maxLimit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
