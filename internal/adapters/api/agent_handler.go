package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"weatheragent.app/internal/core/conversation"
	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

// AskBody is the JSON body of POST /api/ask
type AskBody struct {
	Question  string `json:"question" binding:"required"`
	SessionID string `json:"session_id"`
}

// ConversationResponse is a stored transcript as returned by the API
type ConversationResponse struct {
	ID        string                 `json:"id"`
	SessionID string                 `json:"session_id"`
	Question  string                 `json:"question"`
	Answer    string                 `json:"answer"`
	Outcome   string                 `json:"outcome"`
	Turns     int                    `json:"turns"`
	ToolCalls []ports.ToolCallRecord `json:"tool_calls"`
	CreatedAt string                 `json:"created_at"`
}

func toConversationResponse(conv *ports.ConversationData) ConversationResponse {
	toolCalls := conv.ToolCalls
	if toolCalls == nil {
		toolCalls = []ports.ToolCallRecord{}
	}
	return ConversationResponse{
		ID:        conv.ID,
		SessionID: conv.SessionID,
		Question:  conv.Question,
		Answer:    conv.Answer,
		Outcome:   conv.Outcome,
		Turns:     conv.Turns,
		ToolCalls: toolCalls,
		CreatedAt: conv.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ask handles POST /api/ask
func (s *HTTPServerAdapter) ask(c *gin.Context) {
	var body AskBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.handleError(c, errors.NewValidationError("request body must be JSON with a question"))
		return
	}

	result, err := s.conversations.Ask(c.Request.Context(), conversation.AskRequest{
		Question:  body.Question,
		SessionID: body.SessionID,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// getConversation handles GET /api/conversations/:id
func (s *HTTPServerAdapter) getConversation(c *gin.Context) {
	conv, err := s.conversations.GetConversation(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toConversationResponse(conv))
}

// listSessionConversations handles GET /api/sessions/:id/conversations
func (s *HTTPServerAdapter) listSessionConversations(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.handleError(c, errors.NewValidationError("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	conversations, err := s.conversations.ListConversations(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		s.handleError(c, err)
		return
	}

	response := make([]ConversationResponse, 0, len(conversations))
	for _, conv := range conversations {
		response = append(response, toConversationResponse(conv))
	}
	c.JSON(http.StatusOK, gin.H{"conversations": response})
}

// resetSession handles DELETE /api/sessions/:id
func (s *HTTPServerAdapter) resetSession(c *gin.Context) {
	if err := s.conversations.ResetSession(c.Request.Context(), c.Param("id")); err != nil {
		s.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// stats handles GET /api/stats
func (s *HTTPServerAdapter) stats(c *gin.Context) {
	counts, err := s.conversations.OutcomeCounts(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	var total int64
	for _, n := range counts {
		total += n
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "outcomes": counts})
}
