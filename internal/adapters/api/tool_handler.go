package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatheragent.app/pkg/errors"
)

// ToolResponse describes one registered tool
type ToolResponse struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
	FailureMode string         `json:"failure_mode"`
}

// listTools handles GET /api/tools
func (s *HTTPServerAdapter) listTools(c *gin.Context) {
	registered := s.tools.Tools()
	response := make([]ToolResponse, 0, len(registered))
	for _, tool := range registered {
		response = append(response, ToolResponse{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  tool.Parameters,
			FailureMode: tool.FailureMode.String(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"tools": response})
}

// invokeTool handles POST /api/tools/:name/invoke. The body is the raw argument object.
func (s *HTTPServerAdapter) invokeTool(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		s.handleError(c, errors.NewValidationError("failed to read request body"))
		return
	}

	result, err := s.tools.Invoke(c.Request.Context(), c.Param("name"), json.RawMessage(raw))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tool": c.Param("name"), "result": result})
}
