package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatheragent.app/internal/ports"
	errorspkg "weatheragent.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error          string `json:"error"`
	Kind           string `json:"kind"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
}

// handleError writes the HTTP status and body for an application error.
// Messages of internal and upstream failures are not echoed to the client.
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	appErr, ok := errorspkg.As(err)
	if !ok {
		s.logger.Error("Unclassified error", ports.F("path", c.FullPath()), ports.F("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Internal server error",
			Kind:  errorspkg.ErrorTypeUnknown.String(),
		})
		return
	}

	response := ErrorResponse{Kind: appErr.Type.String()}
	var statusCode int

	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		response.Error = appErr.Message
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		response.Error = appErr.Message
	case errorspkg.UpstreamHTTPError:
		statusCode = http.StatusBadGateway
		response.Error = "Upstream service returned an error"
		response.UpstreamStatus = appErr.Status
	case errorspkg.MalformedResponseError:
		statusCode = http.StatusBadGateway
		response.Error = "Upstream service returned an unexpected response"
	case errorspkg.ModelBehaviorError:
		statusCode = http.StatusBadGateway
		response.Error = "Model encountered an error"
	case errorspkg.TimeoutError:
		statusCode = http.StatusGatewayTimeout
		response.Error = "Upstream service timed out"
	case errorspkg.ServiceUnavailableError:
		statusCode = http.StatusServiceUnavailable
		response.Error = "Service unavailable"
	default:
		statusCode = http.StatusInternalServerError
		response.Error = "Internal server error"
	}

	if statusCode >= http.StatusInternalServerError {
		s.logger.Error("Request failed",
			ports.F("path", c.FullPath()),
			ports.F("status", statusCode),
			ports.F("error", appErr.Error()))
	}

	c.JSON(statusCode, response)
}
