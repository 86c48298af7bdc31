// Package httpkit holds the shared HTTP plumbing: response helpers, auth
// middleware and rate limiting. No business logic lives here.
package httpkit

import (
	"errors"
	"net/http"

	"texportal_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape of every error the API returns.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// OK writes the payload with a 200.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// JSON writes the payload with an explicit status code.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// Error writes an ErrorResponse with the given status.
func Error(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}

// HandleError translates a service error into an HTTP response and reports
// whether it wrote one. Typed *apperr.Error values map through their Kind;
// anything untyped is treated as a bad request.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var domainErr *apperr.Error
	if errors.As(err, &domainErr) {
		c.JSON(domainErr.HTTPStatus(), ErrorResponse{
			Error:   domainErr.Message,
			Details: domainErr.Details,
		})
		return true
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	return true
}
