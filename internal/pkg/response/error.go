package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/hotel-room-inventory/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is the body of successful mutations that return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}

// Error sends a JSON error response.
// An AppError decides the status code and message. Anything else is a store
// or unexpected failure: it is answered with 500 and the generic fallback
// message, and the real error is attached to the context for the access log.
func Error(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)

	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	if fallback == "" {
		fallback = "internal server error"
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
}

// BadRequest answers 400 with the binding or validation failure in details.
func BadRequest(c *gin.Context, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

// Message answers with status and a {message} body.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}
