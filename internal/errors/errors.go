package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON body used for every error the API returns.
type ErrorResponse struct {
	Error string `json:"Error"`
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// Helper functions for common error responses

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Missing/Invalid Jwt"
	}
	RespondWithError(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	RespondWithError(c, http.StatusForbidden, message)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, message)
}

// MethodNotAllowed sends a 405 response and names the methods the
// collection does support.
func MethodNotAllowed(c *gin.Context, allow, message string) {
	c.Header("Allow", allow)
	RespondWithError(c, http.StatusMethodNotAllowed, message)
}

// NotAcceptable sends a 406 response
func NotAcceptable(c *gin.Context) {
	RespondWithError(c, http.StatusNotAcceptable, "Not Acceptable")
}

// UnsupportedMediaType sends a 415 response
func UnsupportedMediaType(c *gin.Context) {
	RespondWithError(c, http.StatusUnsupportedMediaType, "Server only accepts application/json data.")
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal Server Error"
	}
	RespondWithError(c, http.StatusInternalServerError, message)
}
