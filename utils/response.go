package utils

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// RespondSuccess sends a standard success envelope.
func RespondSuccess(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondError sends a standard error envelope. The raw error is logged but
// never echoed to the client; message must be safe for users.
func RespondError(c *gin.Context, code int, message string, err error) {
	if err != nil {
		Logger.Error(message, zap.Error(err), zap.String("path", c.FullPath()))
	}
	c.JSON(code, APIResponse{
		Success: false,
		Message: message,
	})
}
