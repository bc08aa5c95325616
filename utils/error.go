package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is a middleware that catches panics from the conversation
// pipeline. The transport contract is "always succeed": any residual failure
// is reported as a 200-status body carrying an error-prefixed response string.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusOK, gin.H{
					"response": fmt.Sprintf("❌ Internal error: %v", err),
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
