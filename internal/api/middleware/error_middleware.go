package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/michaelmariano-bytequest/taskmanager/internal/api/dto"
	"github.com/michaelmariano-bytequest/taskmanager/pkg/logger"
	"go.uber.org/zap"
)

var log = logger.NewLogger()

const internalErrorMessage = "An unexpected error occurred. Please try again later."

// ErrorHandler is the outermost boundary for infrastructure faults: any
// panic escaping a handler becomes a generic 500. The raw fault text is
// only echoed outside production mode.
func ErrorHandler(mode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("unhandled fault",
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.Any("error", rec),
				)

				resp := dto.ErrorResponse{Message: internalErrorMessage}
				if mode != "production" {
					resp.Detail = fmt.Sprint(rec)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
