package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a handler panic into a 500 that carries the request id.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			id := c.GetString(RequestIDKey)
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.String("request_id", id),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Any("panic", rec),
				logger.String("stack", string(debug.Stack())),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{
				"error":      "internal server error",
				"request_id": id,
			})
		}()

		c.Next()
	}
}
