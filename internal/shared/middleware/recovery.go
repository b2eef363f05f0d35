package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookstore-api/internal/shared/response"
)

// Recovery chặn panic, log kèm stack và trả 500 với message chung
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString(ContextRequestID)).
					Str("method", c.Request.Method).
					Str("route", c.FullPath()).
					Interface("error", err).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				response.AbortInternalServerError(c)
			}
		}()

		c.Next()
	}
}
