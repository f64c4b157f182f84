package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/shared/response"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("error", err).
					Msg("Panic recovered")

				response.AbortWithError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
			}
		}()

		c.Next()
	}
}
