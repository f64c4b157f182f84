package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		ip := c.GetString(ClientIPKey)
		if ip == "" {
			ip = c.ClientIP()
		}
		status := c.Writer.Status()

		authorID := ""
		if claims, ok := GetClaims(c); ok {
			authorID = claims.AuthorID
		}

		var event *zerolog.Event
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}

		event.
			Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency_ms", latency).
			Str("ip", ip).
			Str("author_id", authorID).
			Msg("HTTP Request")
	}
}
