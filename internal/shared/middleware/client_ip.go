package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/utils"
)

const (
	ClientIPKey = "client_ip"

	clientIPCtxKey ctxKey = "client_ip"
)

// ClientIP gắn IP của client vào gin context và request context.
// Đăng ký trước Logger để access log dùng cùng giá trị.
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := utils.ExtractClientIP(c.Request)

		c.Set(ClientIPKey, clientIP)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), clientIPCtxKey, clientIP))

		c.Next()
	}
}

// GetClientIPFromContext retrieves the client IP from context
func GetClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPCtxKey).(string); ok {
		return ip
	}
	return ""
}
