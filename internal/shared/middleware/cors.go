package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS cho phép frontend gọi API; authHeader được thêm vào Allow-Headers
func CORS(authHeader string) gin.HandlerFunc {
	allowHeaders := strings.Join([]string{
		"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader, authHeader,
	}, ", ")

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", allowHeaders)
		c.Header("Access-Control-Expose-Headers", strings.Join([]string{RequestIDHeader, authHeader}, ", "))

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
