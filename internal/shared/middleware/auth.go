package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/response"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"
)

type ctxKey string

const (
	// ClaimsKey / AuthorIDKey: keys trong gin context sau khi xác thực
	ClaimsKey   = "claims"
	AuthorIDKey = "authorID"

	authorIDCtxKey ctxKey = "authorID"
)

// TokenVerifier là phần của jwt.Manager mà middleware cần
type TokenVerifier interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// Auth - Middleware xác thực token trong header (mặc định x-api-key)
// 401 khi thiếu token, 401 khi token sai/hết hạn, 500 khi verifier lỗi bất ngờ
func Auth(verifier TokenVerifier, header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Lấy token từ header, chấp nhận cả dạng "Bearer <token>"
		token := strings.TrimSpace(c.GetHeader(header))
		token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
		if token == "" {
			response.AbortWithError(c, http.StatusUnauthorized, "UNAUTHENTICATED", "token is required")
			return
		}

		// 2. Verify và parse token
		claims, err := verify(verifier, token)
		if err != nil {
			if errors.Is(err, jwt.ErrInvalidToken) || errors.Is(err, jwt.ErrExpiredToken) {
				response.AbortWithError(c, http.StatusUnauthorized, "INVALID_TOKEN", "invalid token")
				return
			}
			logger.Error("token verification failed", err)
			response.AbortWithError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
			return
		}

		// 3. Gắn identity vào gin context và request context
		c.Set(ClaimsKey, claims)
		c.Set(AuthorIDKey, claims.AuthorID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), authorIDCtxKey, claims.AuthorID))

		c.Next()
	}
}

// verify chặn panic từ verifier để trả về server-fault thay vì crash
func verify(verifier TokenVerifier, token string) (claims *jwt.Claims, err error) {
	defer func() {
		if r := recover(); r != nil {
			claims = nil
			err = fmt.Errorf("token verifier panicked: %v", r)
		}
	}()
	return verifier.ValidateToken(token)
}

// GetAuthorID đọc identity do Auth gắn vào
func GetAuthorID(c *gin.Context) (string, bool) {
	v, ok := c.Get(AuthorIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// GetClaims trả claims của token đã xác thực
func GetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok && claims != nil
}

// AuthorIDFromContext dùng cho code chỉ có context.Context
func AuthorIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(authorIDCtxKey).(string); ok {
		return id
	}
	return ""
}
