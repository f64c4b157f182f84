package response

import (
	"github.com/gin-gonic/gin"
)

// Response là envelope chung cho mọi API response
// status=false luôn đi kèm code + message
type Response struct {
	Status  bool        `json:"status"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	Total int `json:"total"`
}

// Success responses
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func SuccessWithMeta(c *gin.Context, statusCode int, message string, data interface{}, meta *Meta) {
	c.JSON(statusCode, Response{
		Status:  true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// Error responses
func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Status:  false,
		Code:    code,
		Message: message,
	})
}

// AbortWithError ghi response lỗi và dừng middleware chain
func AbortWithError(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, Response{
		Status:  false,
		Code:    code,
		Message: message,
	})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, "BAD_REQUEST", message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, "UNAUTHORIZED", message)
}

func InternalServerError(c *gin.Context) {
	Error(c, 500, "INTERNAL_SERVER_ERROR", "Internal server error")
}
