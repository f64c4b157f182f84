package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/blog/model"
	service "blog-backend/internal/domains/blog/service"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// Handler - HTTP Handler cho blogs
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// CreateBlog - POST /v1/blogs
func (h *Handler) CreateBlog(c *gin.Context) {
	callerID, ok := middleware.GetAuthorID(c)
	if !ok {
		response.Unauthorized(c, "token is required")
		return
	}

	var req model.CreateBlogRequest
	if !bindBody(c, &req) {
		return
	}

	blog, err := h.service.Create(c.Request.Context(), callerID, req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "created", blog)
}

// ListBlogs - GET /v1/blogs
// Query params (có thể lặp lại): authorId, tags, category, subcategory
func (h *Handler) ListBlogs(c *gin.Context) {
	query := model.NewSearchQuery(c.Request.URL.Query())

	blogs, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "", blogs, &response.Meta{Total: len(blogs)})
}

// UpdateBlog - PUT /v1/blogs/:blogId
func (h *Handler) UpdateBlog(c *gin.Context) {
	callerID, ok := middleware.GetAuthorID(c)
	if !ok {
		response.Unauthorized(c, "token is required")
		return
	}

	var req model.UpdateBlogRequest
	if !bindBody(c, &req) {
		return
	}

	blog, err := h.service.Update(c.Request.Context(), callerID, c.Param("blogId"), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "updated", blog)
}

// DeleteBlog - DELETE /v1/blogs/:blogId
func (h *Handler) DeleteBlog(c *gin.Context) {
	callerID, ok := middleware.GetAuthorID(c)
	if !ok {
		response.Unauthorized(c, "token is required")
		return
	}

	blog, err := h.service.DeleteByID(c.Request.Context(), callerID, c.Param("blogId"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "deleted", blog)
}

// DeleteBlogsByQuery - DELETE /v1/blogs?authorId=&category=&isPublished=&tags=&subcategory=
func (h *Handler) DeleteBlogsByQuery(c *gin.Context) {
	callerID, _ := middleware.GetAuthorID(c)

	query := model.NewDeleteQuery(c.Request.URL.Query())
	if err := h.service.DeleteByQuery(c.Request.Context(), callerID, query); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "blog(s) deleted", nil)
}

// bindBody: body rỗng được coi là object không có field nào,
// để service trả đúng lỗi "thiếu dữ liệu" của từng operation
func bindBody(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	response.BadRequest(c, model.ErrInvalidBody.Error())
	return false
}

func handleError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("blog request failed", err)
		response.InternalServerError(c)
		return
	}
	response.Error(c, status, model.ToErrorCode(err), err.Error())
}
