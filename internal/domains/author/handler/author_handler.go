package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/author/model"
	"blog-backend/internal/domains/author/service"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

type AuthorHandler struct {
	service    service.ServiceInterface
	authHeader string
}

func NewAuthorHandler(svc service.ServiceInterface, authHeader string) *AuthorHandler {
	return &AuthorHandler{
		service:    svc,
		authHeader: authHeader,
	}
}

// ════════════════════════════════════════════════════════════════
// REGISTER: POST /v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, model.ErrInvalidBody.Error())
		return
	}

	author, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "author created", author)
}

// ════════════════════════════════════════════════════════════════
// LOGIN: POST /v1/login
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, model.ErrInvalidBody.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header(h.authHeader, resp.Token)
	response.Success(c, http.StatusOK, "login successful", resp)
}

func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("author request failed", err)
		response.InternalServerError(c)
		return
	}
	response.Error(c, status, model.ToErrorCode(err), err.Error())
}
