package service

import (
	"context"

	"blog-backend/internal/domains/author/model"
)

// ServiceInterface - đăng ký và đăng nhập author
type ServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.Author, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
}

// TokenIssuer là phần của jwt.Manager mà service cần
type TokenIssuer interface {
	GenerateToken(authorID string) (string, error)
}
