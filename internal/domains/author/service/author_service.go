package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/author/model"
	"blog-backend/internal/domains/author/repository"
)

// DefaultBcryptCost: balance giữa security và performance
const DefaultBcryptCost = 12

// authorService implements ServiceInterface
type authorService struct {
	repo       repository.RepositoryInterface
	tokens     TokenIssuer
	bcryptCost int
}

// NewAuthorService creates a new author service instance
func NewAuthorService(repo repository.RepositoryInterface, tokens TokenIssuer, bcryptCost int) ServiceInterface {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = DefaultBcryptCost
	}
	return &authorService{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register tạo author mới
func (s *authorService) Register(ctx context.Context, req model.RegisterRequest) (*model.Author, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. BUSINESS RULE: email duy nhất
	email := req.NormalizedEmail()
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, model.ErrEmailAlreadyExists
	}

	// 3. HASH PASSWORD
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. PERSIST; unique index vẫn chặn race giữa bước 2 và 4
	now := time.Now().UTC()
	author := &model.Author{
		ID:        primitive.NewObjectID(),
		FName:     strings.TrimSpace(req.FName),
		LName:     strings.TrimSpace(req.LName),
		Title:     req.Title,
		Email:     email,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, author); err != nil {
		if errors.Is(err, model.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create author: %w", err)
	}

	return author, nil
}

// Login xác thực author và cấp token chứa authorId
func (s *authorService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	author, err := s.repo.FindByEmail(ctx, req.NormalizedEmail())
	if err != nil {
		// Không phân biệt "sai email" và "sai password"
		if errors.Is(err, model.ErrAuthorNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find author: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(author.Password), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(author.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &model.LoginResponse{
		Token:    token,
		AuthorID: author.ID.Hex(),
	}, nil
}
