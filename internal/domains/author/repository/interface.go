package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/domains/author/model"
)

// RepositoryInterface - data access cho authors
type RepositoryInterface interface {
	// Create trả về model.ErrEmailAlreadyExists khi vi phạm unique email
	Create(ctx context.Context, author *model.Author) error
	// FindByEmail trả về model.ErrAuthorNotFound khi không có
	FindByEmail(ctx context.Context, email string) (*model.Author, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}
