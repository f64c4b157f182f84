// Package mocks holds testify mocks of the author repository.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/domains/author/model"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Create(ctx context.Context, author *model.Author) error {
	return m.Called(ctx, author).Error(0)
}

func (m *Repository) FindByEmail(ctx context.Context, email string) (*model.Author, error) {
	args := m.Called(ctx, email)
	author, _ := args.Get(0).(*model.Author)
	return author, args.Error(1)
}

func (m *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *Repository) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
