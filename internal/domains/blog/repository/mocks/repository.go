// Package mocks holds testify mocks of the blog repository.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/domains/blog/model"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Create(ctx context.Context, blog *model.Blog) error {
	return m.Called(ctx, blog).Error(0)
}

func (m *Repository) FindPublished(ctx context.Context) ([]model.Blog, error) {
	args := m.Called(ctx)
	blogs, _ := args.Get(0).([]model.Blog)
	return blogs, args.Error(1)
}

func (m *Repository) FindAnyOf(ctx context.Context, criteria model.AnyOfCriteria) ([]model.Blog, error) {
	args := m.Called(ctx, criteria)
	blogs, _ := args.Get(0).([]model.Blog)
	return blogs, args.Error(1)
}

func (m *Repository) FindActiveByID(ctx context.Context, id primitive.ObjectID) (*model.Blog, error) {
	args := m.Called(ctx, id)
	blog, _ := args.Get(0).(*model.Blog)
	return blog, args.Error(1)
}

func (m *Repository) UpdateActive(ctx context.Context, id primitive.ObjectID, update *model.BlogUpdate) (*model.Blog, error) {
	args := m.Called(ctx, id, update)
	blog, _ := args.Get(0).(*model.Blog)
	return blog, args.Error(1)
}

func (m *Repository) SoftDeleteByID(ctx context.Context, id primitive.ObjectID, deletedAt time.Time) (*model.Blog, error) {
	args := m.Called(ctx, id, deletedAt)
	blog, _ := args.Get(0).(*model.Blog)
	return blog, args.Error(1)
}

func (m *Repository) FindForDeletion(ctx context.Context, filter model.DeleteFilter) ([]model.Blog, error) {
	args := m.Called(ctx, filter)
	blogs, _ := args.Get(0).([]model.Blog)
	return blogs, args.Error(1)
}

func (m *Repository) SoftDeleteMany(ctx context.Context, ids []primitive.ObjectID, deletedAt time.Time) (int64, error) {
	args := m.Called(ctx, ids, deletedAt)
	return args.Get(0).(int64), args.Error(1)
}
