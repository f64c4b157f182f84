package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/domains/blog/model"
)

// RepositoryInterface - Định nghĩa data access methods cho blogs.
// Mọi method "Active" chỉ nhìn thấy document có isDeleted=false;
// không tìm thấy thì trả về model.ErrBlogNotFound.
type RepositoryInterface interface {
	Create(ctx context.Context, blog *model.Blog) error
	FindPublished(ctx context.Context) ([]model.Blog, error)
	// FindAnyOf trả về document khớp BẤT KỲ điều kiện nào, chưa lọc visibility
	FindAnyOf(ctx context.Context, criteria model.AnyOfCriteria) ([]model.Blog, error)
	FindActiveByID(ctx context.Context, id primitive.ObjectID) (*model.Blog, error)
	UpdateActive(ctx context.Context, id primitive.ObjectID, update *model.BlogUpdate) (*model.Blog, error)
	SoftDeleteByID(ctx context.Context, id primitive.ObjectID, deletedAt time.Time) (*model.Blog, error)
	FindForDeletion(ctx context.Context, filter model.DeleteFilter) ([]model.Blog, error)
	SoftDeleteMany(ctx context.Context, ids []primitive.ObjectID, deletedAt time.Time) (int64, error)
}
