package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/domains/blog/model"
)

// ServiceInterface - Định nghĩa business logic methods.
// callerID là authorId lấy từ token đã xác thực.
type ServiceInterface interface {
	Create(ctx context.Context, callerID string, req model.CreateBlogRequest) (*model.Blog, error)
	List(ctx context.Context, query model.SearchQuery) ([]model.Blog, error)
	Update(ctx context.Context, callerID, blogID string, req model.UpdateBlogRequest) (*model.Blog, error)
	DeleteByID(ctx context.Context, callerID, blogID string) (*model.Blog, error)
	DeleteByQuery(ctx context.Context, callerID string, query model.DeleteQuery) error
}

// AuthorLookup là phần của author repository mà blog service cần
type AuthorLookup interface {
	ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}
