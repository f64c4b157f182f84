package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/internal/domains/blog/model"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/logger"
)

// PublishedCacheKey giữ danh sách blog public (GET /blogs không query)
const PublishedCacheKey = "blogs:published"

// cachedRepository bọc repository thật; chỉ cache danh sách published,
// mọi thao tác ghi đều xóa key này. Lỗi cache không làm hỏng request.
type cachedRepository struct {
	RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedRepository - Constructor
func NewCachedRepository(inner RepositoryInterface, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &cachedRepository{RepositoryInterface: inner, cache: c, ttl: ttl}
}

func (r *cachedRepository) FindPublished(ctx context.Context) ([]model.Blog, error) {
	var blogs []model.Blog
	found, err := r.cache.Get(ctx, PublishedCacheKey, &blogs)
	if err != nil {
		logger.Warn("Cache GET error for key "+PublishedCacheKey, err)
	} else if found {
		logger.Debug("Cache HIT for key " + PublishedCacheKey)
		return blogs, nil
	}

	blogs, err = r.RepositoryInterface.FindPublished(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, PublishedCacheKey, blogs, r.ttl); err != nil {
		logger.Warn("Cache SET error for key "+PublishedCacheKey, err)
	}
	return blogs, nil
}

func (r *cachedRepository) Create(ctx context.Context, blog *model.Blog) error {
	if err := r.RepositoryInterface.Create(ctx, blog); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedRepository) UpdateActive(ctx context.Context, id primitive.ObjectID, update *model.BlogUpdate) (*model.Blog, error) {
	blog, err := r.RepositoryInterface.UpdateActive(ctx, id, update)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return blog, nil
}

func (r *cachedRepository) SoftDeleteByID(ctx context.Context, id primitive.ObjectID, deletedAt time.Time) (*model.Blog, error) {
	blog, err := r.RepositoryInterface.SoftDeleteByID(ctx, id, deletedAt)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return blog, nil
}

func (r *cachedRepository) SoftDeleteMany(ctx context.Context, ids []primitive.ObjectID, deletedAt time.Time) (int64, error) {
	n, err := r.RepositoryInterface.SoftDeleteMany(ctx, ids, deletedAt)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.invalidate(ctx)
	}
	return n, nil
}

func (r *cachedRepository) invalidate(ctx context.Context) {
	if err := r.cache.Delete(ctx, PublishedCacheKey); err != nil {
		logger.Warn("Cache DELETE error for key "+PublishedCacheKey, err)
	}
}
