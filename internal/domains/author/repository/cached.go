package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-backend/pkg/cache"
	"blog-backend/pkg/logger"
)

// Cache key constants
const authorExistsKeyPrefix = "author:exists:"

// cachedRepository chỉ cache kết quả ExistsByID = true;
// author không bị xóa nên "tồn tại" không bao giờ stale
type cachedRepository struct {
	RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedRepository - Constructor
func NewCachedRepository(inner RepositoryInterface, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &cachedRepository{RepositoryInterface: inner, cache: c, ttl: ttl}
}

func (r *cachedRepository) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	key := authorExistsKeyPrefix + id.Hex()

	var exists bool
	found, err := r.cache.Get(ctx, key, &exists)
	if err != nil {
		logger.Warn("Cache GET error for key "+key, err)
	} else if found && exists {
		logger.Debug("Cache HIT for key " + key)
		return true, nil
	}

	exists, err = r.RepositoryInterface.ExistsByID(ctx, id)
	if err != nil || !exists {
		return exists, err
	}

	if err := r.cache.Set(ctx, key, true, r.ttl); err != nil {
		logger.Warn("Cache SET error for key "+key, err)
	}
	return true, nil
}
