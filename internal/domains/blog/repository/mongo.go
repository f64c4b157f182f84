package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blog-backend/internal/domains/blog/model"
	"blog-backend/internal/infrastructure/database"
)

// mongoRepository - blogs collection qua official mongo driver
type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository - Constructor
func NewMongoRepository(db *mongo.Database) RepositoryInterface {
	return &mongoRepository{coll: db.Collection(database.BlogCollection)}
}

func (r *mongoRepository) Create(ctx context.Context, blog *model.Blog) error {
	if blog.ID.IsZero() {
		blog.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, blog); err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindPublished(ctx context.Context) ([]model.Blog, error) {
	return r.find(ctx, publishedFilter())
}

func (r *mongoRepository) FindAnyOf(ctx context.Context, criteria model.AnyOfCriteria) ([]model.Blog, error) {
	if criteria.IsEmpty() {
		return []model.Blog{}, nil
	}
	return r.find(ctx, anyOfFilter(criteria))
}

func (r *mongoRepository) FindActiveByID(ctx context.Context, id primitive.ObjectID) (*model.Blog, error) {
	var blog model.Blog
	err := r.coll.FindOne(ctx, activeByIDFilter(id)).Decode(&blog)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find blog: %w", err)
	}
	return &blog, nil
}

func (r *mongoRepository) UpdateActive(ctx context.Context, id primitive.ObjectID, update *model.BlogUpdate) (*model.Blog, error) {
	return r.findOneAndUpdate(ctx, id, updateDocument(update))
}

func (r *mongoRepository) SoftDeleteByID(ctx context.Context, id primitive.ObjectID, deletedAt time.Time) (*model.Blog, error) {
	return r.findOneAndUpdate(ctx, id, softDeleteDocument(deletedAt))
}

func (r *mongoRepository) FindForDeletion(ctx context.Context, filter model.DeleteFilter) ([]model.Blog, error) {
	return r.find(ctx, deletionFilter(filter))
}

func (r *mongoRepository) SoftDeleteMany(ctx context.Context, ids []primitive.ObjectID, deletedAt time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.coll.UpdateMany(ctx, idsFilter(ids), softDeleteDocument(deletedAt))
	if err != nil {
		return 0, fmt.Errorf("soft delete blogs: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *mongoRepository) find(ctx context.Context, filter interface{}) ([]model.Blog, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find blogs: %w", err)
	}
	defer cursor.Close(ctx)

	blogs := make([]model.Blog, 0)
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}
	return blogs, nil
}

// findOneAndUpdate trả về document SAU khi update
func (r *mongoRepository) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update interface{}) (*model.Blog, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var blog model.Blog
	err := r.coll.FindOneAndUpdate(ctx, activeByIDFilter(id), update, opts).Decode(&blog)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return &blog, nil
}
